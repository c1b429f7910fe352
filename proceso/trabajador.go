package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// Trabajador es el lado proceso del protocolo con el gestor: recibe el tiempo
// simulado por la entrada estándar, confirma cada intercambio con el byte bajo
// del tiempo y obedece las señales de suspensión, reanudación y terminación.
// El resultado final resume el nombre y todos los tiempos recibidos.
type Trabajador struct {
	Nombre  string
	Log     *slog.Logger
	entrada io.Reader
	salida  io.Writer
	resumen hash.Hash
	senales chan os.Signal
}

func NewTrabajador(nombre string, entrada io.Reader, salida io.Writer, logger *slog.Logger) *Trabajador {
	resumen := sha256.New()
	resumen.Write([]byte(nombre))

	return &Trabajador{
		Nombre:  nombre,
		Log:     logger,
		entrada: entrada,
		salida:  salida,
		resumen: resumen,
		senales: make(chan os.Signal, 1),
	}
}

// Correr atiende el protocolo completo: el intercambio inicial apenas nace y
// después un intercambio por señal, hasta el SIGTERM que pide el resultado.
func (t *Trabajador) Correr() error {
	signal.Notify(t.senales, syscall.SIGTSTP, syscall.SIGCONT, syscall.SIGTERM)
	defer signal.Stop(t.senales)

	tiempo, err := t.leerTiempo()
	if err != nil {
		return err
	}
	t.Log.Debug("trabajador lanzado",
		log.StringAttr("proceso", t.Nombre),
		log.IntAttr("tiempo", int(tiempo)),
	)
	if err := t.responderEco(tiempo); err != nil {
		return err
	}

	for senal := range t.senales {
		switch senal {
		case syscall.SIGTSTP:
			if tiempo, err = t.leerTiempo(); err != nil {
				return err
			}
			t.Log.Debug("trabajador detenido",
				log.StringAttr("proceso", t.Nombre),
				log.IntAttr("tiempo", int(tiempo)),
			)
			// La detención no se confirma con eco: el gestor la observa por
			// el estado del proceso.
			if err := t.detenerse(); err != nil {
				return err
			}

		case syscall.SIGCONT:
			if tiempo, err = t.leerTiempo(); err != nil {
				return err
			}
			t.Log.Debug("trabajador reanudado",
				log.StringAttr("proceso", t.Nombre),
				log.IntAttr("tiempo", int(tiempo)),
			)
			if err := t.responderEco(tiempo); err != nil {
				return err
			}

		case syscall.SIGTERM:
			if tiempo, err = t.leerTiempo(); err != nil {
				return err
			}
			t.Log.Debug("trabajador terminado",
				log.StringAttr("proceso", t.Nombre),
				log.IntAttr("tiempo", int(tiempo)),
			)
			return t.escribirResultado()
		}
	}
	return nil
}

func (t *Trabajador) leerTiempo() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(t.entrada, buf[:]); err != nil {
		return 0, fmt.Errorf("no se pudo leer el tiempo: %w", err)
	}
	t.resumen.Write(buf[:])
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (t *Trabajador) responderEco(tiempo uint32) error {
	if _, err := t.salida.Write([]byte{byte(tiempo)}); err != nil {
		return fmt.Errorf("no se pudo responder el eco: %w", err)
	}
	return nil
}

func (t *Trabajador) detenerse() error {
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGSTOP); err != nil {
		return fmt.Errorf("no se pudo pasar a detenido: %w", err)
	}
	return nil
}

func (t *Trabajador) escribirResultado() error {
	resultado := hex.EncodeToString(t.resumen.Sum(nil))
	if _, err := io.WriteString(t.salida, resultado); err != nil {
		return fmt.Errorf("no se pudo escribir el resultado: %w", err)
	}
	return nil
}
