package proceso

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// LargoResultado es la cantidad de bytes del resultado que entrega el proceso
// al terminar.
const LargoResultado = 64

// ErrEcoInvalido indica que el proceso devolvió un eco distinto del byte bajo
// del tiempo enviado: su reloj y el del gestor divergieron, no hay reintento.
var ErrEcoInvalido = errors.New("el eco del proceso no coincide con el tiempo enviado")

// Conexion maneja un proceso trabajador: lo lanza con el nombre del programa
// como único argumento, le comunica el tiempo simulado por su entrada estándar
// y lo controla con señales. Todos los intercambios son sincrónicos.
type Conexion struct {
	Nombre  string
	Log     *slog.Logger
	binario string
	cmd     *exec.Cmd
	entrada io.WriteCloser
	salida  io.ReadCloser
}

func NewConexion(binario, nombre string, logger *slog.Logger) *Conexion {
	return &Conexion{
		Nombre:  nombre,
		Log:     logger,
		binario: binario,
	}
}

// Iniciada indica si el proceso trabajador ya fue lanzado.
func (c *Conexion) Iniciada() bool {
	return c.cmd != nil
}

// Iniciar lanza el proceso, le envía el tiempo actual y verifica el eco.
func (c *Conexion) Iniciar(tiempo uint32) error {
	cmd := exec.Command(c.binario, c.Nombre)
	cmd.Stderr = os.Stderr

	entrada, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("no se pudo crear el canal de entrada para %s: %w", c.Nombre, err)
	}
	salida, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("no se pudo crear el canal de salida para %s: %w", c.Nombre, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("no se pudo lanzar el proceso %s: %w", c.Nombre, err)
	}
	c.cmd = cmd
	c.entrada = entrada
	c.salida = salida

	c.Log.Debug("proceso lanzado",
		log.StringAttr("proceso", c.Nombre),
		log.IntAttr("pid", cmd.Process.Pid),
	)

	if err := c.enviarTiempo(tiempo); err != nil {
		return err
	}
	return c.verificarEco(tiempo)
}

// Continuar comunica el nuevo tiempo, reanuda al proceso con SIGCONT y
// verifica el eco. También se usa cada quantum sobre un proceso que nunca se
// detuvo: la señal no lo altera y el eco confirma que recibió el tiempo.
func (c *Conexion) Continuar(tiempo uint32) error {
	if err := c.enviarTiempo(tiempo); err != nil {
		return err
	}
	if err := c.cmd.Process.Signal(syscall.SIGCONT); err != nil {
		return fmt.Errorf("no se pudo enviar SIGCONT a %s: %w", c.Nombre, err)
	}
	return c.verificarEco(tiempo)
}

// Detener comunica el tiempo, pide la suspensión con SIGTSTP y espera hasta
// que el proceso esté efectivamente detenido, no solo señalizado.
func (c *Conexion) Detener(tiempo uint32) error {
	if err := c.enviarTiempo(tiempo); err != nil {
		return err
	}
	if err := c.cmd.Process.Signal(syscall.SIGTSTP); err != nil {
		return fmt.Errorf("no se pudo enviar SIGTSTP a %s: %w", c.Nombre, err)
	}
	return c.esperarDetencion()
}

// Terminar envía el tiempo final con SIGTERM, lee el resultado del proceso y
// libera los canales y el hijo.
func (c *Conexion) Terminar(tiempo uint32) (string, error) {
	if err := c.enviarTiempo(tiempo); err != nil {
		return "", err
	}
	if err := c.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return "", fmt.Errorf("no se pudo enviar SIGTERM a %s: %w", c.Nombre, err)
	}

	resultado := make([]byte, LargoResultado)
	if _, err := io.ReadFull(c.salida, resultado); err != nil {
		return "", fmt.Errorf("no se pudo leer el resultado de %s: %w", c.Nombre, err)
	}

	c.cerrarCanales()
	if err := c.cmd.Wait(); err != nil {
		c.Log.Warn("el proceso no terminó limpio",
			log.StringAttr("proceso", c.Nombre),
			log.ErrAttr(err),
		)
	}

	c.Log.Debug("proceso terminado",
		log.StringAttr("proceso", c.Nombre),
		log.IntAttr("tiempo", int(tiempo)),
	)
	return string(resultado), nil
}

// Abortar corta la conexión ante un error fatal de la simulación: mata al
// hijo si sigue vivo y cierra ambos canales para no filtrar descriptores.
func (c *Conexion) Abortar() {
	if c.cmd == nil {
		return
	}
	if err := c.cmd.Process.Kill(); err == nil {
		_ = c.cmd.Wait()
	}
	c.cerrarCanales()
}

func (c *Conexion) cerrarCanales() {
	if c.entrada != nil {
		_ = c.entrada.Close()
		c.entrada = nil
	}
	if c.salida != nil {
		_ = c.salida.Close()
		c.salida = nil
	}
}

func (c *Conexion) enviarTiempo(tiempo uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], tiempo)
	if err := c.escribirCompleto(buf[:]); err != nil {
		return fmt.Errorf("no se pudo enviar el tiempo a %s: %w", c.Nombre, err)
	}
	return nil
}

// escribirCompleto reintenta hasta transferir el buffer entero; una escritura
// parcial sin error no corta el envío.
func (c *Conexion) escribirCompleto(buf []byte) error {
	for len(buf) > 0 {
		n, err := c.entrada.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

func (c *Conexion) verificarEco(tiempo uint32) error {
	var eco [1]byte
	if _, err := io.ReadFull(c.salida, eco[:]); err != nil {
		return fmt.Errorf("no se pudo leer el eco de %s: %w", c.Nombre, err)
	}
	if eco[0] != byte(tiempo) {
		return fmt.Errorf("%w: proceso %s, esperado %#02x, recibido %#02x",
			ErrEcoInvalido, c.Nombre, byte(tiempo), eco[0])
	}
	return nil
}

// esperarDetencion bloquea hasta que el hijo queda detenido de verdad. Si en
// cambio finaliza, la suspensión falló.
func (c *Conexion) esperarDetencion() error {
	var estado syscall.WaitStatus
	for {
		wpid, err := syscall.Wait4(c.cmd.Process.Pid, &estado, syscall.WUNTRACED, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("falló la espera por la detención de %s: %w", c.Nombre, err)
		}
		if wpid != c.cmd.Process.Pid {
			continue
		}
		if estado.Stopped() {
			c.Log.Debug("proceso detenido", log.StringAttr("proceso", c.Nombre))
			return nil
		}
		if estado.Exited() || estado.Signaled() {
			return fmt.Errorf("el proceso %s finalizó antes de detenerse", c.Nombre)
		}
	}
}
