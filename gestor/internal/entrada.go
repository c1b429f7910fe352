package internal

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// LargoMaximoNombre limita el nombre de los programas de la tanda.
const LargoMaximoNombre = 8

// CargarProgramas lee la tanda del archivo de entrada. Cada línea trae
// `llegada nombre servicio memoria`. Ante la primera línea que no parsea se
// deja de leer; las líneas en blanco se ignoran.
func (s *Service) CargarProgramas(ruta string) error {
	archivo, err := os.Open(ruta)
	if err != nil {
		return fmt.Errorf("no se pudo abrir el archivo de procesos %s: %w", ruta, err)
	}
	defer func() {
		_ = archivo.Close()
	}()

	scanner := bufio.NewScanner(archivo)
	linea := 0
	for scanner.Scan() {
		linea++
		texto := strings.TrimSpace(scanner.Text())
		if texto == "" {
			continue
		}

		programa, err := parsearPrograma(texto)
		if err != nil {
			s.Log.Warn("registro inválido, se deja de leer la tanda",
				log.IntAttr("linea", linea),
				log.ErrAttr(err),
			)
			break
		}
		s.programas = append(s.programas, programa)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("no se pudo leer el archivo de procesos %s: %w", ruta, err)
	}

	s.Log.Info("tanda cargada",
		log.StringAttr("archivo", ruta),
		log.IntAttr("programas", len(s.programas)),
	)
	return nil
}

func parsearPrograma(texto string) (*Programa, error) {
	campos := strings.Fields(texto)
	if len(campos) != 4 {
		return nil, fmt.Errorf("se esperaban 4 campos y hay %d", len(campos))
	}

	llegada, err := strconv.ParseUint(campos[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("llegada inválida %q: %w", campos[0], err)
	}

	nombre := campos[1]
	if len(nombre) > LargoMaximoNombre {
		return nil, fmt.Errorf("nombre %q más largo que %d caracteres", nombre, LargoMaximoNombre)
	}

	servicio, err := strconv.ParseUint(campos[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("servicio inválido %q: %w", campos[2], err)
	}
	if servicio == 0 {
		return nil, fmt.Errorf("el servicio tiene que ser positivo")
	}

	mem, err := strconv.ParseUint(campos[3], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("memoria inválida %q: %w", campos[3], err)
	}

	return &Programa{
		Nombre:   nombre,
		Llegada:  uint32(llegada),
		Servicio: uint32(servicio),
		Memoria:  uint32(mem),
	}, nil
}
