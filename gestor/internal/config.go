package internal

import (
	"fmt"

	"github.com/cpu-warriors/gestor-procesos/gestor/internal/memoria"
)

const (
	PlanificadorSJF = "SJF"
	PlanificadorRR  = "RR"
)

type Config struct {
	Planificador     string `json:"algoritmo_planificacion"`
	Memoria          string `json:"estrategia_memoria"`
	CapacidadMemoria uint32 `json:"capacidad_memoria"`
	Quantum          uint32 `json:"quantum"`
	ArchivoProcesos  string `json:"archivo_procesos"`
	BinarioProceso   string `json:"binario_proceso"`
	PuertoMonitor    int    `json:"puerto_monitor"`
	LogLevel         string `json:"log_level"`
	MostrarDetalle   bool   `json:"mostrar_detalle"`
}

// DefaultConfig arma la configuración base que el archivo JSON y los flags
// van pisando.
func DefaultConfig() *Config {
	return &Config{
		Planificador:     PlanificadorSJF,
		Memoria:          string(memoria.EstrategiaInfinita),
		CapacidadMemoria: memoria.CapacidadDefault,
		Quantum:          1,
		BinarioProceso:   "./proceso",
		LogLevel:         "info",
	}
}

func (c *Config) Validar() error {
	switch c.Planificador {
	case PlanificadorSJF, PlanificadorRR:
	default:
		return fmt.Errorf("algoritmo de planificación desconocido: %q", c.Planificador)
	}

	switch memoria.Estrategia(c.Memoria) {
	case memoria.EstrategiaInfinita, memoria.EstrategiaBestFit:
	default:
		return fmt.Errorf("estrategia de memoria desconocida: %q", c.Memoria)
	}

	if c.Quantum == 0 {
		return fmt.Errorf("el quantum tiene que ser positivo")
	}
	if c.ArchivoProcesos == "" {
		return fmt.Errorf("falta el archivo de procesos")
	}
	return nil
}
