package internal

import (
	"github.com/cpu-warriors/gestor-procesos/gestor/internal/memoria"
)

type Estado string

const (
	EstadoReady    Estado = "READY"
	EstadoRunning  Estado = "RUNNING"
	EstadoFinished Estado = "FINISHED"
)

// Programa es un registro inmutable de la tanda de entrada.
type Programa struct {
	Nombre   string `json:"nombre"`
	Llegada  uint32 `json:"llegada"`
	Servicio uint32 `json:"servicio"`
	Memoria  uint32 `json:"memoria"`
}

// Proceso es la instancia viva de un Programa admitido. Nace READY cuando la
// memoria se lo permite, y conserva sus recursos (bloque y conexión con el
// trabajador) hasta FINISHED.
type Proceso struct {
	PID       int
	Programa  *Programa
	Estado    Estado
	Ejecutado uint32
	Fin       uint32
	Bloque    *memoria.Bloque
	Conexion  ConexionProceso
	Resultado string
}

// Restante devuelve los ticks de servicio que el proceso aún no ejecutó.
func (p *Proceso) Restante() uint32 {
	return p.Programa.Servicio - p.Ejecutado
}

// ConexionProceso es el contrato con el trabajador que ejecuta al proceso.
// La implementación real vive en pkg/proceso; los tests inyectan una falsa.
type ConexionProceso interface {
	Iniciada() bool
	Iniciar(tiempo uint32) error
	Continuar(tiempo uint32) error
	Detener(tiempo uint32) error
	Terminar(tiempo uint32) (string, error)
	Abortar()
}

// Foto es la instantánea que el motor publica después de cada paso para el
// monitor. Es inmutable: el handler HTTP la lee sin tocar las colas.
type Foto struct {
	Reloj        uint32           `json:"reloj"`
	Pendientes   uint32           `json:"pendientes"`
	Procesos     []FotoProceso    `json:"procesos"`
	Memoria      []memoria.Bloque `json:"memoria"`
	Estadisticas Estadisticas     `json:"estadisticas"`
}

type FotoProceso struct {
	PID       int    `json:"pid"`
	Nombre    string `json:"nombre"`
	Estado    Estado `json:"estado"`
	Llegada   uint32 `json:"llegada"`
	Servicio  uint32 `json:"servicio"`
	Ejecutado uint32 `json:"ejecutado"`
}

// Estadisticas agrega los indicadores de la tanda sobre los procesos ya
// finalizados.
type Estadisticas struct {
	Turnaround     uint32  `json:"turnaround"`
	OverheadMaximo float64 `json:"overhead_maximo"`
	OverheadMedio  float64 `json:"overhead_medio"`
	Makespan       uint32  `json:"makespan"`
	Finalizados    int     `json:"finalizados"`
}
