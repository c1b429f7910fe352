package api

import (
	"github.com/cpu-warriors/gestor-procesos/gestor/internal"
	"github.com/cpu-warriors/gestor-procesos/gestor/internal/memoria"
)

// RespuestaProcesos es la vista de la tabla de procesos en un instante de la
// simulación.
type RespuestaProcesos struct {
	Reloj      uint32                 `json:"reloj"`
	Pendientes uint32                 `json:"pendientes"`
	Procesos   []internal.FotoProceso `json:"procesos"`
}

// RespuestaMemoria lista los bloques libres del pool en orden de inicio. Con
// la estrategia infinita la lista viene vacía.
type RespuestaMemoria struct {
	Reloj  uint32           `json:"reloj"`
	Libres []memoria.Bloque `json:"libres"`
}
