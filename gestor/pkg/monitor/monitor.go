// Package monitor es el cliente HTTP de la API de consulta del gestor. Lo usa
// el modo -estado del binario y cualquier tablero externo que quiera espiar la
// simulación sin frenarla.
package monitor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// Proceso es la vista de un proceso tal como la publica el gestor.
type Proceso struct {
	PID       int    `json:"pid"`
	Nombre    string `json:"nombre"`
	Estado    string `json:"estado"`
	Llegada   uint32 `json:"llegada"`
	Servicio  uint32 `json:"servicio"`
	Ejecutado uint32 `json:"ejecutado"`
}

// Bloque es un tramo libre del pool de memoria simulado.
type Bloque struct {
	Inicio  uint32 `json:"inicio"`
	Tamanio uint32 `json:"tamanio"`
}

type EstadoProcesos struct {
	Reloj      uint32    `json:"reloj"`
	Pendientes uint32    `json:"pendientes"`
	Procesos   []Proceso `json:"procesos"`
}

type EstadoMemoria struct {
	Reloj  uint32   `json:"reloj"`
	Libres []Bloque `json:"libres"`
}

type Estadisticas struct {
	Turnaround     uint32  `json:"turnaround"`
	OverheadMaximo float64 `json:"overhead_maximo"`
	OverheadMedio  float64 `json:"overhead_medio"`
	Makespan       uint32  `json:"makespan"`
	Finalizados    int     `json:"finalizados"`
}

type Monitor struct {
	IP     string
	Puerto int
	Log    *slog.Logger
}

func NewMonitor(ip string, puerto int, logger *slog.Logger) *Monitor {
	return &Monitor{
		IP:     ip,
		Puerto: puerto,
		Log:    logger,
	}
}

// Procesos consulta la tabla de procesos del último paso simulado.
func (m *Monitor) Procesos() (*EstadoProcesos, error) {
	var estado EstadoProcesos
	if err := m.consultar("procesos", &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

// Memoria consulta los bloques libres del asignador.
func (m *Monitor) Memoria() (*EstadoMemoria, error) {
	var estado EstadoMemoria
	if err := m.consultar("memoria", &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

// Estadisticas consulta los indicadores acumulados de la tanda.
func (m *Monitor) Estadisticas() (*Estadisticas, error) {
	var estadisticas Estadisticas
	if err := m.consultar("estadisticas", &estadisticas); err != nil {
		return nil, err
	}
	return &estadisticas, nil
}

func (m *Monitor) consultar(recurso string, destino any) error {
	url := fmt.Sprintf("http://%s:%d/%s", m.IP, m.Puerto, recurso)

	resp, err := http.Get(url)
	if err != nil {
		m.Log.Error("Error al consultar el gestor",
			log.ErrAttr(err),
			log.StringAttr("ip", m.IP),
			log.IntAttr("puerto", m.Puerto),
			log.StringAttr("recurso", recurso),
		)
		return err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		m.Log.Error("El gestor respondió con error",
			log.StringAttr("recurso", recurso),
			log.IntAttr("status_code", resp.StatusCode),
		)
		return fmt.Errorf("el gestor respondió con status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(destino); err != nil {
		m.Log.Error("Error al decodificar la respuesta del gestor",
			log.ErrAttr(err),
			log.StringAttr("recurso", recurso),
		)
		return fmt.Errorf("no se pudo decodificar la respuesta de %s: %w", recurso, err)
	}

	m.Log.Debug("Consulta al gestor exitosa",
		log.StringAttr("recurso", recurso),
		log.IntAttr("status_code", resp.StatusCode),
	)
	return nil
}
