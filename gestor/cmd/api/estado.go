package api

import (
	"encoding/json"
	"net/http"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// Procesos responde la tabla de procesos de la última instantánea publicada.
func (h *Handler) Procesos(w http.ResponseWriter, r *http.Request) {
	foto := h.Fuente.Foto()
	if foto == nil {
		http.Error(w, "la simulación todavía no publicó ninguna foto", http.StatusServiceUnavailable)
		return
	}

	h.responder(w, RespuestaProcesos{
		Reloj:      foto.Reloj,
		Pendientes: foto.Pendientes,
		Procesos:   foto.Procesos,
	})
}

// Memoria responde los bloques libres del asignador.
func (h *Handler) Memoria(w http.ResponseWriter, r *http.Request) {
	foto := h.Fuente.Foto()
	if foto == nil {
		http.Error(w, "la simulación todavía no publicó ninguna foto", http.StatusServiceUnavailable)
		return
	}

	h.responder(w, RespuestaMemoria{
		Reloj:  foto.Reloj,
		Libres: foto.Memoria,
	})
}

// Estadisticas responde los indicadores acumulados hasta el instante de la
// foto.
func (h *Handler) Estadisticas(w http.ResponseWriter, r *http.Request) {
	foto := h.Fuente.Foto()
	if foto == nil {
		http.Error(w, "la simulación todavía no publicó ninguna foto", http.StatusServiceUnavailable)
		return
	}

	h.responder(w, foto.Estadisticas)
}

func (h *Handler) responder(w http.ResponseWriter, cuerpo any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cuerpo); err != nil {
		h.Log.Error("no se pudo codificar la respuesta", log.ErrAttr(err))
		http.Error(w, "no se pudo codificar la respuesta", http.StatusInternalServerError)
	}
}
