package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/cpu-warriors/gestor-procesos/gestor/internal"
)

// FuenteFoto entrega la última instantánea que publicó la simulación. El
// motor la implementa; los tests inyectan una fija.
type FuenteFoto interface {
	Foto() *internal.Foto
}

type Handler struct {
	Log    *slog.Logger
	Fuente FuenteFoto
}

func NewHandler(logger *slog.Logger, fuente FuenteFoto) *Handler {
	return &Handler{
		Log:    logger,
		Fuente: fuente,
	}
}

// Router arma las rutas de consulta del monitor.
func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/procesos", h.Procesos)
	r.Get("/memoria", h.Memoria)
	r.Get("/estadisticas", h.Estadisticas)
	return r
}
