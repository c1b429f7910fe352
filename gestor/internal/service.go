package internal

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/cpu-warriors/gestor-procesos/gestor/internal/memoria"
	"github.com/cpu-warriors/gestor-procesos/gestor/pkg/proceso"
	"github.com/cpu-warriors/gestor-procesos/utils/listas"
	uniqueid "github.com/cpu-warriors/gestor-procesos/utils/unique-id"
)

// Service es el motor de la simulación: dueño único del reloj, las colas, el
// asignador y el registro de procesos. Un solo bucle lo recorre todo; lo único
// que cruza a otras goroutines es la Foto publicada para el monitor.
type Service struct {
	Config    *Config
	Log       *slog.Logger
	Salida    io.Writer
	Reloj     uint32
	Asignador memoria.Asignador

	ColaAdmision *listas.Lista[*Programa]
	ColaReady    *listas.Lista[*Proceso]
	Registro     *listas.Lista[*Proceso]
	EnEjecucion  *Proceso

	programas       []*Programa
	proximoPrograma int
	pendientes      uint32

	ids           *uniqueid.UniqueID
	nuevaConexion func(nombre string) ConexionProceso

	mu   sync.RWMutex
	foto *Foto
}

func NewService(config *Config, logger *slog.Logger) (*Service, error) {
	if err := config.Validar(); err != nil {
		return nil, err
	}

	asignador, err := memoria.NewAsignador(
		memoria.Estrategia(config.Memoria),
		config.CapacidadMemoria,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		Config:       config,
		Log:          logger,
		Salida:       os.Stdout,
		Asignador:    asignador,
		ColaAdmision: listas.Nueva[*Programa](),
		ColaReady:    listas.Nueva[*Proceso](),
		Registro:     listas.Nueva[*Proceso](),
		ids:          uniqueid.Init(),
		nuevaConexion: func(nombre string) ConexionProceso {
			return proceso.NewConexion(config.BinarioProceso, nombre, logger)
		},
	}, nil
}
