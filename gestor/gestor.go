package main

import (
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cpu-warriors/gestor-procesos/gestor/cmd/api"
	"github.com/cpu-warriors/gestor-procesos/gestor/internal"
	"github.com/cpu-warriors/gestor-procesos/gestor/pkg/monitor"
	"github.com/cpu-warriors/gestor-procesos/utils/config"
	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

const configPorDefecto = "configs/config.json"

func main() {
	var (
		configRuta   = flag.String("config", configPorDefecto, "ruta del archivo de configuración")
		archivo      = flag.String("f", "", "archivo con la tanda de procesos")
		planificador = flag.String("s", "", "algoritmo de planificación: SJF o RR")
		estrategia   = flag.String("m", "", "estrategia de memoria: infinite o best-fit")
		quantum      = flag.Uint64("q", 0, "quantum de la simulación")
		puerto       = flag.Int("puerto", 0, "puerto de la API de monitoreo")
		detalle      = flag.Bool("detalle", false, "imprime la tabla de detalle por proceso al final")
		estado       = flag.String("estado", "", "host:puerto de un gestor en ejecución: consulta su estado y sale")
	)
	flag.Parse()

	cfg := internal.DefaultConfig()
	if err := config.IniciarConfiguracion(*configRuta, cfg); err != nil {
		// Sin archivo en la ruta por defecto se arranca con los defaults; una
		// ruta pedida explícitamente tiene que existir.
		if fueExplicito("config") || !errors.Is(err, os.ErrNotExist) {
			stdlog.Fatalf("Error cargando la configuración: %v", err)
		}
	}

	// Los flags presentes en la línea de comandos pisan al archivo.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.ArchivoProcesos = *archivo
		case "s":
			cfg.Planificador = *planificador
		case "m":
			cfg.Memoria = *estrategia
		case "q":
			q, err := quantumDesdeFlag(*quantum)
			if err != nil {
				stdlog.Fatalf("Quantum inválido: %v", err)
			}
			cfg.Quantum = q
		case "puerto":
			cfg.PuertoMonitor = *puerto
		case "detalle":
			cfg.MostrarDetalle = *detalle
		}
	})

	logger := log.BuildLogger(cfg.LogLevel)

	if *estado != "" {
		consultarEstado(*estado, logger)
		return
	}

	s, err := internal.NewService(cfg, logger)
	if err != nil {
		stdlog.Fatalf("Error armando la simulación: %v", err)
	}
	if err := s.CargarProgramas(cfg.ArchivoProcesos); err != nil {
		stdlog.Fatalf("Error cargando la tanda: %v", err)
	}

	if cfg.PuertoMonitor > 0 {
		servirMonitor(cfg.PuertoMonitor, logger, s)
	}

	if err := s.Ejecutar(); err != nil {
		logger.Error("La simulación terminó con error", log.ErrAttr(err))
		os.Exit(1)
	}
	s.ResumenFinal()
}

// quantumDesdeFlag valida que el quantum de la línea de comandos entre en el
// reloj de 32 bits de la simulación antes de angostarlo.
func quantumDesdeFlag(valor uint64) (uint32, error) {
	if valor == 0 {
		return 0, fmt.Errorf("el quantum tiene que ser positivo")
	}
	if valor > math.MaxUint32 {
		return 0, fmt.Errorf("el quantum %d no entra en 32 bits", valor)
	}
	return uint32(valor), nil
}

func fueExplicito(nombre string) bool {
	explicito := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == nombre {
			explicito = true
		}
	})
	return explicito
}

// servirMonitor levanta la API de consulta en una goroutine aparte. La
// simulación no la espera: si el puerto está tomado se pierde el monitoreo,
// no la corrida.
func servirMonitor(puerto int, logger *slog.Logger, s *internal.Service) {
	h := api.NewHandler(logger, s)
	direccion := fmt.Sprintf(":%d", puerto)

	go func() {
		logger.Info("API de monitoreo escuchando",
			log.StringAttr("direccion", direccion),
		)
		if err := http.ListenAndServe(direccion, h.Router()); err != nil {
			logger.Error("La API de monitoreo se cayó", log.ErrAttr(err))
		}
	}()
}

// consultarEstado interroga a un gestor en ejecución y muestra sus tablas.
func consultarEstado(direccion string, logger *slog.Logger) {
	host, puertoTexto, err := net.SplitHostPort(direccion)
	if err != nil {
		stdlog.Fatalf("Dirección inválida %q: %v", direccion, err)
	}
	puertoEstado, err := strconv.Atoi(puertoTexto)
	if err != nil {
		stdlog.Fatalf("Puerto inválido %q: %v", puertoTexto, err)
	}

	m := monitor.NewMonitor(host, puertoEstado, logger)

	procesos, err := m.Procesos()
	if err != nil {
		stdlog.Fatalf("Error consultando los procesos: %v", err)
	}

	tabla := tablewriter.NewWriter(os.Stdout)
	tabla.SetHeader([]string{"PID", "Proceso", "Estado", "Llegada", "Servicio", "Ejecutado"})
	for _, p := range procesos.Procesos {
		tabla.Append([]string{
			strconv.Itoa(p.PID),
			p.Nombre,
			p.Estado,
			strconv.FormatUint(uint64(p.Llegada), 10),
			strconv.FormatUint(uint64(p.Servicio), 10),
			strconv.FormatUint(uint64(p.Ejecutado), 10),
		})
	}
	tabla.SetFooter([]string{"", "", "", "", "Reloj", strconv.FormatUint(uint64(procesos.Reloj), 10)})
	tabla.Render()

	memoria, err := m.Memoria()
	if err != nil {
		stdlog.Fatalf("Error consultando la memoria: %v", err)
	}
	if len(memoria.Libres) > 0 {
		libres := tablewriter.NewWriter(os.Stdout)
		libres.SetHeader([]string{"Inicio", "Tamanio"})
		for _, b := range memoria.Libres {
			libres.Append([]string{
				strconv.FormatUint(uint64(b.Inicio), 10),
				strconv.FormatUint(uint64(b.Tamanio), 10),
			})
		}
		libres.Render()
	}

	estadisticas, err := m.Estadisticas()
	if err != nil {
		stdlog.Fatalf("Error consultando las estadísticas: %v", err)
	}
	fmt.Printf("Pendientes %d\n", procesos.Pendientes)
	fmt.Printf("Finalizados %d\n", estadisticas.Finalizados)
	fmt.Printf("Turnaround time %d\n", estadisticas.Turnaround)
	fmt.Printf("Time overhead %.2f %.2f\n", estadisticas.OverheadMaximo, estadisticas.OverheadMedio)
	fmt.Printf("Makespan %d\n", estadisticas.Makespan)
}
