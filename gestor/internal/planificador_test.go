package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElegirSJF(t *testing.T) {
	tests := []struct {
		name      string
		programas []*Programa
		want      string
	}{
		{
			name: "gana el de menor servicio",
			programas: []*Programa{
				{Nombre: "LARGO", Llegada: 0, Servicio: 9},
				{Nombre: "CORTO", Llegada: 0, Servicio: 2},
				{Nombre: "MEDIO", Llegada: 0, Servicio: 5},
			},
			want: "CORTO",
		},
		{
			name: "con igual servicio gana el que llegó antes",
			programas: []*Programa{
				{Nombre: "SEGUNDO", Llegada: 4, Servicio: 5},
				{Nombre: "PRIMERO", Llegada: 1, Servicio: 5},
			},
			want: "PRIMERO",
		},
		{
			name: "con igual servicio y llegada desempata el nombre",
			programas: []*Programa{
				{Nombre: "ZETA", Llegada: 0, Servicio: 5},
				{Nombre: "ALFA", Llegada: 0, Servicio: 5},
			},
			want: "ALFA",
		},
		{
			name: "un empate total conserva el orden de la cola",
			programas: []*Programa{
				{Nombre: "IGUAL", Llegada: 0, Servicio: 5},
				{Nombre: "IGUAL", Llegada: 0, Servicio: 5},
			},
			want: "IGUAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ass := assert.New(t)

			config := DefaultConfig()
			config.Quantum = 1
			s, _, _ := armarService(t, config, nil)

			var primero *Proceso
			for _, programa := range tt.programas {
				p := &Proceso{Programa: programa, Estado: EstadoReady}
				if primero == nil {
					primero = p
				}
				s.ColaReady.Add(p)
			}

			elegido := s.elegirSJF()
			ass.Equal(tt.want, elegido.Programa.Nombre)
			if tt.programas[0].Nombre == tt.want {
				ass.Same(primero, elegido, "ante el empate total tiene que salir el primero de la cola")
			}
			ass.Equal(len(tt.programas)-1, s.ColaReady.Size())
		})
	}
}

// Una llegada en el mismo paso de una expropiación se encola antes que el
// proceso expropiado: la admisión corre al principio del paso.
func TestRoundRobinLlegadaAntesQueElExpropiado(t *testing.T) {
	ass := assert.New(t)

	config := DefaultConfig()
	config.Planificador = PlanificadorRR
	config.Quantum = 4

	s, salida, _ := armarService(t, config, []*Programa{
		{Nombre: "P1", Llegada: 0, Servicio: 9, Memoria: 0},
		{Nombre: "P2", Llegada: 4, Servicio: 3, Memoria: 0},
	})

	ass.NoError(s.Ejecutar())

	compararLineas(t, lineas(salida), []string{
		"0,RUNNING,process_name=P1,remaining_time=9",
		"4,RUNNING,process_name=P2,remaining_time=3",
		"8,FINISHED,process_name=P2,proc_remaining=1",
		"8,FINISHED-PROCESS,process_name=P2,result=" + resultadoFalso("P2"),
		"8,RUNNING,process_name=P1,remaining_time=5",
		"16,FINISHED,process_name=P1,proc_remaining=0",
		"16,FINISHED-PROCESS,process_name=P1,result=" + resultadoFalso("P1"),
	})
}

func TestMantenerEnEjecucionSJFNoExpropia(t *testing.T) {
	ass := assert.New(t)

	config := DefaultConfig()
	config.Quantum = 1
	s, _, _ := armarService(t, config, nil)

	actual := &conexionFalsa{nombre: "ACTUAL", iniciada: true}
	s.EnEjecucion = &Proceso{
		Programa: &Programa{Nombre: "ACTUAL", Servicio: 10},
		Estado:   EstadoRunning,
		Conexion: actual,
	}
	s.ColaReady.Add(&Proceso{Programa: &Programa{Nombre: "ESPERA", Servicio: 1}})

	mantiene, err := s.mantenerEnEjecucion()
	ass.NoError(err)
	ass.True(mantiene, "SJF no expropia aunque haya un proceso más corto esperando")
	ass.Equal([]string{"continuar@0"}, actual.historial)
}
