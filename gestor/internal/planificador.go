package internal

import "fmt"

// mantenerEnEjecucion decide si el proceso actual conserva el procesador en
// este paso. SJF nunca expropia; RR expropia en cada límite de quantum si hay
// alguien esperando en ready. En ambos casos el proceso que sigue corriendo
// recibe el tiempo nuevo.
func (s *Service) mantenerEnEjecucion() (bool, error) {
	if s.EnEjecucion == nil {
		return false, nil
	}

	switch s.Config.Planificador {
	case PlanificadorSJF:
		if err := s.EnEjecucion.Conexion.Continuar(s.Reloj); err != nil {
			return false, err
		}
		return true, nil

	case PlanificadorRR:
		if s.ColaReady.IsEmpty() {
			if err := s.EnEjecucion.Conexion.Continuar(s.Reloj); err != nil {
				return false, err
			}
			return true, nil
		}
		if err := s.suspenderProceso(s.EnEjecucion); err != nil {
			return false, err
		}
		return false, nil
	}

	return false, fmt.Errorf("algoritmo de planificación desconocido: %q", s.Config.Planificador)
}

// despacharSiguiente saca el próximo proceso de la cola ready según el
// algoritmo configurado y lo pone a ejecutar. Con la cola vacía no hay nada
// que hacer: el reloj avanza igual.
func (s *Service) despacharSiguiente() error {
	if s.ColaReady.IsEmpty() {
		return nil
	}

	var elegido *Proceso
	switch s.Config.Planificador {
	case PlanificadorRR:
		elegido, _ = s.ColaReady.Dequeue()
	default:
		elegido = s.elegirSJF()
	}

	return s.ejecutarProceso(elegido)
}

// elegirSJF toma el proceso de menor servicio y lo remueve de la cola.
func (s *Service) elegirSJF() *Proceso {
	indice := 0
	mejor, _ := s.ColaReady.Get(0)
	for i := 1; i < s.ColaReady.Size(); i++ {
		candidato, _ := s.ColaReady.Get(i)
		if esMasCorto(candidato, mejor) {
			mejor = candidato
			indice = i
		}
	}
	s.ColaReady.Remove(indice)
	return mejor
}

// esMasCorto ordena por servicio, llegada y nombre. Ante una igualdad exacta
// devuelve false: gana el que apareció primero en la cola.
func esMasCorto(candidato, mejor *Proceso) bool {
	if candidato.Programa.Servicio != mejor.Programa.Servicio {
		return candidato.Programa.Servicio < mejor.Programa.Servicio
	}
	if candidato.Programa.Llegada != mejor.Programa.Llegada {
		return candidato.Programa.Llegada < mejor.Programa.Llegada
	}
	return candidato.Programa.Nombre < mejor.Programa.Nombre
}
