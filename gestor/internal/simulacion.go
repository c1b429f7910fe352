package internal

import (
	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// Ejecutar corre la simulación hasta que toda la tanda haya finalizado. Cada
// vuelta es un paso de un quantum: admisión, decisión de expropiación,
// despacho si el procesador quedó libre y avance del reloj. El reloj corre
// aunque no haya nada para ejecutar.
func (s *Service) Ejecutar() error {
	s.publicarFoto()

	for !s.terminada() {
		s.admitirPendientes()

		mantiene, err := s.mantenerEnEjecucion()
		if err != nil {
			s.abortar(err)
			return err
		}
		if !mantiene {
			if err := s.despacharSiguiente(); err != nil {
				s.abortar(err)
				return err
			}
		}

		if err := s.avanzarReloj(); err != nil {
			s.abortar(err)
			return err
		}
		s.publicarFoto()
	}

	s.Log.Info("simulación finalizada",
		log.IntAttr("reloj", int(s.Reloj)),
		log.IntAttr("procesos", s.Registro.Size()),
	)
	return nil
}

// terminada indica si todos los programas de la tanda ya finalizaron. Un
// registro incompleto significa que todavía hay programas por llegar o por
// admitir, aunque el procesador esté ocioso.
func (s *Service) terminada() bool {
	if len(s.programas) == 0 {
		return true
	}

	finalizados := 0
	s.Registro.ForEach(func(p *Proceso) {
		if p.Estado == EstadoFinished {
			finalizados++
		}
	})
	return finalizados == len(s.programas)
}

// avanzarReloj suma el quantum al reloj y le acredita la ejecución al proceso
// actual. Si con eso cubre su servicio, la terminación ocurre en este mismo
// paso, ya con el tiempo nuevo.
func (s *Service) avanzarReloj() error {
	s.Reloj += s.Config.Quantum

	p := s.EnEjecucion
	if p == nil {
		return nil
	}

	p.Ejecutado += s.Config.Quantum
	if p.Ejecutado >= p.Programa.Servicio {
		p.Ejecutado = p.Programa.Servicio
		return s.terminarProceso(p)
	}
	return nil
}

// abortar corta las conexiones vivas ante un error fatal para no dejar
// trabajadores colgados ni descriptores abiertos.
func (s *Service) abortar(causa error) {
	s.Log.Error("simulación abortada", log.ErrAttr(causa))
	s.Registro.ForEach(func(p *Proceso) {
		if p.Estado != EstadoFinished && p.Conexion != nil && p.Conexion.Iniciada() {
			p.Conexion.Abortar()
		}
	})
}

// publicarFoto deja una instantánea inmutable para el monitor. Es lo único
// del motor que otra goroutine puede leer.
func (s *Service) publicarFoto() {
	foto := &Foto{
		Reloj:        s.Reloj,
		Pendientes:   s.pendientes,
		Memoria:      s.Asignador.Libres(),
		Estadisticas: s.Estadisticas(),
	}
	s.Registro.ForEach(func(p *Proceso) {
		foto.Procesos = append(foto.Procesos, FotoProceso{
			PID:       p.PID,
			Nombre:    p.Programa.Nombre,
			Estado:    p.Estado,
			Llegada:   p.Programa.Llegada,
			Servicio:  p.Programa.Servicio,
			Ejecutado: p.Ejecutado,
		})
	})

	s.mu.Lock()
	s.foto = foto
	s.mu.Unlock()
}

// Foto devuelve la última instantánea publicada, o nil si la simulación
// todavía no arrancó.
func (s *Service) Foto() *Foto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.foto
}
