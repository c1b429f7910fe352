package internal

import (
	"fmt"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// ejecutarProceso pasa el proceso a RUNNING y avanza el protocolo con el
// trabajador: lo lanza si es la primera vez, o lo reanuda si venía suspendido.
func (s *Service) ejecutarProceso(p *Proceso) error {
	p.Estado = EstadoRunning
	s.EnEjecucion = p

	fmt.Fprintf(s.Salida, "%d,RUNNING,process_name=%s,remaining_time=%d\n",
		s.Reloj, p.Programa.Nombre, p.Restante())

	if !p.Conexion.Iniciada() {
		if err := p.Conexion.Iniciar(s.Reloj); err != nil {
			return fmt.Errorf("no se pudo iniciar %s: %w", p.Programa.Nombre, err)
		}
		return nil
	}
	return p.Conexion.Continuar(s.Reloj)
}

// suspenderProceso detiene al proceso en ejecución y lo devuelve al final de
// la cola ready. Vuelve recién cuando el trabajador está detenido de verdad.
func (s *Service) suspenderProceso(p *Proceso) error {
	if err := p.Conexion.Detener(s.Reloj); err != nil {
		return fmt.Errorf("no se pudo suspender %s: %w", p.Programa.Nombre, err)
	}

	p.Estado = EstadoReady
	s.ColaReady.Add(p)
	s.EnEjecucion = nil

	s.Log.Debug("proceso expropiado",
		log.IntAttr("pid", p.PID),
		log.StringAttr("proceso", p.Programa.Nombre),
		log.IntAttr("reloj", int(s.Reloj)),
	)
	return nil
}

// terminarProceso cierra el ciclo de vida: intercambio final con el
// trabajador, devolución del bloque de memoria y las dos líneas de cierre.
func (s *Service) terminarProceso(p *Proceso) error {
	s.pendientes--

	resultado, err := p.Conexion.Terminar(s.Reloj)
	if err != nil {
		return fmt.Errorf("no se pudo terminar %s: %w", p.Programa.Nombre, err)
	}
	p.Resultado = resultado
	p.Estado = EstadoFinished
	p.Fin = s.Reloj

	if p.Bloque != nil {
		s.Asignador.Liberar(p.Bloque)
		p.Bloque = nil
	}

	fmt.Fprintf(s.Salida, "%d,FINISHED,process_name=%s,proc_remaining=%d\n",
		s.Reloj, p.Programa.Nombre, s.pendientes)
	fmt.Fprintf(s.Salida, "%d,FINISHED-PROCESS,process_name=%s,result=%s\n",
		s.Reloj, p.Programa.Nombre, p.Resultado)

	s.EnEjecucion = nil
	return nil
}
