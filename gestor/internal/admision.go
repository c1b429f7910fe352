package internal

import (
	"fmt"

	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

// admitirPendientes corre la etapa de admisión de un paso: vuelca las llegadas
// nuevas a la cola de admisión y después intenta conseguirle memoria a cada
// entrada. Un programa grande que no entra no frena a los que vienen detrás.
func (s *Service) admitirPendientes() {
	for s.proximoPrograma < len(s.programas) {
		programa := s.programas[s.proximoPrograma]
		if programa.Llegada > s.Reloj {
			break
		}
		s.ColaAdmision.Add(programa)
		s.pendientes++
		s.proximoPrograma++
	}

	for i := 0; i < s.ColaAdmision.Size(); {
		programa, _ := s.ColaAdmision.Get(i)

		bloque, ok := s.Asignador.Asignar(programa.Memoria)
		if !ok {
			i++
			continue
		}

		proceso := &Proceso{
			PID:      s.ids.GetUniqueID(),
			Programa: programa,
			Estado:   EstadoReady,
			Bloque:   bloque,
			Conexion: s.nuevaConexion(programa.Nombre),
		}
		s.Registro.Add(proceso)
		s.ColaReady.Add(proceso)
		s.ColaAdmision.Remove(i)

		s.Log.Debug("programa admitido",
			log.IntAttr("pid", proceso.PID),
			log.StringAttr("proceso", programa.Nombre),
			log.IntAttr("reloj", int(s.Reloj)),
		)

		// La línea READY solo sale cuando hubo un bloque asignado de verdad.
		if bloque != nil {
			fmt.Fprintf(s.Salida, "%d,READY,process_name=%s,assigned_at=%d\n",
				s.Reloj, programa.Nombre, bloque.Inicio)
		}
	}
}
