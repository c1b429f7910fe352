package internal

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Estadisticas calcula los agregados de la tanda sobre los procesos que ya
// finalizaron: turnaround techo del promedio, overhead máximo y promedio, y
// makespan.
func (s *Service) Estadisticas() Estadisticas {
	var (
		sumaTurnaround float64
		sumaOverhead   float64
		maxOverhead    float64
		finalizados    int
	)

	s.Registro.ForEach(func(p *Proceso) {
		if p.Estado != EstadoFinished {
			return
		}
		turnaround := float64(p.Fin - p.Programa.Llegada)
		overhead := turnaround / float64(p.Programa.Servicio)

		sumaTurnaround += turnaround
		sumaOverhead += overhead
		if overhead > maxOverhead {
			maxOverhead = overhead
		}
		finalizados++
	})

	if finalizados == 0 {
		return Estadisticas{}
	}

	return Estadisticas{
		Turnaround:     uint32(math.Ceil(sumaTurnaround / float64(finalizados))),
		OverheadMaximo: maxOverhead,
		OverheadMedio:  sumaOverhead / float64(finalizados),
		Makespan:       s.Reloj,
		Finalizados:    finalizados,
	}
}

// ResumenFinal imprime las tres líneas de cierre de la simulación y, si la
// configuración lo pide, la tabla de detalle por proceso en stderr.
func (s *Service) ResumenFinal() {
	est := s.Estadisticas()

	fmt.Fprintf(s.Salida, "Turnaround time %d\n", est.Turnaround)
	fmt.Fprintf(s.Salida, "Time overhead %.2f %.2f\n", est.OverheadMaximo, est.OverheadMedio)
	fmt.Fprintf(s.Salida, "Makespan %d\n", est.Makespan)

	if s.Config.MostrarDetalle {
		s.imprimirDetalle(os.Stderr)
	}
}

// imprimirDetalle arma la tabla por proceso con llegada, servicio, fin,
// turnaround y overhead.
func (s *Service) imprimirDetalle(w io.Writer) {
	tabla := tablewriter.NewWriter(w)
	tabla.SetHeader([]string{"Proceso", "Llegada", "Servicio", "Fin", "Turnaround", "Overhead"})

	filas := make([][]string, 0, s.Registro.Size())
	s.Registro.ForEach(func(p *Proceso) {
		if p.Estado != EstadoFinished {
			return
		}
		turnaround := p.Fin - p.Programa.Llegada
		overhead := float64(turnaround) / float64(p.Programa.Servicio)
		filas = append(filas, []string{
			p.Programa.Nombre,
			strconv.FormatUint(uint64(p.Programa.Llegada), 10),
			strconv.FormatUint(uint64(p.Programa.Servicio), 10),
			strconv.FormatUint(uint64(p.Fin), 10),
			strconv.FormatUint(uint64(turnaround), 10),
			fmt.Sprintf("%.2f", overhead),
		})
	})
	tabla.AppendBulk(filas)
	tabla.SetFooter([]string{"", "", "", "", "Makespan", strconv.FormatUint(uint64(s.Reloj), 10)})
	tabla.Render()
}
