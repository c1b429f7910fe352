package memoria

import (
	"fmt"
	"log/slog"

	"github.com/cpu-warriors/gestor-procesos/utils/listas"
	"github.com/cpu-warriors/gestor-procesos/utils/log"
)

type Estrategia string

const (
	// EstrategiaInfinita admite todos los programas sin llevar contabilidad.
	EstrategiaInfinita Estrategia = "infinite"
	// EstrategiaBestFit administra un pool fijo eligiendo el hueco que menos
	// espacio desperdicia.
	EstrategiaBestFit Estrategia = "best-fit"
)

// CapacidadDefault es el tamaño del pool cuando la configuración no indica otro.
const CapacidadDefault = 2048

// Bloque es un tramo contiguo de memoria del pool simulado.
type Bloque struct {
	Inicio  uint32 `json:"inicio"`
	Tamanio uint32 `json:"tamanio"`
}

func (b *Bloque) Fin() uint32 {
	return b.Inicio + b.Tamanio
}

// Asignador es la estrategia de memoria elegida al arrancar la simulación.
// Asignar devuelve false cuando no hay lugar: no es un error, el programa
// queda pendiente y se reintenta en el próximo paso.
type Asignador interface {
	Asignar(tamanio uint32) (*Bloque, bool)
	Liberar(bloque *Bloque)
	Libres() []Bloque
}

func NewAsignador(estrategia Estrategia, capacidad uint32, logger *slog.Logger) (Asignador, error) {
	switch estrategia {
	case EstrategiaInfinita:
		return Infinita{}, nil
	case EstrategiaBestFit:
		return NewBestFit(capacidad, logger), nil
	default:
		return nil, fmt.Errorf("estrategia de memoria desconocida: %q", estrategia)
	}
}

// Infinita concede todos los pedidos sin bloque asociado.
type Infinita struct{}

func (Infinita) Asignar(uint32) (*Bloque, bool) { return nil, true }

func (Infinita) Liberar(*Bloque) {}

func (Infinita) Libres() []Bloque { return nil }

// BestFit mantiene la lista de bloques libres ordenada por inicio.
type BestFit struct {
	Log       *slog.Logger
	capacidad uint32
	libres    *listas.Lista[*Bloque]
}

func NewBestFit(capacidad uint32, logger *slog.Logger) *BestFit {
	libres := listas.Nueva[*Bloque]()
	libres.Add(&Bloque{Inicio: 0, Tamanio: capacidad})
	return &BestFit{
		Log:       logger,
		capacidad: capacidad,
		libres:    libres,
	}
}

// Asignar recorre los bloques libres y elige el que deja el menor sobrante;
// ante un empate gana el de menor inicio por el orden de la lista. El bloque
// concedido se recorta del extremo bajo del hueco elegido.
func (m *BestFit) Asignar(tamanio uint32) (*Bloque, bool) {
	var elegido *Bloque
	var sobrante uint32

	for i := 0; i < m.libres.Size(); i++ {
		bloque, _ := m.libres.Get(i)
		if bloque.Tamanio < tamanio {
			continue
		}
		resto := bloque.Tamanio - tamanio
		if elegido == nil || resto < sobrante {
			elegido = bloque
			sobrante = resto
		}
	}

	if elegido == nil {
		m.Log.Debug("sin bloque libre para el pedido", log.IntAttr("tamanio", int(tamanio)))
		return nil, false
	}

	concedido := &Bloque{Inicio: elegido.Inicio, Tamanio: tamanio}
	elegido.Inicio += tamanio
	elegido.Tamanio -= tamanio

	m.Log.Debug("memoria asignada",
		log.IntAttr("inicio", int(concedido.Inicio)),
		log.IntAttr("tamanio", int(concedido.Tamanio)),
	)
	return concedido, true
}

// Liberar devuelve el bloque a la lista libre y fusiona los huecos contiguos:
// cuando el fin de un bloque coincide con el inicio del siguiente, el
// siguiente se extiende hacia atrás y el anterior se descarta.
func (m *BestFit) Liberar(bloque *Bloque) {
	if bloque == nil {
		return
	}

	m.Log.Debug("memoria liberada",
		log.IntAttr("inicio", int(bloque.Inicio)),
		log.IntAttr("tamanio", int(bloque.Tamanio)),
	)

	// Un bloque de tamaño cero comparte el inicio con el hueco que lo concedió:
	// con inicios iguales el nuevo va primero, así la fusión lo absorbe.
	m.libres.InsertSorted(bloque, func(nuevo, existente *Bloque) bool {
		return nuevo.Inicio <= existente.Inicio
	})

	i := 0
	for i+1 < m.libres.Size() {
		actual, _ := m.libres.Get(i)
		siguiente, _ := m.libres.Get(i + 1)
		if actual.Fin() == siguiente.Inicio {
			siguiente.Inicio -= actual.Tamanio
			siguiente.Tamanio += actual.Tamanio
			m.libres.Remove(i)
			continue
		}
		i++
	}
}

// Libres devuelve una fotografía de los bloques libres en orden de inicio.
func (m *BestFit) Libres() []Bloque {
	fotografia := make([]Bloque, 0, m.libres.Size())
	m.libres.ForEach(func(b *Bloque) {
		fotografia = append(fotografia, *b)
	})
	return fotografia
}
