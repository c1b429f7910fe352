package listas

import "sync"

// Lista es el contenedor ordenado que usan las colas del gestor (admisión,
// ready, registro y la lista de bloques libres). El motor de la simulación es
// su único dueño; los locks solo cubren lecturas eventuales de otros lados.
type Lista[T any] struct {
	mu    sync.RWMutex
	items []T
}

func Nueva[T any]() *Lista[T] {
	return &Lista[T]{items: make([]T, 0)}
}

// Add agrega el elemento al final de la lista.
func (l *Lista[T]) Add(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// Dequeue saca y devuelve el primer elemento.
func (l *Lista[T]) Dequeue() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var item T
	if len(l.items) == 0 {
		return item, false
	}
	item = l.items[0]
	l.items = l.items[1:]
	return item, true
}

// Get devuelve el elemento en la posición indicada sin removerlo.
func (l *Lista[T]) Get(index int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var item T
	if index < 0 || index >= len(l.items) {
		return item, false
	}
	return l.items[index], true
}

// Remove saca el elemento en la posición indicada y lo devuelve.
func (l *Lista[T]) Remove(index int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var item T
	if index < 0 || index >= len(l.items) {
		return item, false
	}
	item = l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return item, true
}

// InsertSorted inserta el elemento antes del primer existente para el que
// antes(nuevo, existente) da true, manteniendo el orden de la lista.
func (l *Lista[T]) InsertSorted(item T, antes func(nuevo, existente T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, existente := range l.items {
		if antes(item, existente) {
			l.items = append(l.items[:i], append([]T{item}, l.items[i:]...)...)
			return
		}
	}
	l.items = append(l.items, item)
}

// Find devuelve el primer elemento que cumple el predicado.
func (l *Lista[T]) Find(pred func(T) bool) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var item T
	for _, candidato := range l.items {
		if pred(candidato) {
			return candidato, true
		}
	}
	return item, false
}

func (l *Lista[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *Lista[T]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items) == 0
}

// ForEach recorre la lista en orden aplicando la función a cada elemento.
func (l *Lista[T]) ForEach(f func(T)) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, item := range l.items {
		f(item)
	}
}

// GetAll devuelve una copia del contenido, en orden.
func (l *Lista[T]) GetAll() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	copia := make([]T, len(l.items))
	copy(copia, l.items)
	return copia
}
