package uniqueid

import "sync"

// UniqueID reparte los PID internos que identifican a los procesos en los
// logs de diagnóstico y en el monitor.
type UniqueID struct {
	mu     sync.Mutex
	nextID int
}

func Init() *UniqueID {
	return &UniqueID{
		mu:     sync.Mutex{},
		nextID: 1, // El primer PID es 1
	}
}

func (u *UniqueID) GetUniqueID() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.nextID
	u.nextID++
	return id
}
