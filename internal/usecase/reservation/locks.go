package reservation

import "sync"

// SlotLocks serialitza el check-and-insert per clau (treballador, dia).
// El candau de fila no evita insercions fantasma, així que la serialització
// real del conflicte passa per aquí; la transacció només garanteix que no
// quedi estat parcial.
type SlotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSlotLocks() *SlotLocks {
	return &SlotLocks{locks: make(map[string]*sync.Mutex)}
}

// El mapa no es buida mai: està acotat pels parells treballador×dia vistos
// pel procés, que a escala de saló és negligible.
func (l *SlotLocks) forKey(workerDNI, date string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := workerDNI + "|" + date
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

func (l *SlotLocks) Lock(workerDNI, date string) func() {
	m := l.forKey(workerDNI, date)
	m.Lock()
	return m.Unlock
}
