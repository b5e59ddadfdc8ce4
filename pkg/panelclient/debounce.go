package panelclient

import (
	"sync"
	"time"
)

// DefaultDebounce espera estándar de los campos de búsqueda del panel.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer retrasa la ejecución hasta que pasen d sin nuevas llamadas: al
// tipear "a", "ab", "abc" solo se consulta "abc".
type Debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer construye un debouncer; con d <= 0 usa DefaultDebounce.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d}
}

// Do programa fn y cancela la ejecución pendiente anterior, si la hay.
func (db *Debouncer) Do(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, fn)
}

// Stop cancela la ejecución pendiente, si la hay.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
