// Package panelclient es el SDK Go del panel administrativo: sesión, llamadas
// autenticadas, caché de consultas, debounce de búsquedas y el flujo de
// modales de transición. Lo usan las herramientas internas que operan contra
// la API sin pasar por el navegador.
package panelclient

import "sync"

// Session datos de la sesión iniciada.
type Session struct {
	Token    string
	UserID   int64
	Name     string
	Email    string
	RoleID   int
	IsActive bool
}

// SessionStore guarda la sesión vigente. Seguro para uso concurrente.
type SessionStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewSessionStore construye un store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save reemplaza la sesión vigente.
func (s *SessionStore) Save(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &sess
}

// Load devuelve la sesión vigente; ok false si no hay sesión.
func (s *SessionStore) Load() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Clear borra la sesión (logout o token vencido).
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Token devuelve el token vigente o vacío.
func (s *SessionStore) Token() string {
	sess, ok := s.Load()
	if !ok {
		return ""
	}
	return sess.Token
}
