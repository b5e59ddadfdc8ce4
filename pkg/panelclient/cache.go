package panelclient

import (
	"sort"
	"strings"
	"sync"
)

// QueryCache caché de resultados de listado por (scope, parámetros). El scope
// agrupa las consultas de una misma vista (cotizaciones, contactos, clientes);
// al mutar datos de un scope se invalidan solo sus entradas, el resto de la
// caché sigue sirviendo.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]any
}

// NewQueryCache construye una caché vacía.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: map[string]map[string]any{}}
}

// Key arma la clave determinística de una consulta a partir de sus parámetros.
func Key(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Get devuelve el valor cacheado para scope+key; ok false si no existe.
func (c *QueryCache) Get(scope, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	byKey, ok := c.entries[scope]
	if !ok {
		return nil, false
	}
	v, ok := byKey[key]
	return v, ok
}

// Set guarda un valor para scope+key.
func (c *QueryCache) Set(scope, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byKey, ok := c.entries[scope]
	if !ok {
		byKey = map[string]any{}
		c.entries[scope] = byKey
	}
	byKey[key] = value
}

// InvalidateScope descarta todas las entradas de un scope.
func (c *QueryCache) InvalidateScope(scope string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, scope)
}

// InvalidateAllExcept descarta todos los scopes salvo los indicados. Tras una
// transición se vacía casi todo pero la vista de usuarios del panel, que no
// depende de cotizaciones ni contactos, conserva su caché.
func (c *QueryCache) InvalidateAllExcept(keep ...string) {
	keepSet := make(map[string]bool, len(keep))
	for _, s := range keep {
		keepSet[s] = true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for scope := range c.entries {
		if !keepSet[scope] {
			delete(c.entries, scope)
		}
	}
}
