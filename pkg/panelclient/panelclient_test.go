package panelclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Debouncer
// ──────────────────────────────────────────────────────────────────────────────

// Tipear "a", "ab", "abc" dentro de la ventana dispara una sola consulta, con
// el último término.
func TestDebouncer_SoloUltimaLlamada(t *testing.T) {
	db := NewDebouncer(50 * time.Millisecond)

	var mu sync.Mutex
	var got []string
	search := func(term string) func() {
		return func() {
			mu.Lock()
			got = append(got, term)
			mu.Unlock()
		}
	}

	db.Do(search("a"))
	db.Do(search("ab"))
	db.Do(search("abc"))

	time.Sleep(150 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0])
}

func TestDebouncer_StopCancelaPendiente(t *testing.T) {
	db := NewDebouncer(30 * time.Millisecond)

	var calls atomic.Int32
	db.Do(func() { calls.Add(1) })
	db.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncer_LlamadasEspaciadasCorrenTodas(t *testing.T) {
	db := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	db.Do(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	db.Do(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(2), calls.Load())
}

// ──────────────────────────────────────────────────────────────────────────────
// QueryCache
// ──────────────────────────────────────────────────────────────────────────────

func TestQueryCache_ClaveDeterministica(t *testing.T) {
	k1 := Key(map[string]string{"page": "0", "name": "juan"})
	k2 := Key(map[string]string{"name": "juan", "page": "0"})
	assert.Equal(t, k1, k2)
}

func TestQueryCache_InvalidateScopeNoTocaOtros(t *testing.T) {
	c := NewQueryCache()
	c.Set("invoices", "page=0", "pagina-cotizaciones")
	c.Set("contacts", "page=0", "pagina-contactos")

	c.InvalidateScope("invoices")

	_, ok := c.Get("invoices", "page=0")
	assert.False(t, ok)
	v, ok := c.Get("contacts", "page=0")
	require.True(t, ok)
	assert.Equal(t, "pagina-contactos", v)
}

// Tras una transición se invalida todo salvo la vista de usuarios del panel.
func TestQueryCache_InvalidateAllExceptConservaAdminUsers(t *testing.T) {
	c := NewQueryCache()
	c.Set("invoices", "page=0", 1)
	c.Set("contacts", "page=0", 2)
	c.Set("admin-users", "page=0", 3)

	c.InvalidateAllExcept("admin-users")

	_, ok := c.Get("invoices", "page=0")
	assert.False(t, ok)
	_, ok = c.Get("contacts", "page=0")
	assert.False(t, ok)
	v, ok := c.Get("admin-users", "page=0")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestWirePage_UnoBasedACeroBased(t *testing.T) {
	assert.Equal(t, 0, WirePage(1))
	assert.Equal(t, 2, WirePage(3))
	assert.Equal(t, 0, WirePage(0), "valores fuera de rango quedan en la primera página")
	assert.Equal(t, 1, VisiblePage(0))
	assert.Equal(t, 3, VisiblePage(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// ModalState
// ──────────────────────────────────────────────────────────────────────────────

func TestModal_UnaVarianteALaVez(t *testing.T) {
	var m ModalState
	m.Open(ModalSeguimiento)
	m.Open(ModalVendido)
	assert.Equal(t, ModalVendido, m.Kind)
}

// isLoading y el modal se resetean siempre, también cuando la transición falla.
func TestModal_RunTransitionResetSiempre(t *testing.T) {
	var m ModalState
	m.Open(ModalPerdido)

	fallo := errors.New("falló la transición")
	err := m.RunTransition(context.Background(), func(ctx context.Context) error {
		assert.True(t, m.IsLoading)
		return fallo
	})
	assert.ErrorIs(t, err, fallo)
	assert.False(t, m.IsLoading)
	assert.Equal(t, ModalNone, m.Kind)

	m.Open(ModalVendido)
	err = m.RunTransition(context.Background(), func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
	assert.False(t, m.IsLoading)
	assert.Equal(t, ModalNone, m.Kind)
}

// Mientras hay una transición en vuelo, un segundo Confirmar no ejecuta nada.
func TestModal_RunTransitionIgnoraReentrada(t *testing.T) {
	var m ModalState
	m.Open(ModalSeguimiento)

	var primera, segunda int
	err := m.RunTransition(context.Background(), func(ctx context.Context) error {
		primera++
		return m.RunTransition(ctx, func(ctx context.Context) error {
			segunda++
			return nil
		})
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, primera)
	assert.Zero(t, segunda, "la reentrada con isLoading activo no corre")
	assert.False(t, m.IsLoading)
}

// ──────────────────────────────────────────────────────────────────────────────
// Client
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_LoginActivoGuardaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok123","id":7,"name":"Ana","email":"ana@fromm.cl","roleId":2,"isActive":true}`))
	}))
	defer srv.Close()

	store := NewSessionStore()
	cl := NewClient(srv.URL, store)

	out, err := cl.Login(context.Background(), "ana@fromm.cl", "secreta")
	require.NoError(t, err)
	assert.True(t, out.IsActive)

	sess, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "tok123", sess.Token)
	assert.Equal(t, 2, sess.RoleID)
}

func TestClient_LoginInactivoNoGuardaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Ana","email":"ana@fromm.cl","roleId":2,"isActive":false}`))
	}))
	defer srv.Close()

	store := NewSessionStore()
	cl := NewClient(srv.URL, store)

	out, err := cl.Login(context.Background(), "ana@fromm.cl", "secreta")
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestClient_401LimpiaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := NewSessionStore()
	store.Save(Session{Token: "viejo"})
	cl := NewClient(srv.URL, store)

	err := cl.Get(context.Background(), "/admin/invoices", nil)
	assert.ErrorIs(t, err, ErrSesionExpirada)

	_, ok := store.Load()
	assert.False(t, ok, "el 401 borra la sesión local")
}

func TestClient_413DevuelveErrorDeTamano(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	store := NewSessionStore()
	store.Save(Session{Token: "tok"})
	cl := NewClient(srv.URL, store)

	err := cl.Post(context.Background(), "/files/upload", map[string]string{}, nil)
	assert.ErrorIs(t, err, ErrArchivoMuyGrande)
}

// Cuando el servidor manda su propio mensaje en el 413 (por ejemplo con un
// límite distinto al del cliente), ese texto llega a pantalla tal cual.
func TestClient_413ConservaMensajeDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"code":"FILE_TOO_LARGE","message":"el archivo supera el limite configurado de 2 MB"}`))
	}))
	defer srv.Close()

	store := NewSessionStore()
	store.Save(Session{Token: "tok"})
	cl := NewClient(srv.URL, store)

	err := cl.Post(context.Background(), "/files/upload", map[string]string{}, nil)
	assert.ErrorIs(t, err, ErrArchivoMuyGrande)
	assert.Equal(t, "el archivo supera el limite configurado de 2 MB", err.Error())
}

func TestClient_EnviaBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := NewSessionStore()
	store.Save(Session{Token: "tok123"})
	cl := NewClient(srv.URL, store)

	require.NoError(t, cl.Get(context.Background(), "/admin/invoices", nil))
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClient_ErrorConCuerpoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"CONFLICT","message":"Ya existe un banner activo en esta posición."}`))
	}))
	defer srv.Close()

	store := NewSessionStore()
	store.Save(Session{Token: "tok"})
	cl := NewClient(srv.URL, store)

	err := cl.Put(context.Background(), "/banners/order", map[string]int{"id": 1, "order": 2}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Ya existe un banner activo en esta posición.", apiErr.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// QuoteForm
// ──────────────────────────────────────────────────────────────────────────────

func TestQuoteForm_SeleccionCompletaYBloquea(t *testing.T) {
	var f QuoteForm
	f.Message = "necesito repuestos"

	f.Select(WebUser{ID: 9, Name: "Ana Soto", Email: "ana@acme.cl", Phone: "+56911111111", Company: "Acme"})

	require.NotNil(t, f.UserID)
	assert.Equal(t, int64(9), *f.UserID)
	assert.Equal(t, "Ana Soto", f.Name)
	assert.Equal(t, "ana@acme.cl", f.Email)
	assert.True(t, f.ReadOnly)
	assert.Equal(t, "necesito repuestos", f.Message, "el mensaje del admin no se pisa")
}

func TestQuoteForm_ClearRestauraVacioYEditable(t *testing.T) {
	var f QuoteForm
	f.Select(WebUser{ID: 9, Name: "Ana Soto", Email: "ana@acme.cl"})
	f.Message = "hola"

	f.Clear()

	assert.Nil(t, f.UserID)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.Email)
	assert.Empty(t, f.Phone)
	assert.Empty(t, f.Company)
	assert.False(t, f.ReadOnly)
	assert.Equal(t, "hola", f.Message)
}
