package panelclient

import "context"

// ModalKind variante del modal de transición abierto.
type ModalKind int

// Variantes de modal del detalle de cotización. Una sola abierta a la vez.
const (
	ModalNone ModalKind = iota
	ModalUpload
	ModalSeguimiento
	ModalVendido
	ModalDerivado
	ModalPerdido
)

// ModalState estado del modal vigente. La variante lleva sus propios campos;
// cerrar el modal descarta todo.
type ModalState struct {
	Kind      ModalKind
	IsLoading bool
}

// Open abre una variante; reemplaza a la anterior si había una abierta.
func (m *ModalState) Open(kind ModalKind) {
	m.Kind = kind
	m.IsLoading = false
}

// Close cierra el modal y descarta su estado.
func (m *ModalState) Close() {
	m.Kind = ModalNone
	m.IsLoading = false
}

// RunTransition ejecuta una transición desde el modal: marca isLoading,
// ejecuta run y SIEMPRE apaga isLoading y cierra el modal, haya ido bien o
// mal. El error se devuelve para que el llamador muestre el mensaje.
// Con una transición ya en vuelo no hace nada: el doble click en Confirmar
// no dispara una segunda petición.
func (m *ModalState) RunTransition(ctx context.Context, run func(ctx context.Context) error) error {
	if m.IsLoading {
		return nil
	}
	m.IsLoading = true
	defer func() {
		m.IsLoading = false
		m.Close()
	}()
	return run(ctx)
}
