package panelclient

// WebUser cliente del sitio público tal como lo devuelve la búsqueda por email.
type WebUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// QuoteForm estado del formulario de alta manual de cotización. Al elegir un
// cliente del combobox los campos de contacto se completan y quedan de solo
// lectura; al limpiar la selección vuelven vacíos y editables.
type QuoteForm struct {
	UserID   *int64
	Name     string
	Email    string
	Phone    string
	Company  string
	Message  string
	ReadOnly bool
}

// Select vincula un cliente existente y bloquea los campos de contacto.
func (f *QuoteForm) Select(u WebUser) {
	id := u.ID
	f.UserID = &id
	f.Name = u.Name
	f.Email = u.Email
	f.Phone = u.Phone
	f.Company = u.Company
	f.ReadOnly = true
}

// Clear deshace la selección: los campos de contacto quedan vacíos y
// editables. El mensaje escrito por el admin se conserva.
func (f *QuoteForm) Clear() {
	f.UserID = nil
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Company = ""
	f.ReadOnly = false
}
