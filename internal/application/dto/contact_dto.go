package dto

import "time"

// ContactRow fila del listado de contactos/servicios.
type ContactRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListContactsResponse página de contactos; TotalCount en páginas.
type ListContactsResponse struct {
	Contactos  []ContactRow `json:"contactos"`
	TotalCount int64        `json:"totalCount"`
}

// ContactUserRef referencia al cliente web dueño del contacto.
type ContactUserRef struct {
	ID          int64  `json:"id"`
	CountryCode string `json:"countryCode"`
}

// ContactResponse detalle de un contacto.
type ContactResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Company    string          `json:"company"`
	Message    string          `json:"message"`
	Equipment  string          `json:"equipment,omitempty"`
	Status     StatusRef       `json:"status"`
	Department string          `json:"department,omitempty"`
	User       *ContactUserRef `json:"user,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ContactIDRequest cuerpo de servicio/finalizado: solo el id.
type ContactIDRequest struct {
	ID int64 `json:"id"`
}

// ContactDerivadoRequest derivación a un área interna.
type ContactDerivadoRequest struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
}
