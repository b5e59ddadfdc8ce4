package entity

import "time"

// WebUser cliente registrado en el sitio público. Este servicio solo lo lee:
// el alta ocurre en el flujo público, fuera de este repositorio.
type WebUser struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Company     string
	CountryCode string
	CreatedAt   time.Time
}
