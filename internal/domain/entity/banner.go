package entity

import "time"

// Banner imagen promocional en una posición numerada. Nunca se borra: la baja
// es isActive=false. A lo sumo un banner activo por posición.
type Banner struct {
	ID        int64
	Name      string
	URL       string
	Order     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
