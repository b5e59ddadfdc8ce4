package dto

import "time"

// BannerResponse banner promocional.
type BannerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BannerOrderRequest cambio de posición.
type BannerOrderRequest struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

// BannerIDRequest cuerpo de remove/activate.
type BannerIDRequest struct {
	ID int64 `json:"id"`
}
