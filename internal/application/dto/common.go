package dto

// PageRequest paginación de listados. El panel envía page cero-based e
// idOrder "asc"|"desc" (orden por id).
type PageRequest struct {
	Limit   int    `query:"limit"`
	Page    int    `query:"page"`
	IDOrder string `query:"idOrder"`
}

// DefaultPage aplica valores por defecto si Limit/Page vienen vacíos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Page < 0 {
		p.Page = 0
	}
}

// IDAsc true si el orden pedido es ascendente por id.
func (p PageRequest) IDAsc() bool {
	return p.IDOrder == "asc"
}

// StatusRef referencia {id,name} de un estado o rol en las respuestas.
type StatusRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
