package panelclient

// WirePage convierte la página visible (1-based, lo que muestra el paginador)
// a la página del protocolo (0-based, lo que espera la API).
func WirePage(visible int) int {
	if visible <= 1 {
		return 0
	}
	return visible - 1
}

// VisiblePage inversa de WirePage.
func VisiblePage(wire int) int {
	if wire < 0 {
		return 1
	}
	return wire + 1
}
