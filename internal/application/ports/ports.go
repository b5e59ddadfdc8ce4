// Package ports define los puertos de salida de la capa de aplicación hacia
// infraestructura (archivos, correo). Las implementaciones viven en
// internal/infrastructure.
package ports

import (
	"context"
	"io"
)

// FileStore guarda archivos subidos y devuelve la URL pública resultante.
type FileStore interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}

// Mailer envío de notificaciones por correo. Las implementaciones no deben
// bloquear el flujo principal ante un fallo de SMTP.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
