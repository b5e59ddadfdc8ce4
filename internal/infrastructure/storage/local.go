// Package storage guarda los archivos subidos (cotizaciones en PDF, banners)
// en disco local y los expone bajo una URL pública.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fromm-latam/panel-admin-api/internal/application/ports"
)

var _ ports.FileStore = (*LocalStore)(nil)

// LocalStore almacenamiento en disco. El nombre final lleva un uuid para que
// dos subidas con el mismo nombre no se pisen.
type LocalStore struct {
	baseDir   string
	publicURL string
}

// NewLocalStore construye el almacenamiento con el directorio base y la URL
// pública bajo la cual se sirven los archivos.
func NewLocalStore(baseDir, publicURL string) *LocalStore {
	return &LocalStore{baseDir: baseDir, publicURL: strings.TrimRight(publicURL, "/")}
}

// Save escribe el archivo y devuelve su URL pública.
func (s *LocalStore) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	// El nombre del cliente solo aporta la extensión; el resto se descarta.
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filepath.Base(filename)))

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return s.publicURL + "/" + folder + "/" + name, nil
}
