package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen a
// códigos HTTP; el mensaje en español es el que el panel muestra tal cual.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUsuarioInactivo    = errors.New("usuario inactivo")

	// Transiciones de estado.
	ErrTransicionInvalida = errors.New("transición de estado no permitida")

	// Validaciones de los flujos de cotización (§ historial de la cotización).
	ErrArchivoRequerido      = errors.New("debes adjuntar la cotización para continuar")
	ErrComentarioRequerido   = errors.New("el comentario del seguimiento es requerido")
	ErrMotivoRequerido       = errors.New("el motivo de la perdida es requerido")
	ErrMontoRequerido        = errors.New("el monto de la venta es requerido")
	ErrDepartamentoRequerido = errors.New("debes indicar el área a la que se deriva")

	// Banners.
	ErrPosicionOcupada = errors.New("Ya existe un banner activo en esta posición.")
	ErrFormatoImagen   = errors.New("el banner debe ser una imagen JPEG")

	// Archivos.
	ErrArchivoMuyGrande = errors.New("el archivo supera el tamaño máximo de 4 MB")
)
