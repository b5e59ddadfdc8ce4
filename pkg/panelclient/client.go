package panelclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Errores que las herramientas traducen a mensajes de pantalla.
var (
	// ErrSesionExpirada señala un 401: la sesión local se limpia y el
	// llamador debe volver al login.
	ErrSesionExpirada = errors.New("sesión expirada, inicie sesión nuevamente")
	// ErrArchivoMuyGrande señala un 413 del servidor.
	ErrArchivoMuyGrande = errors.New("el archivo supera el tamaño máximo de 4 MB")
)

// SizeError 413 del servidor conservando el mensaje que éste envió, para
// mostrarlo tal cual en pantalla. Desenvuelve a ErrArchivoMuyGrande.
type SizeError struct {
	Message string
}

func (e *SizeError) Error() string {
	if e.Message == "" {
		return ErrArchivoMuyGrande.Error()
	}
	return e.Message
}

func (e *SizeError) Unwrap() error { return ErrArchivoMuyGrande }

// APIError error devuelto por la API con su código HTTP y mensaje.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP autenticado contra la API del panel.
type Client struct {
	baseURL string
	http    *http.Client
	store   *SessionStore
}

// NewClient construye el cliente. El store puede venir con sesión cargada.
func NewClient(baseURL string, store *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult respuesta de login del servidor.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	RoleID      int    `json:"roleId"`
	IsActive    bool   `json:"isActive"`
}

// Login autentica y, si la cuenta está activa, guarda la sesión en el store.
// Con la cuenta inactiva devuelve el resultado sin guardar nada: el llamador
// muestra el aviso.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.IsActive && out.AccessToken != "" {
		c.store.Save(Session{
			Token:    out.AccessToken,
			UserID:   out.ID,
			Name:     out.Name,
			Email:    out.Email,
			RoleID:   out.RoleID,
			IsActive: true,
		})
	}
	return &out, nil
}

// Get GET autenticado; out se decodifica del cuerpo JSON.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post POST autenticado con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put PUT autenticado con cuerpo JSON (transiciones de estado del panel).
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized && path != "/auth/login":
		// Token vencido: se limpia la sesión y el llamador vuelve al login.
		c.store.Clear()
		return ErrSesionExpirada
	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		sizeErr := &SizeError{}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			sizeErr.Message = payload.Message
		}
		return sizeErr
	case resp.StatusCode >= 400:
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
