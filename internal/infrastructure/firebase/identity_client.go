package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
)

var _ ports.IdentityProvider = (*IdentityClient)(nil)

// IdentityClient adaptador de IdentityProvider sobre la API REST de Identity Toolkit.
type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewIdentityClient construye el cliente. baseURL suele ser https://identitytoolkit.googleapis.com/v1.
func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ── Estructuras de la API ─────────────────────────────────────────────────────

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type oobRequest struct {
	RequestType string `json:"requestType"`
	IDToken     string `json:"idToken,omitempty"`
	Email       string `json:"email,omitempty"`
}

type deleteRequest struct {
	IDToken string `json:"idToken"`
}

type apiError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// SignInWithPassword autentica con email y contraseña.
func (c *IdentityClient) SignInWithPassword(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	var out authResponse
	if err := c.call(ctx, "accounts:signInWithPassword", credentialsRequest{email, password, true}, &out); err != nil {
		return nil, err
	}
	return out.toResult(), nil
}

// SignUp crea la cuenta en el proveedor.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	var out authResponse
	if err := c.call(ctx, "accounts:signUp", credentialsRequest{email, password, true}, &out); err != nil {
		return nil, err
	}
	return out.toResult(), nil
}

// SendEmailVerification envía el correo de verificación al dueño del token.
func (c *IdentityClient) SendEmailVerification(ctx context.Context, idToken string) error {
	return c.call(ctx, "accounts:sendOobCode", oobRequest{RequestType: "VERIFY_EMAIL", IDToken: idToken}, nil)
}

// SendPasswordReset envía el enlace de restablecimiento.
func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	return c.call(ctx, "accounts:sendOobCode", oobRequest{RequestType: "PASSWORD_RESET", Email: email}, nil)
}

// DeleteAccount elimina la cuenta dueña del token.
func (c *IdentityClient) DeleteAccount(ctx context.Context, idToken string) error {
	return c.call(ctx, "accounts:delete", deleteRequest{IDToken: idToken}, nil)
}

func (r authResponse) toResult() *ports.SignInResult {
	secs, _ := strconv.Atoi(r.ExpiresIn)
	return &ports.SignInResult{
		UID:          r.LocalID,
		Email:        r.Email,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    time.Duration(secs) * time.Second,
	}
}

func (c *IdentityClient) call(ctx context.Context, method string, payload, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("identity: FIREBASE_API_KEY no configurado")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("identity: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, method, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("identity: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("identity: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e apiError
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil && e.Error != nil {
			return mapProviderError(e.Error.Message)
		}
		return fmt.Errorf("identity: HTTP %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("identity: deserializar respuesta: %w", err)
	}
	return nil
}

// mapProviderError traduce los códigos del proveedor a errores de dominio.
// Los mensajes pueden venir con sufijo: "WEAK_PASSWORD : Password should be at least 6 characters".
func mapProviderError(message string) error {
	code := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED", "INVALID_ID_TOKEN":
		return fmt.Errorf("identity: %s: %w", code, domain.ErrUnauthorized)
	case "EMAIL_EXISTS":
		return domain.ErrEmailAlreadyExists
	case "WEAK_PASSWORD":
		return domain.NewValidationError("password", "la contraseña debe tener al menos 6 caracteres")
	case "INVALID_EMAIL", "MISSING_EMAIL", "MISSING_PASSWORD":
		return domain.NewValidationError("email", "email o contraseña inválidos")
	case "USER_NOT_FOUND":
		return domain.ErrUserNotFound
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return fmt.Errorf("identity: %s: %w", code, domain.ErrConflict)
	default:
		return fmt.Errorf("identity: %s", code)
	}
}
