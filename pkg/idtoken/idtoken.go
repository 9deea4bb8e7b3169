// Package idtoken verifica ID tokens emitidos por Firebase Auth (RS256) contra los
// certificados públicos que publica Google.
package idtoken

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerPrefix = "https://securetoken.google.com/"

var (
	ErrInvalidToken    = errors.New("idtoken: token inválido")
	ErrTokenExpired    = errors.New("idtoken: token expirado")
	ErrSubjectMissing  = errors.New("idtoken: claim sub vacío")
	ErrKeysUnavailable = errors.New("idtoken: certificados públicos no disponibles")
)

// Claims claims de un ID token de Firebase. El UID del usuario viaja en sub.
type Claims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	AuthTime      int64  `json:"auth_time,omitempty"`
}

// UID devuelve el identificador del usuario en el proveedor.
func (c *Claims) UID() string { return c.Subject }

// Verifier valida la firma, audiencia, emisor y expiración de un ID token.
// Cada verificación descarga los certificados vigentes (un round trip por llamada).
type Verifier struct {
	projectID  string
	certsURL   string
	httpClient *http.Client
	now        func() time.Time
}

// Option configura el Verifier.
type Option func(*Verifier)

// WithHTTPClient reemplaza el cliente HTTP usado para descargar certificados.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) { v.httpClient = c }
}

// WithClock fija el reloj usado para validar exp/iat.
func WithClock(now func() time.Time) Option {
	return func(v *Verifier) { v.now = now }
}

// NewVerifier construye el verificador para un proyecto de Firebase.
func NewVerifier(projectID, certsURL string, opts ...Option) *Verifier {
	v := &Verifier{
		projectID:  projectID,
		certsURL:   certsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify valida el token y devuelve sus claims.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	if v.projectID == "" {
		return nil, fmt.Errorf("%w: FIREBASE_PROJECT_ID no configurado", ErrInvalidToken)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidToken
	}

	keys, err := v.fetchKeys(ctx)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)

	claims := &Claims{}
	_, err = parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		key, ok := keys[kid]
		if !ok {
			return nil, fmt.Errorf("kid desconocido %q", kid)
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrSubjectMissing
	}
	return claims, nil
}

// fetchKeys descarga el mapa kid -> certificado PEM y lo convierte en llaves RSA.
func (v *Verifier) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeysUnavailable, err)
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeysUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrKeysUnavailable, resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeysUnavailable, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pemCert := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemCert))
		if err != nil {
			continue
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: ningún certificado válido", ErrKeysUnavailable)
	}
	return keys, nil
}
