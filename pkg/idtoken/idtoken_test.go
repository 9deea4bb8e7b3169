package idtoken_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/pkg/idtoken"
)

const (
	testProject = "pilotos-fah-test"
	testKid     = "kid-1"
	testUID     = "uid-123"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// certServer publica un certificado autofirmado bajo testKid, igual que el endpoint de Google.
func certServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{testKid: string(certPEM)})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, mutate func(c *idtoken.Claims)) string {
	t.Helper()
	now := time.Now()
	claims := &idtoken.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://securetoken.google.com/" + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			Subject:   testUID,
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "jugador@pilotosfah.com",
	}
	if mutate != nil {
		mutate(claims)
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = testKid
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_TokenValido(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	claims, err := v.Verify(context.Background(), signToken(t, key, nil))
	require.NoError(t, err)
	assert.Equal(t, testUID, claims.UID())
	assert.Equal(t, "jugador@pilotosfah.com", claims.Email)
}

func TestVerify_TokenExpirado(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	tok := signToken(t, key, func(c *idtoken.Claims) {
		c.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	})
	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, idtoken.ErrTokenExpired)
}

func TestVerify_AudienciaDeOtroProyecto(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	tok := signToken(t, key, func(c *idtoken.Claims) {
		c.Audience = jwt.ClaimStrings{"otro-proyecto"}
	})
	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, idtoken.ErrInvalidToken)
}

func TestVerify_FirmaConOtraLlave(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	_, err := v.Verify(context.Background(), signToken(t, newKey(t), nil))
	assert.ErrorIs(t, err, idtoken.ErrInvalidToken)
}

func TestVerify_HS256Rechazado(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: testUID})
	tok.Header["kid"] = testKid
	s, err := tok.SignedString([]byte("secreto"))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), s)
	assert.ErrorIs(t, err, idtoken.ErrInvalidToken)
}

func TestVerify_SinSubject(t *testing.T) {
	key := newKey(t)
	srv := certServer(t, key)
	v := idtoken.NewVerifier(testProject, srv.URL)

	tok := signToken(t, key, func(c *idtoken.Claims) { c.Subject = "" })
	_, err := v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, idtoken.ErrSubjectMissing)
}

func TestVerify_CertificadosNoDisponibles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	v := idtoken.NewVerifier(testProject, srv.URL)

	_, err := v.Verify(context.Background(), signToken(t, newKey(t), nil))
	assert.ErrorIs(t, err, idtoken.ErrKeysUnavailable)
}

func TestVerify_TokenVacio(t *testing.T) {
	v := idtoken.NewVerifier(testProject, "http://127.0.0.1:0")
	_, err := v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, idtoken.ErrInvalidToken)
}
