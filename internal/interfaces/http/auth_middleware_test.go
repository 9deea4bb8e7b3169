package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/auth"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	apphttp "github.com/pilotosfah/pilotos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCookie = "token"
	validToken = "token-valido"
	testUID    = "uid-0001"
	testEmail  = "socio@pilotosfah.com"
)

// fakeVerifier acepta sólo validToken; cuenta las llamadas.
type fakeVerifier struct {
	email string
	calls int32
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, token string) (*ports.VerifiedIdentity, error) {
	atomic.AddInt32(&f.calls, 1)
	if token != validToken {
		return nil, errors.New("firma inválida")
	}
	return &ports.VerifiedIdentity{UID: testUID, Email: f.email, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// fakeResolver devuelve role o err para cualquier email.
type fakeResolver struct {
	role string
	err  error
	seen string
}

func (f *fakeResolver) ResolveRole(_ context.Context, email string) (string, error) {
	f.seen = email
	return f.role, f.err
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - RequireAuthenticated leyendo la cookie token
//   - RequireRole si se indican roles
//   - Un handler espía que cuenta cuántas veces se ejecutó
func buildTestApp(v *fakeVerifier, r *fakeResolver, hits *int32, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil)})
	handlers := []fiber.Handler{apphttp.RequireAuthenticated(v, testCookie, nil)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(r, allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		atomic.AddInt32(hits, 1)
		a, ok := auth.FromContext(c.UserContext())
		return c.JSON(fiber.Map{
			"ok":      ok,
			"uid":     a.UID(),
			"email":   a.Email(),
			"role":    apphttp.GetRole(c),
			"from_fn": apphttp.GetUserID(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// doRequest lanza GET /protected con la cookie indicada ("" = sin cookie).
func doRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAuthenticated (etapa A)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin cookie → 401 y el verificador ni siquiera se consulta.
func TestRequireAuthenticated_SinCookie401(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	var hits int32
	app := buildTestApp(v, nil, &hits)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, apphttp.MsgMissingCredential, body["mensaje"])
	assert.EqualValues(t, 0, atomic.LoadInt32(&v.calls))
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits), "el handler no debe ejecutarse")
}

// Caso 2: token inválido → 401 con mensaje genérico.
func TestRequireAuthenticated_TokenInvalido401(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	var hits int32
	app := buildTestApp(v, nil, &hits)

	resp := doRequest(t, app, "token-manipulado")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, apphttp.MsgInvalidCredential, body["mensaje"])
	assert.NotContains(t, body["mensaje"], "firma", "no se filtra la causa")
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

// Caso 3: token válido → el handler ve la identidad en Locals y en el contexto.
func TestRequireAuthenticated_TokenValidoAdjuntaIdentidad(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	var hits int32
	app := buildTestApp(v, nil, &hits)

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUID, body["uid"])
	assert.Equal(t, testUID, body["from_fn"])
	assert.Equal(t, testEmail, body["email"])
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.EqualValues(t, 1, atomic.LoadInt32(&v.calls), "una verificación por petición")
}

// Caso 4: cada petición verifica de nuevo (sin caché).
func TestRequireAuthenticated_VerificaEnCadaPeticion(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	var hits int32
	app := buildTestApp(v, nil, &hits)

	for i := 0; i < 3; i++ {
		resp := doRequest(t, app, validToken)
		resp.Body.Close()
	}
	assert.EqualValues(t, 3, atomic.LoadInt32(&v.calls))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole (etapa B)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: el usuario tiene el rol requerido → 200.
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	r := &fakeResolver{role: "admin"}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, testEmail, r.seen, "el rol se resuelve por email")
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

// Caso 6: cualquiera de varios roles permitidos pasa.
func TestRequireRole_AdminCalendarioEnRutaDeEventos(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	r := &fakeResolver{role: "admin-calendario"}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin", "admin-calendario")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 7: rol no permitido → 403.
func TestRequireRole_ClienteEnRutaAdmin403(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	r := &fakeResolver{role: "cliente"}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, apphttp.MsgForbidden, body["mensaje"])
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

// Caso 8: email sin fila en usuarios → 404.
func TestRequireRole_UsuarioSinFila404(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	r := &fakeResolver{err: domain.ErrUserNotFound}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, apphttp.MsgUserNotFound, body["mensaje"])
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

// Caso 9: token sin email → 401 sin consultar roles.
func TestRequireRole_TokenSinEmail401(t *testing.T) {
	v := &fakeVerifier{email: ""}
	r := &fakeResolver{role: "admin"}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, r.seen)
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

// Caso 10: fallo de base de datos al resolver → 500 genérico.
func TestRequireRole_ErrorDeBaseDeDatos500(t *testing.T) {
	v := &fakeVerifier{email: testEmail}
	r := &fakeResolver{err: errors.New("pq: connection refused 10.0.0.5")}
	var hits int32
	app := buildTestApp(v, r, &hits, "admin")

	resp := doRequest(t, app, validToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotContains(t, body["mensaje"], "10.0.0.5")
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

// Caso 11: sin etapa A previa RequireRole responde 401.
func TestRequireRole_SinAutenticacionPrevia401(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil)})
	app.Get("/solo-rol", apphttp.RequireRole(&fakeResolver{role: "admin"}, "admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/solo-rol", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
