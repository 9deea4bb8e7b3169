package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
	apphttp "github.com/pilotosfah/pilotos-api/internal/interfaces/http"
	"github.com/pilotosfah/pilotos-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memCategorySite struct {
	site    entity.CategoriesSite
	updated []int64
}

func (m *memCategorySite) List(context.Context) ([]*entity.Category, error) { return nil, nil }

func (m *memCategorySite) Update(_ context.Context, c *entity.Category) error {
	m.updated = append(m.updated, c.ID)
	c.Slug = "sub-12"
	return nil
}

func (m *memCategorySite) GetSite(context.Context) (*entity.CategoriesSite, error) {
	cp := m.site
	return &cp, nil
}

func (m *memCategorySite) UpdateSite(_ context.Context, s *entity.CategoriesSite) error {
	m.site = *s
	return nil
}

type socioUsers struct {
	repository.UserRepository
}

func (socioUsers) GetContact(context.Context, string) (*entity.Contact, error) {
	return &entity.Contact{Nombre: "Socio Pilotos", Email: testEmail}, nil
}

type spyReceiptNotifier struct {
	sent []notify.DonationReceipt
}

func (s *spyReceiptNotifier) NotifyDonationReceipt(_ context.Context, d notify.DonationReceipt) error {
	s.sent = append(s.sent, d)
	return nil
}

func buildClubApp(role string, cats *memCategorySite, receipts *spyReceiptNotifier) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil)})
	apphttp.Router(app, apphttp.RouterDeps{
		Prefix:       "/auth",
		Verifier:     &fakeVerifier{email: testEmail},
		RoleResolver: &fakeResolver{role: role},
		Cookie:       config.CookieConfig{Name: testCookie, MaxAge: 3600, SameSite: "Lax"},
		CategoryUC:   usecase.NewCategoryUseCase(cats),
		ReceiptUC:    usecase.NewDonationReceiptUseCase(socioUsers{}, receipts, nil),
	})
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookie, Value: validToken})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func receiptForm(t *testing.T, monto string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("monto", monto))
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="comprobante"; filename="deposito.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 deposito"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías: orden de rutas y permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoriasCarrusel_NoCaeEnRutaPorID(t *testing.T) {
	cats := &memCategorySite{site: entity.CategoriesSite{HeaderTitle: "Categorías", CarruselSubtitle: "Desde los 5 años"}}
	app := buildClubApp(entity.RoleAdmin, cats, &spyReceiptNotifier{})

	resp := sendJSON(t, app, http.MethodPut, "/auth/categorias/carrusel", `{"carrusel_title":"Equipos 2026"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CategoriesSiteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Equipos 2026", out.CarruselTitle)
	assert.Equal(t, "Desde los 5 años", out.CarruselSubtitle)
	assert.Empty(t, cats.updated)
}

func TestCategoriaPorID_ClienteNoPuedeEditar403(t *testing.T) {
	cats := &memCategorySite{}
	app := buildClubApp(entity.RoleCliente, cats, &spyReceiptNotifier{})

	resp := sendJSON(t, app, http.MethodPut, "/auth/categorias/3", `{"titletext":"Sub 12"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, cats.updated)
}

func TestCategoriasSite_PublicoSinSesion(t *testing.T) {
	app := buildClubApp(entity.RoleCliente, &memCategorySite{site: entity.CategoriesSite{HeaderTitle: "Categorías"}}, &spyReceiptNotifier{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/categorias/site", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CategoriesHeaderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Categorías", out.HeaderTitle)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /donaciones/comprobante
// ──────────────────────────────────────────────────────────────────────────────

func TestComprobante_EnviaAdjuntoConNombreDelSocio(t *testing.T) {
	spy := &spyReceiptNotifier{}
	app := buildClubApp(entity.RoleCliente, &memCategorySite{}, spy)

	body, ct := receiptForm(t, "750")
	req := httptest.NewRequest(http.MethodPost, "/auth/donaciones/comprobante", body)
	req.Header.Set("Content-Type", ct)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: validToken})
	resp, err := app.Test(req, int((5 * time.Second).Milliseconds()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Comprobante enviado.", out.Mensaje)

	require.Len(t, spy.sent, 1)
	got := spy.sent[0]
	assert.Equal(t, "Socio Pilotos", got.Nombre)
	assert.Equal(t, testEmail, got.Correo)
	assert.Equal(t, "L.750", got.MontoTexto())
	assert.Equal(t, "deposito.pdf", got.Archivo.Filename)
	assert.Equal(t, []byte("%PDF-1.4 deposito"), got.Archivo.Content)
}

func TestComprobante_SinSesion401(t *testing.T) {
	spy := &spyReceiptNotifier{}
	app := buildClubApp(entity.RoleCliente, &memCategorySite{}, spy)

	body, ct := receiptForm(t, "100")
	req := httptest.NewRequest(http.MethodPost, "/auth/donaciones/comprobante", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, spy.sent)
}

func TestComprobante_SinArchivo400(t *testing.T) {
	spy := &spyReceiptNotifier{}
	app := buildClubApp(entity.RoleCliente, &memCategorySite{}, spy)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("monto", "100"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/auth/donaciones/comprobante", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: testCookie, Value: validToken})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, spy.sent)
}
