package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	apphttp "github.com/pilotosfah/pilotos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// queuedTasks guarda las tareas para ejecutarlas cuando el test lo decida.
type queuedTasks struct {
	tasks []func(ctx context.Context) error
}

func (q *queuedTasks) Dispatch(_ string, task func(ctx context.Context) error) {
	q.tasks = append(q.tasks, task)
}

type spyFormNotifier struct {
	contacts  []notify.ContactMessage
	donations []notify.DonationReceived
}

func (s *spyFormNotifier) NotifyDonation(_ context.Context, d notify.DonationReceived) error {
	s.donations = append(s.donations, d)
	return nil
}

func (s *spyFormNotifier) NotifyContactForm(_ context.Context, m notify.ContactMessage) error {
	s.contacts = append(s.contacts, m)
	return nil
}

type memDonations struct {
	nextID int64
}

func (m *memDonations) CreateProduct(context.Context, *entity.DonationProduct) error { return nil }
func (m *memDonations) ListProducts(context.Context) ([]*entity.DonationProduct, error) {
	return nil, nil
}
func (m *memDonations) UpdateProduct(context.Context, *entity.DonationProduct) error { return nil }
func (m *memDonations) DeleteProduct(context.Context, int64) (*entity.DonationProduct, error) {
	return nil, nil
}
func (m *memDonations) Create(_ context.Context, d *entity.Donation) error {
	m.nextID++
	d.ID = m.nextID
	return nil
}
func (m *memDonations) List(context.Context) ([]*entity.Donation, error) { return nil, nil }
func (m *memDonations) UpdateStatus(context.Context, int64, string) error { return nil }

func buildFormApp(spy *spyFormNotifier, tasks *queuedTasks) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(nil)})
	h := apphttp.NewFormHandler(
		usecase.NewDonationUseCase(&memDonations{}, spy, tasks),
		usecase.NewContactUseCase(spy, tasks, nil),
	)
	app.Post("/registrarformulario", h.SubmitContactForm)
	app.Post("/registrardonacion", h.RegisterDonation)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Less(t, resp.StatusCode, 300)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios públicos: la tarea en segundo plano conserva sus datos
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitContactForm_TareaConservaDatosTrasOtraPeticion(t *testing.T) {
	spy := &spyFormNotifier{}
	tasks := &queuedTasks{}
	app := buildFormApp(spy, tasks)

	postForm(t, app, "/registrarformulario", url.Values{
		"nombre": {"Alice"}, "correo": {"alice@x.com"}, "mensaje": {"hola mundo original"},
	})
	postForm(t, app, "/registrarformulario", url.Values{
		"nombre": {"Zzzzz"}, "correo": {"zzzzz@y.com"}, "mensaje": {"XXXXXXXXXXXXXXXXXXX"},
	})

	require.Len(t, tasks.tasks, 2)
	require.NoError(t, tasks.tasks[0](context.Background()))
	require.Len(t, spy.contacts, 1)
	assert.Equal(t, "Alice", spy.contacts[0].Nombre)
	assert.Equal(t, "alice@x.com", spy.contacts[0].Correo)
	assert.Equal(t, "hola mundo original", spy.contacts[0].Mensaje)
}

func TestRegisterDonation_TareaConservaDatosTrasOtraPeticion(t *testing.T) {
	spy := &spyFormNotifier{}
	tasks := &queuedTasks{}
	app := buildFormApp(spy, tasks)

	postForm(t, app, "/registrardonacion", url.Values{
		"nombre": {"Bruno"}, "telefono": {"9999-0000"}, "correo": {"bruno@x.com"},
		"dia": {"2026-11-02"}, "horario": {"09:30"}, "descripcion": {"Dos cajas de pelotas"},
	})
	postForm(t, app, "/registrardonacion", url.Values{
		"nombre": {"Wwwww"}, "telefono": {"1111-2222"}, "correo": {"wwwww@y.com"},
		"dia": {"2027-01-15"}, "horario": {"18:45"}, "descripcion": {"YYYYYYYYYYYYYYYYYYYY"},
	})

	require.Len(t, tasks.tasks, 2)
	require.NoError(t, tasks.tasks[0](context.Background()))
	require.Len(t, spy.donations, 1)
	got := spy.donations[0]
	assert.Equal(t, "Bruno", got.Nombre)
	assert.Equal(t, "bruno@x.com", got.Correo)
	assert.Equal(t, "09:30", got.Horario)
	assert.Equal(t, "Dos cajas de pelotas", got.Descripcion)
}
