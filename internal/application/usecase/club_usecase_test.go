package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memLive struct {
	streams []*entity.LiveStream
}

func (m *memLive) Create(ctx context.Context, s *entity.LiveStream) error {
	s.ID = int64(len(m.streams) + 1)
	s.UpdatedAt = time.Now()
	m.streams = append(m.streams, s)
	return nil
}

func (m *memLive) Latest(ctx context.Context) (*entity.LiveStream, error) {
	if len(m.streams) == 0 {
		return nil, nil
	}
	return m.streams[len(m.streams)-1], nil
}

func (m *memLive) Update(ctx context.Context, s *entity.LiveStream) error {
	for _, cur := range m.streams {
		if cur.ID == s.ID {
			s.MostrarAnuncio = cur.MostrarAnuncio
			*cur = *s
			return nil
		}
	}
	return domain.NewNotFound("Transmisión no encontrada")
}

func (m *memLive) SetAnnouncement(ctx context.Context, id int64, show bool) (*entity.LiveStream, error) {
	for _, cur := range m.streams {
		if cur.ID == id {
			cur.MostrarAnuncio = show
			return cur, nil
		}
	}
	return nil, domain.NewNotFound("Transmisión no encontrada")
}

type memCategories struct {
	site *entity.CategoriesSite
	cats []*entity.Category
}

func (m *memCategories) List(ctx context.Context) ([]*entity.Category, error) { return m.cats, nil }

func (m *memCategories) Update(ctx context.Context, c *entity.Category) error {
	return domain.NewNotFound("Categoría no encontrada")
}

func (m *memCategories) GetSite(ctx context.Context) (*entity.CategoriesSite, error) {
	if m.site == nil {
		return nil, nil
	}
	cp := *m.site
	return &cp, nil
}

func (m *memCategories) UpdateSite(ctx context.Context, s *entity.CategoriesSite) error {
	cp := *s
	m.site = &cp
	return nil
}

// contactUsers sólo responde GetContact.
type contactUsers struct {
	repository.UserRepository
	contact *entity.Contact
	err     error
}

func (u contactUsers) GetContact(ctx context.Context, id string) (*entity.Contact, error) {
	return u.contact, u.err
}

type spyReceipts struct {
	sent []notify.DonationReceipt
	err  error
}

func (s *spyReceipts) NotifyDonationReceipt(ctx context.Context, d notify.DonationReceipt) error {
	s.sent = append(s.sent, d)
	return s.err
}

func boolPtr(b bool) *bool { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// En vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestLiveStream_Current_SinTransmision404(t *testing.T) {
	_, err := NewLiveStreamUseCase(&memLive{}).Current(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLiveStream_AnuncioSinIDUsaLaVigente(t *testing.T) {
	repo := &memLive{}
	uc := NewLiveStreamUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.LiveStreamRequest{Titulo: "Semifinal", URL: "https://youtu.be/a"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.LiveStreamRequest{Titulo: "Final", URL: "https://youtu.be/b"})
	require.NoError(t, err)

	out, err := uc.SetAnnouncement(ctx, dto.AnnouncementRequest{MostrarAnuncio: boolPtr(true)})

	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)
	assert.True(t, out.MostrarAnuncio)
	assert.False(t, repo.streams[0].MostrarAnuncio)
}

func TestLiveStream_AnuncioSinTransmisiones404(t *testing.T) {
	_, err := NewLiveStreamUseCase(&memLive{}).SetAnnouncement(context.Background(),
		dto.AnnouncementRequest{MostrarAnuncio: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLiveStream_UpdateNoCambiaBandera(t *testing.T) {
	repo := &memLive{}
	uc := NewLiveStreamUseCase(repo)
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.LiveStreamRequest{Titulo: "Final", URL: "https://youtu.be/b", MostrarAnuncio: true})
	require.NoError(t, err)

	out, err := uc.Update(ctx, 1, dto.LiveStreamRequest{Titulo: "Gran final", URL: "https://youtu.be/c"})

	require.NoError(t, err)
	assert.Equal(t, "Gran final", out.Titulo)
	assert.True(t, out.MostrarAnuncio)
}

// ──────────────────────────────────────────────────────────────────────────────
// Junta directiva
// ──────────────────────────────────────────────────────────────────────────────

func TestBoard_CargoObligatorio(t *testing.T) {
	_, err := NewBoardUseCase(nil).Create(context.Background(), dto.BoardMemberRequest{Nombre: "Carlos", Cargo: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_ActualizacionParcialConservaCampos(t *testing.T) {
	repo := &memCategories{site: &entity.CategoriesSite{
		HeaderTitle:      "Categorías",
		HeaderImg:        "https://cdn/header.png",
		CarruselTitle:    "Nuestros equipos",
		CarruselSubtitle: "Desde los 5 años",
	}}
	uc := NewCategoryUseCase(repo)

	out, err := uc.UpdateCarousel(context.Background(), dto.CategoriesCarouselRequest{CarruselTitle: strPtr(" Equipos 2026 ")})

	require.NoError(t, err)
	assert.Equal(t, "Equipos 2026", out.CarruselTitle)
	assert.Equal(t, "Desde los 5 años", out.CarruselSubtitle)
	assert.Equal(t, "https://cdn/header.png", out.HeaderImg)
	assert.Equal(t, "Equipos 2026", repo.site.CarruselTitle)
}

func TestCategories_SinFilaSite404(t *testing.T) {
	uc := NewCategoryUseCase(&memCategories{})

	_, err := uc.Header(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateHeader(context.Background(), dto.CategoriesHeaderRequest{HeaderTitle: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategories_UpdateTituloObligatorio(t *testing.T) {
	_, err := NewCategoryUseCase(&memCategories{}).Update(context.Background(), 1, dto.CategoryRequest{TitleText: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante de donación
// ──────────────────────────────────────────────────────────────────────────────

func pdfFile() *FileInput {
	return &FileInput{Filename: "Transferencia Enero.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")}
}

func TestReceipt_ResuelveNombreDelUsuario(t *testing.T) {
	spy := &spyReceipts{}
	users := contactUsers{contact: &entity.Contact{Nombre: "Ana Pérez", Email: "ana@x.com"}}
	uc := NewDonationReceiptUseCase(users, spy, nil)

	out, err := uc.Send(context.Background(), "uid-1", dto.DonationReceiptRequest{Monto: " 500 "}, pdfFile())

	require.NoError(t, err)
	assert.Equal(t, "Comprobante enviado.", out.Mensaje)
	require.Len(t, spy.sent, 1)
	got := spy.sent[0]
	assert.Equal(t, "Ana Pérez", got.Nombre)
	assert.Equal(t, "ana@x.com", got.Correo)
	assert.Equal(t, "L.500", got.MontoTexto())
	assert.Equal(t, "transferencia-enero.pdf", got.Archivo.Filename)
	assert.Equal(t, "application/pdf", got.Archivo.ContentType)
}

func TestReceipt_UsuarioNoResueltoEsAnonimo(t *testing.T) {
	spy := &spyReceipts{}
	uc := NewDonationReceiptUseCase(contactUsers{err: errors.New("db caída")}, spy, nil)

	_, err := uc.Send(context.Background(), "uid-1", dto.DonationReceiptRequest{}, pdfFile())

	require.NoError(t, err)
	require.Len(t, spy.sent, 1)
	assert.Equal(t, "Anónimo", spy.sent[0].Nombre)
	assert.Empty(t, spy.sent[0].Correo)
	assert.Equal(t, "No especificado", spy.sent[0].MontoTexto())
}

func TestReceipt_SinArchivo400(t *testing.T) {
	spy := &spyReceipts{}
	uc := NewDonationReceiptUseCase(contactUsers{}, spy, nil)

	_, err := uc.Send(context.Background(), "uid-1", dto.DonationReceiptRequest{}, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, spy.sent)
}

func TestReceipt_TipoNoPermitido(t *testing.T) {
	uc := NewDonationReceiptUseCase(contactUsers{}, &spyReceipts{}, nil)
	f := &FileInput{Filename: "x.exe", ContentType: "application/octet-stream", Content: []byte("MZ")}

	_, err := uc.Send(context.Background(), "uid-1", dto.DonationReceiptRequest{}, f)

	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestReceipt_FalloDeEnvioSePropaga(t *testing.T) {
	uc := NewDonationReceiptUseCase(contactUsers{}, &spyReceipts{err: errors.New("smtp")}, nil)

	_, err := uc.Send(context.Background(), "uid-1", dto.DonationReceiptRequest{}, pdfFile())

	assert.Error(t, err)
}
