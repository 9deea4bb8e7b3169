package usecase

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// En vivo
// ──────────────────────────────────────────────────────────────────────────────

// LiveStreamUseCase transmisión en vivo y su anuncio en portada.
type LiveStreamUseCase struct {
	repo repository.LiveStreamRepository
}

// NewLiveStreamUseCase construye el caso de uso.
func NewLiveStreamUseCase(repo repository.LiveStreamRepository) *LiveStreamUseCase {
	return &LiveStreamUseCase{repo: repo}
}

// Create registra una transmisión; pasa a ser la vigente.
func (uc *LiveStreamUseCase) Create(ctx context.Context, in dto.LiveStreamRequest) (*dto.LiveStreamResponse, error) {
	s, err := liveFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.MostrarAnuncio = in.MostrarAnuncio
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	r := toLiveResponse(s)
	return &r, nil
}

// Current la transmisión vigente.
func (uc *LiveStreamUseCase) Current(ctx context.Context) (*dto.LiveStreamResponse, error) {
	s, err := uc.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NewNotFound("No hay transmisión registrada")
	}
	r := toLiveResponse(s)
	return &r, nil
}

// Update modifica título, url y descripción; la bandera del anuncio se cambia aparte.
func (uc *LiveStreamUseCase) Update(ctx context.Context, id int64, in dto.LiveStreamRequest) (*dto.LiveStreamResponse, error) {
	s, err := liveFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.ID = id
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	r := toLiveResponse(s)
	return &r, nil
}

// SetAnnouncement muestra u oculta el anuncio de la transmisión id, o de la vigente si id es 0.
func (uc *LiveStreamUseCase) SetAnnouncement(ctx context.Context, in dto.AnnouncementRequest) (*dto.LiveStreamResponse, error) {
	if in.MostrarAnuncio == nil {
		return nil, domain.NewValidationError("mostrar_anuncio", "es obligatorio")
	}
	id := in.ID
	if id == 0 {
		cur, err := uc.repo.Latest(ctx)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, domain.NewNotFound("No hay transmisión registrada")
		}
		id = cur.ID
	}
	s, err := uc.repo.SetAnnouncement(ctx, id, *in.MostrarAnuncio)
	if err != nil {
		return nil, err
	}
	r := toLiveResponse(s)
	return &r, nil
}

func liveFromRequest(in dto.LiveStreamRequest) (*entity.LiveStream, error) {
	titulo := strings.TrimSpace(in.Titulo)
	url := strings.TrimSpace(in.URL)
	if titulo == "" || url == "" {
		return nil, domain.NewValidationError("", "Título y url son obligatorios")
	}
	return &entity.LiveStream{Titulo: titulo, URL: url, Descripcion: strings.TrimSpace(in.Descripcion)}, nil
}

func toLiveResponse(s *entity.LiveStream) dto.LiveStreamResponse {
	return dto.LiveStreamResponse{
		ID:             s.ID,
		Titulo:         s.Titulo,
		URL:            s.URL,
		Descripcion:    s.Descripcion,
		MostrarAnuncio: s.MostrarAnuncio,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Junta directiva
// ──────────────────────────────────────────────────────────────────────────────

// BoardUseCase miembros de la junta directiva.
type BoardUseCase struct {
	repo repository.BoardRepository
}

// NewBoardUseCase construye el caso de uso.
func NewBoardUseCase(repo repository.BoardRepository) *BoardUseCase {
	return &BoardUseCase{repo: repo}
}

// List miembros por orden.
func (uc *BoardUseCase) List(ctx context.Context) (*dto.BoardResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BoardMemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toBoardResponse(m))
	}
	return &dto.BoardResponse{Miembros: out}, nil
}

func (uc *BoardUseCase) Create(ctx context.Context, in dto.BoardMemberRequest) (*dto.BoardMemberResponse, error) {
	m, err := boardFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	r := toBoardResponse(m)
	return &r, nil
}

func (uc *BoardUseCase) Update(ctx context.Context, id int64, in dto.BoardMemberRequest) (*dto.BoardMemberResponse, error) {
	m, err := boardFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	r := toBoardResponse(m)
	return &r, nil
}

func (uc *BoardUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func boardFromRequest(in dto.BoardMemberRequest) (*entity.BoardMember, error) {
	nombre := strings.TrimSpace(in.Nombre)
	cargo := strings.TrimSpace(in.Cargo)
	if nombre == "" || cargo == "" {
		return nil, domain.NewValidationError("", "Nombre y cargo son obligatorios")
	}
	if in.Orden < 0 {
		return nil, domain.NewValidationError("orden", "debe ser mayor o igual a 0")
	}
	return &entity.BoardMember{
		Nombre:    nombre,
		Cargo:     cargo,
		ImagenURL: strings.TrimSpace(in.ImagenURL),
		Orden:     in.Orden,
	}, nil
}

func toBoardResponse(m *entity.BoardMember) dto.BoardMemberResponse {
	return dto.BoardMemberResponse{ID: m.ID, Nombre: m.Nombre, Cargo: m.Cargo, ImagenURL: m.ImagenURL, Orden: m.Orden}
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// CategoryUseCase tarjetas de categorías, encabezado y carrusel de su página.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List categorías ordenadas por slug.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Categorias: out}, nil
}

// Update reemplaza título, tipo, descripción e imagen; el slug no cambia.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryUpdatedResponse, error) {
	title := strings.TrimSpace(in.TitleText)
	if title == "" {
		return nil, domain.NewValidationError("titletext", "es obligatorio")
	}
	c := &entity.Category{
		ID:          id,
		TitleText:   title,
		Tipo:        strings.TrimSpace(in.Tipo),
		Descripcion: strings.TrimSpace(in.Descripcion),
		Image:       strings.TrimSpace(in.Image),
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryUpdatedResponse{Categoria: toCategoryResponse(c)}, nil
}

// Site fila completa de la página de categorías.
func (uc *CategoryUseCase) Site(ctx context.Context) (*dto.CategoriesSiteResponse, error) {
	s, err := uc.site(ctx)
	if err != nil {
		return nil, err
	}
	r := toCategoriesSiteResponse(s)
	return &r, nil
}

func (uc *CategoryUseCase) Header(ctx context.Context) (*dto.CategoriesHeaderResponse, error) {
	s, err := uc.site(ctx)
	if err != nil {
		return nil, err
	}
	r := toCategoriesSiteResponse(s)
	return &r.CategoriesHeaderResponse, nil
}

func (uc *CategoryUseCase) Carousel(ctx context.Context) (*dto.CategoriesCarouselResponse, error) {
	s, err := uc.site(ctx)
	if err != nil {
		return nil, err
	}
	r := toCategoriesSiteResponse(s)
	return &r.CategoriesCarouselResponse, nil
}

// UpdateHeader aplica sólo los campos presentes.
func (uc *CategoryUseCase) UpdateHeader(ctx context.Context, in dto.CategoriesHeaderRequest) (*dto.CategoriesSiteResponse, error) {
	return uc.updateSite(ctx, func(s *entity.CategoriesSite) {
		keep(&s.HeaderTitle, in.HeaderTitle)
		keep(&s.HeaderImg, in.HeaderImg)
	})
}

// UpdateCarousel aplica sólo los campos presentes.
func (uc *CategoryUseCase) UpdateCarousel(ctx context.Context, in dto.CategoriesCarouselRequest) (*dto.CategoriesSiteResponse, error) {
	return uc.updateSite(ctx, func(s *entity.CategoriesSite) {
		keep(&s.CarruselTitle, in.CarruselTitle)
		keep(&s.CarruselSubtitle, in.CarruselSubtitle)
		keep(&s.CarruselImage, in.CarruselImage)
	})
}

func (uc *CategoryUseCase) site(ctx context.Context) (*entity.CategoriesSite, error) {
	s, err := uc.repo.GetSite(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NewNotFound("Datos de categorías no encontrados")
	}
	return s, nil
}

func (uc *CategoryUseCase) updateSite(ctx context.Context, apply func(*entity.CategoriesSite)) (*dto.CategoriesSiteResponse, error) {
	s, err := uc.site(ctx)
	if err != nil {
		return nil, err
	}
	apply(s)
	if err := uc.repo.UpdateSite(ctx, s); err != nil {
		return nil, err
	}
	r := toCategoriesSiteResponse(s)
	return &r, nil
}

// keep sobrescribe dst sólo si v viene en la petición.
func keep(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Slugs:       c.Slug,
		TitleText:   c.TitleText,
		Image:       c.Image,
		Tipo:        c.Tipo,
		Descripcion: c.Descripcion,
	}
}

func toCategoriesSiteResponse(s *entity.CategoriesSite) dto.CategoriesSiteResponse {
	return dto.CategoriesSiteResponse{
		CategoriesHeaderResponse: dto.CategoriesHeaderResponse{HeaderTitle: s.HeaderTitle, HeaderImg: s.HeaderImg},
		CategoriesCarouselResponse: dto.CategoriesCarouselResponse{
			CarruselTitle:    s.CarruselTitle,
			CarruselSubtitle: s.CarruselSubtitle,
			CarruselImage:    s.CarruselImage,
		},
		UpdatedAt: s.UpdatedAt,
	}
}
