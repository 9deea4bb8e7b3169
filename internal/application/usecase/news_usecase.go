package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// NewsUseCase noticias del sitio.
type NewsUseCase struct {
	repo repository.NewsRepository
	now  func() time.Time
}

// NewNewsUseCase construye el caso de uso.
func NewNewsUseCase(repo repository.NewsRepository) *NewsUseCase {
	return &NewsUseCase{repo: repo, now: time.Now}
}

// List noticias, la más reciente primero.
func (uc *NewsUseCase) List(ctx context.Context) (*dto.NewsListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NewsResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNewsResponse(n))
	}
	return &dto.NewsListResponse{Noticias: out}, nil
}

// GetByID una noticia.
func (uc *NewsUseCase) GetByID(ctx context.Context, id int64) (*dto.NewsResponse, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NewNotFound("Noticia no encontrada")
	}
	r := toNewsResponse(n)
	return &r, nil
}

// Create publica una noticia a nombre del autor autenticado.
func (uc *NewsUseCase) Create(ctx context.Context, authorID string, in dto.NewsRequest) (*dto.NewsResponse, error) {
	n, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	if authorID != "" {
		n.AutorID = &authorID
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	r := toNewsResponse(n)
	return &r, nil
}

// Update modifica una noticia.
func (uc *NewsUseCase) Update(ctx context.Context, id int64, in dto.NewsRequest) (*dto.NewsResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NewNotFound("Noticia no encontrada")
	}
	n, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	n.ID = id
	n.AutorID = current.AutorID
	if strings.TrimSpace(in.Fecha) == "" {
		n.FechaPublicacion = current.FechaPublicacion
	}
	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	r := toNewsResponse(n)
	return &r, nil
}

// Delete elimina una noticia.
func (uc *NewsUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *NewsUseCase) fromRequest(in dto.NewsRequest) (*entity.News, error) {
	titulo := strings.TrimSpace(in.Titulo)
	contenido := strings.TrimSpace(in.Contenido)
	if titulo == "" || contenido == "" {
		return nil, domain.NewValidationError("", "Título y contenido son obligatorios")
	}
	fecha := uc.now()
	if strings.TrimSpace(in.Fecha) != "" {
		t, ok := parseDate(in.Fecha)
		if !ok {
			return nil, domain.NewValidationError("fecha", "fecha inválida")
		}
		fecha = t
	}
	return &entity.News{
		Titulo:           titulo,
		Contenido:        contenido,
		ImagenURL:        strings.TrimSpace(in.ImagenURL),
		FechaPublicacion: fecha,
	}, nil
}

func toNewsResponse(n *entity.News) dto.NewsResponse {
	return dto.NewsResponse{
		ID:               n.ID,
		Titulo:           n.Titulo,
		Contenido:        n.Contenido,
		ImagenURL:        n.ImagenURL,
		FechaPublicacion: n.FechaPublicacion,
		AutorID:          n.AutorID,
	}
}
