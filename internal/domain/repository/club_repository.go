package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// LiveStreamRepository transmisiones en vivo.
type LiveStreamRepository interface {
	Create(ctx context.Context, s *entity.LiveStream) error
	// Latest la transmisión editada más recientemente; nil si no hay ninguna.
	Latest(ctx context.Context) (*entity.LiveStream, error)
	Update(ctx context.Context, s *entity.LiveStream) error
	SetAnnouncement(ctx context.Context, id int64, show bool) (*entity.LiveStream, error)
}

// BoardRepository junta directiva.
type BoardRepository interface {
	List(ctx context.Context) ([]*entity.BoardMember, error)
	Create(ctx context.Context, m *entity.BoardMember) error
	Update(ctx context.Context, m *entity.BoardMember) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository tarjetas de categorías y la fila única categorias_site.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	// GetSite nil si la fila no existe.
	GetSite(ctx context.Context) (*entity.CategoriesSite, error)
	UpdateSite(ctx context.Context, s *entity.CategoriesSite) error
}
