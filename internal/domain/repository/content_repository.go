package repository

import (
	"context"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// EventRepository persistencia de eventos del calendario.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error)
	Update(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id int64) error
}

// NewsRepository persistencia de noticias.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	List(ctx context.Context) ([]*entity.News, error)
	Update(ctx context.Context, n *entity.News) error
	Delete(ctx context.Context, id int64) error
}

// TestimonialRepository persistencia de testimonios y del encabezado de la sección.
type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	GetByID(ctx context.Context, id int64) (*entity.Testimonial, error)
	List(ctx context.Context) ([]*entity.Testimonial, error)
	GetFeatured(ctx context.Context) (*entity.Testimonial, error)
	// SetFeatured marca id como destacado y desmarca el resto en una sola sentencia.
	SetFeatured(ctx context.Context, id int64) error
	Update(ctx context.Context, t *entity.Testimonial) error
	Delete(ctx context.Context, id int64) error

	GetHeader(ctx context.Context) (*entity.TestimonialsHeader, error)
	UpsertHeader(ctx context.Context, title string) (*entity.TestimonialsHeader, error)
}

// PlayerRepository lectura de jugadores.
type PlayerRepository interface {
	List(ctx context.Context) ([]*entity.Player, error)
}
