package usecase

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// TestimonialUseCase testimonios y encabezado de la sección.
type TestimonialUseCase struct {
	repo repository.TestimonialRepository
}

// NewTestimonialUseCase construye el caso de uso.
func NewTestimonialUseCase(repo repository.TestimonialRepository) *TestimonialUseCase {
	return &TestimonialUseCase{repo: repo}
}

// List todos los testimonios, el destacado primero.
func (uc *TestimonialUseCase) List(ctx context.Context) ([]dto.TestimonialResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TestimonialResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTestimonialResponse(t))
	}
	return out, nil
}

// Featured el testimonio destacado.
func (uc *TestimonialUseCase) Featured(ctx context.Context) (*dto.TestimonialResponse, error) {
	t, err := uc.repo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("No hay testimonio destacado")
	}
	r := toTestimonialResponse(t)
	return &r, nil
}

// Create registra un testimonio no destacado.
func (uc *TestimonialUseCase) Create(ctx context.Context, in dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	t, err := testimonialFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	r := toTestimonialResponse(t)
	return &r, nil
}

// Update modifica un testimonio sin alterar si es destacado.
func (uc *TestimonialUseCase) Update(ctx context.Context, id int64, in dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.NewNotFound("Testimonio no encontrado")
	}
	t, err := testimonialFromRequest(in)
	if err != nil {
		return nil, err
	}
	t.ID = id
	t.Destacado = current.Destacado
	t.CreatedAt = current.CreatedAt
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	r := toTestimonialResponse(t)
	return &r, nil
}

// SetFeatured deja a id como único destacado.
func (uc *TestimonialUseCase) SetFeatured(ctx context.Context, in dto.FeatureTestimonialRequest) (*dto.TestimonialResponse, error) {
	if in.ID <= 0 {
		return nil, domain.NewValidationError("id", "id inválido")
	}
	if err := uc.repo.SetFeatured(ctx, in.ID); err != nil {
		return nil, err
	}
	return uc.Featured(ctx)
}

// Delete elimina un testimonio.
func (uc *TestimonialUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Header encabezado de la sección; usa el título por defecto si nunca se editó.
func (uc *TestimonialUseCase) Header(ctx context.Context) (*dto.TestimonialsHeaderResponse, error) {
	h, err := uc.repo.GetHeader(ctx)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return &dto.TestimonialsHeaderResponse{HeaderTitle: entity.DefaultTestimonialsHeader}, nil
	}
	return &dto.TestimonialsHeaderResponse{HeaderTitle: h.HeaderTitle, UpdatedAt: h.UpdatedAt}, nil
}

// UpdateHeader guarda el encabezado.
func (uc *TestimonialUseCase) UpdateHeader(ctx context.Context, in dto.TestimonialsHeaderRequest) (*dto.TestimonialsHeaderResponse, error) {
	title := strings.TrimSpace(in.HeaderTitle)
	if title == "" {
		return nil, domain.NewValidationError("header_title", "el título es obligatorio")
	}
	h, err := uc.repo.UpsertHeader(ctx, title)
	if err != nil {
		return nil, err
	}
	return &dto.TestimonialsHeaderResponse{HeaderTitle: h.HeaderTitle, UpdatedAt: h.UpdatedAt}, nil
}

func testimonialFromRequest(in dto.TestimonialRequest) (*entity.Testimonial, error) {
	nombre := strings.TrimSpace(in.Nombre)
	contenido := strings.TrimSpace(in.Contenido)
	if nombre == "" || contenido == "" {
		return nil, domain.NewValidationError("", "Nombre y contenido son obligatorios")
	}
	return &entity.Testimonial{
		Nombre:    nombre,
		Cargo:     strings.TrimSpace(in.Cargo),
		Contenido: contenido,
		ImagenURL: strings.TrimSpace(in.ImagenURL),
	}, nil
}

func toTestimonialResponse(t *entity.Testimonial) dto.TestimonialResponse {
	return dto.TestimonialResponse{
		ID:        t.ID,
		Nombre:    t.Nombre,
		Cargo:     t.Cargo,
		Contenido: t.Contenido,
		ImagenURL: t.ImagenURL,
		Destacado: t.Destacado,
		CreatedAt: t.CreatedAt,
	}
}
