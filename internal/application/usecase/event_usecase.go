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

// EventUseCase calendario de eventos.
type EventUseCase struct {
	repo repository.EventRepository
	now  func() time.Time
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(repo repository.EventRepository) *EventUseCase {
	return &EventUseCase{repo: repo, now: time.Now}
}

// Upcoming eventos que aún no terminan, ordenados por fecha de inicio.
func (uc *EventUseCase) Upcoming(ctx context.Context) ([]dto.EventResponse, error) {
	now := uc.now()
	list, err := uc.repo.ListUpcoming(ctx, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// Create registra un evento.
func (uc *EventUseCase) Create(ctx context.Context, in dto.EventRequest) (*dto.EventResponse, error) {
	e, err := eventFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	r := toEventResponse(e)
	return &r, nil
}

// Update reemplaza un evento existente.
func (uc *EventUseCase) Update(ctx context.Context, id int64, in dto.EventRequest) (*dto.EventResponse, error) {
	e, err := eventFromRequest(in)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	r := toEventResponse(e)
	return &r, nil
}

// Delete elimina un evento.
func (uc *EventUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func eventFromRequest(in dto.EventRequest) (*entity.Event, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.NewValidationError("nombre", "el nombre es obligatorio")
	}
	inicio, ok := parseDate(in.FechaInicio)
	if !ok {
		return nil, domain.NewValidationError("fecha_inicio", "fecha inválida")
	}
	e := &entity.Event{
		Nombre:      nombre,
		Descripcion: strings.TrimSpace(in.Descripcion),
		FechaInicio: inicio,
		Habilitado:  true,
		ImgURL:      strings.TrimSpace(in.ImgURL),
	}
	if in.Habilitado != nil {
		e.Habilitado = *in.Habilitado
	}
	if strings.TrimSpace(in.FechaFinal) != "" {
		final, ok := parseDate(in.FechaFinal)
		if !ok {
			return nil, domain.NewValidationError("fecha_final", "fecha inválida")
		}
		if final.Before(inicio) {
			return nil, domain.NewValidationError("fecha_final", "la fecha final no puede ser anterior al inicio")
		}
		e.FechaFinal = &final
	}
	return e, nil
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          e.ID,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		FechaInicio: e.FechaInicio,
		FechaFinal:  e.FechaFinal,
		Habilitado:  e.Habilitado,
		ImgURL:      e.ImgURL,
	}
}
