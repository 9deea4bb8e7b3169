package usecase

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// PlayerUseCase listado de jugadores.
type PlayerUseCase struct {
	repo repository.PlayerRepository
}

// NewPlayerUseCase construye el caso de uso.
func NewPlayerUseCase(repo repository.PlayerRepository) *PlayerUseCase {
	return &PlayerUseCase{repo: repo}
}

// List jugadores ordenados por nombre.
func (uc *PlayerUseCase) List(ctx context.Context) (*dto.PlayerListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlayerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PlayerResponse{
			ID:        p.ID,
			Nombre:    p.Nombre,
			Numero:    p.Numero,
			Posicion:  p.Posicion,
			Categoria: p.Categoria,
			FotoURL:   p.FotoURL,
		})
	}
	return &dto.PlayerListResponse{Jugadores: out}, nil
}
