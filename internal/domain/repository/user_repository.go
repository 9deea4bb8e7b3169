package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetRoleByEmail devuelve domain.ErrUserNotFound si no hay fila para el email.
	GetRoleByEmail(ctx context.Context, email string) (string, error)
	GetContact(ctx context.Context, id string) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdateName(ctx context.Context, id, nombre string) (*entity.User, error)
	UpdateRole(ctx context.Context, id, rol string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
