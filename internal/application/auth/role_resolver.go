package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// RoleResolver obtiene el rol de aplicación de un usuario a partir de su email.
type RoleResolver struct {
	users repository.UserRepository
}

// NewRoleResolver construye el resolver sobre el repositorio de usuarios.
func NewRoleResolver(users repository.UserRepository) *RoleResolver {
	return &RoleResolver{users: users}
}

// ResolveRole devuelve domain.ErrUserNotFound si no hay fila para el email.
// Un rol fuera del vocabulario se trata como error interno, nunca como permiso.
func (r *RoleResolver) ResolveRole(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrUnauthorized
	}
	rol, err := r.users.GetRoleByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("resolver rol: %w", err)
	}
	if !entity.IsValidRole(rol) {
		return "", fmt.Errorf("resolver rol: rol desconocido %q", rol)
	}
	return rol, nil
}
