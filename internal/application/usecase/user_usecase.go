package usecase

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// UserUseCase perfil propio y administración de roles.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile perfil del usuario autenticado.
func (uc *UserUseCase) Profile(ctx context.Context, uid string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("Usuario no encontrado")
	}
	return entityToUserResponse(user), nil
}

// UpdateProfile cambia el nombre visible del usuario autenticado.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.NewValidationError("nombre", "el nombre es obligatorio")
	}
	user, err := uc.repo.UpdateName(ctx, uid, nombre)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("Usuario no encontrado")
	}
	return entityToUserResponse(user), nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// SetRole asigna un rol del vocabulario a un usuario.
func (uc *UserUseCase) SetRole(ctx context.Context, id string, in dto.SetRoleRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(in.Rol) {
		return nil, domain.NewValidationError("rol", "rol no permitido")
	}
	user, err := uc.repo.UpdateRole(ctx, id, in.Rol)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFound("Usuario no encontrado")
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		CreatedAt: u.CreatedAt,
	}
}
