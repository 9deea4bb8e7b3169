package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// AccountUseCase casos de uso de cuenta: registro, login, restablecer y eliminar.
// Las credenciales las gestiona el proveedor de identidad; aquí sólo se mantiene el perfil y el rol.
type AccountUseCase struct {
	provider ports.IdentityProvider
	users    repository.UserRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(provider ports.IdentityProvider, users repository.UserRepository, log *logger.Logger) *AccountUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AccountUseCase{provider: provider, users: users, log: log, now: time.Now}
}

// SignUp crea la identidad en el proveedor y el perfil con rol cliente.
// Si el perfil no se puede guardar se elimina la identidad recién creada.
func (uc *AccountUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SignUpResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	res, err := uc.provider.SignUp(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        res.UID,
		Nombre:    strings.TrimSpace(in.Nombre),
		Email:     email,
		Rol:       entity.RoleCliente,
		CreatedAt: uc.now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if delErr := uc.provider.DeleteAccount(ctx, res.IDToken); delErr != nil {
			uc.log.Error().Err(delErr).Str("uid", res.UID).Msg("no se pudo revertir la identidad tras fallo del perfil")
		}
		return nil, err
	}

	if err := uc.provider.SendEmailVerification(ctx, res.IDToken); err != nil {
		uc.log.Warn().Err(err).Str("uid", res.UID).Msg("no se pudo enviar la verificación de correo")
	}
	return &dto.SignUpResponse{Mensaje: "Usuario creado. Revise su correo para verificar la cuenta.", UID: res.UID}, nil
}

// SignIn autentica con email y password. Devuelve el ID token que viajará en la cookie.
func (uc *AccountUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInResult, error) {
	res, err := uc.provider.SignInWithPassword(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return nil, err
	}
	if res.IDToken == "" {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SignInResult{UID: res.UID, IDToken: res.IDToken}, nil
}

// ResetPassword envía el correo de restablecimiento. Un email desconocido no se revela al cliente.
func (uc *AccountUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	err := uc.provider.SendPasswordReset(ctx, strings.TrimSpace(in.Email))
	if errors.Is(err, domain.ErrUserNotFound) {
		uc.log.Debug().Msg("restablecer: email sin cuenta")
		return nil
	}
	return err
}

// DeleteAccount elimina el perfil del llamador y su identidad en el proveedor.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, uid, idToken string) error {
	if uid == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.users.Delete(ctx, uid); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return uc.provider.DeleteAccount(ctx, idToken)
}
