package ports

import (
	"context"
	"time"
)

// VerifiedIdentity sujeto verificado a partir de un token de sesión.
type VerifiedIdentity struct {
	UID       string
	Email     string
	ExpiresAt time.Time
}

// IdentityVerifier verifica el token de sesión contra el proveedor de identidad.
// Cualquier fallo (expirado, malformado, revocado, red) se devuelve como error;
// el llamador no debe distinguir la causa frente al cliente.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*VerifiedIdentity, error)
}

// SignInResult credenciales emitidas por el proveedor tras autenticarse o registrarse.
type SignInResult struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}

// IdentityProvider operaciones de cuenta delegadas al proveedor de identidad.
// Credenciales inválidas -> domain.ErrUnauthorized; email repetido -> domain.ErrEmailAlreadyExists.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error)
	SignUp(ctx context.Context, email, password string) (*SignInResult, error)
	SendEmailVerification(ctx context.Context, idToken string) error
	SendPasswordReset(ctx context.Context, email string) error
	DeleteAccount(ctx context.Context, idToken string) error
}
