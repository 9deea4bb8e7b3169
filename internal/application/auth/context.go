package auth

import (
	"context"
	"time"
)

// AuthContext identidad verificada del llamador. Se construye una vez por petición
// y no se modifica después; los campos sólo se exponen por lectura.
type AuthContext struct {
	uid       string
	email     string
	expiresAt time.Time
}

// NewAuthContext construye el contexto de autenticación de una petición.
func NewAuthContext(uid, email string, expiresAt time.Time) AuthContext {
	return AuthContext{uid: uid, email: email, expiresAt: expiresAt}
}

// UID identificador estable del usuario en el proveedor de identidad.
func (a AuthContext) UID() string { return a.uid }

// Email email del token; puede venir vacío.
func (a AuthContext) Email() string { return a.email }

// ExpiresAt expiración del token verificado.
func (a AuthContext) ExpiresAt() time.Time { return a.expiresAt }

// IsZero indica que no hay identidad.
func (a AuthContext) IsZero() bool { return a.uid == "" }

type ctxKey struct{}

// WithAuth adjunta la identidad a un context.Context.
func WithAuth(ctx context.Context, a AuthContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext recupera la identidad adjuntada con WithAuth.
func FromContext(ctx context.Context) (AuthContext, bool) {
	a, ok := ctx.Value(ctxKey{}).(AuthContext)
	return a, ok && !a.IsZero()
}
