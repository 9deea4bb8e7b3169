package firebase

import (
	"context"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/pkg/idtoken"
)

var _ ports.IdentityVerifier = (*TokenVerifier)(nil)

// TokenVerifier adapta idtoken.Verifier al puerto IdentityVerifier.
type TokenVerifier struct {
	v *idtoken.Verifier
}

// NewTokenVerifier construye el verificador para el proyecto indicado.
func NewTokenVerifier(projectID, certsURL string, opts ...idtoken.Option) *TokenVerifier {
	return &TokenVerifier{v: idtoken.NewVerifier(projectID, certsURL, opts...)}
}

// VerifyIDToken valida el token y devuelve el sujeto verificado.
func (t *TokenVerifier) VerifyIDToken(ctx context.Context, token string) (*ports.VerifiedIdentity, error) {
	claims, err := t.v.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return &ports.VerifiedIdentity{
		UID:       claims.UID(),
		Email:     claims.Email,
		ExpiresAt: exp,
	}, nil
}
