package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/auth"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// Locals keys del contexto de autenticación en Fiber.
const (
	LocalAuth = "auth"
	LocalRole = "role"
)

// Mensajes del control de acceso.
const (
	MsgMissingCredential = "No autenticado: falta la credencial"
	MsgInvalidCredential = "Token inválido o expirado"
	MsgNotAuthenticated  = "No autenticado"
	MsgUserNotFound      = "Usuario no encontrado"
	MsgForbidden         = "No autorizado"
	msgAuthzFailure      = "Error de autorización"
)

// RoleResolver resuelve el rol de aplicación de un email.
// Devuelve domain.ErrUserNotFound si el email no tiene fila.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

// RequireAuthenticated lee el token de la cookie cookieName, lo verifica con el
// proveedor de identidad y adjunta un auth.AuthContext a la petición.
// Falta de cookie o fallo de verificación responden 401 sin llegar al handler.
func RequireAuthenticated(verifier ports.IdentityVerifier, cookieName string, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Cookies(cookieName))
		if token == "" {
			return newAPIError(fiber.StatusUnauthorized, CodeUnauthorized, MsgMissingCredential)
		}
		id, err := verifier.VerifyIDToken(c.UserContext(), token)
		if err != nil || id == nil || id.UID == "" {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rechazado")
			return newAPIError(fiber.StatusUnauthorized, CodeUnauthorized, MsgInvalidCredential)
		}
		a := auth.NewAuthContext(id.UID, id.Email, id.ExpiresAt)
		c.Locals(LocalAuth, a)
		c.SetUserContext(auth.WithAuth(c.UserContext(), a))
		return c.Next()
	}
}

// RequireRole autoriza por rol. Debe ir después de RequireAuthenticated.
//   - sin email en el contexto: 401
//   - email sin fila en usuarios: 404
//   - rol fuera de allowed: 403
func RequireRole(resolver RoleResolver, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, ok := GetAuth(c)
		if !ok || a.Email() == "" {
			return newAPIError(fiber.StatusUnauthorized, CodeUnauthorized, MsgNotAuthenticated)
		}
		rol, err := resolver.ResolveRole(c.UserContext(), a.Email())
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return newAPIError(fiber.StatusNotFound, CodeNotFound, MsgUserNotFound)
			}
			if errors.Is(err, domain.ErrUnauthorized) {
				return newAPIError(fiber.StatusUnauthorized, CodeUnauthorized, MsgNotAuthenticated)
			}
			ae := newAPIError(fiber.StatusInternalServerError, CodeInternal, msgAuthzFailure)
			ae.cause = err
			return ae
		}
		for _, r := range allowed {
			if r == rol {
				c.Locals(LocalRole, rol)
				return c.Next()
			}
		}
		return newAPIError(fiber.StatusForbidden, CodeForbidden, MsgForbidden)
	}
}

// GetAuth devuelve la identidad verificada (después de RequireAuthenticated).
func GetAuth(c *fiber.Ctx) (auth.AuthContext, bool) {
	a, ok := c.Locals(LocalAuth).(auth.AuthContext)
	return a, ok && !a.IsZero()
}

// GetUserID devuelve el uid autenticado o "".
func GetUserID(c *fiber.Ctx) string {
	a, _ := GetAuth(c)
	return a.UID()
}

// GetRole devuelve el rol resuelto por RequireRole o "".
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
