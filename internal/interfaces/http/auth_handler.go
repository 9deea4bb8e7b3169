package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/auth"
	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/pkg/config"
)

// AccountHandler registro, sesión por cookie y perfil.
type AccountHandler struct {
	accounts *auth.AccountUseCase
	users    *usecase.UserUseCase
	cookie   config.CookieConfig
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(accounts *auth.AccountUseCase, users *usecase.UserUseCase, cookie config.CookieConfig) *AccountHandler {
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	return &AccountHandler{accounts: accounts, users: users, cookie: cookie}
}

// SignUp godoc
// @Summary      Registrar usuario
// @Tags         cuentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "nombre, email, password"
// @Success      201   {object}  dto.SignUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AccountHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.accounts.SignUp(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Description  Deja el ID token en la cookie httpOnly de sesión.
// @Tags         cuentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.SignInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/signin [post]
func (h *AccountHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	res, err := h.accounts.SignIn(c.UserContext(), in)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, res.IDToken)
	return c.JSON(dto.SignInResponse{Mensaje: "Login exitoso!", UID: res.UID})
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         cuentas
// @Produce      json
// @Success      203  {object}  dto.MessageResponse
// @Router       /auth/signout [post]
func (h *AccountHandler) SignOut(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return c.Status(fiber.StatusNonAuthoritativeInformation).JSON(dto.MessageResponse{Mensaje: "Sesión cerrada"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña
// @Description  Responde igual exista o no la cuenta.
// @Tags         cuentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/restablecer [post]
func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.accounts.ResetPassword(c.UserContext(), in); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Si el correo está registrado recibirás un enlace para restablecer la contraseña"})
}

// DeleteAccount godoc
// @Summary      Eliminar la cuenta del usuario autenticado
// @Tags         cuentas
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/eliminar [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.accounts.DeleteAccount(c.UserContext(), GetUserID(c), c.Cookies(h.cookie.Name)); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.JSON(dto.MessageResponse{Mensaje: "Cuenta eliminada"})
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         cuentas
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/obtenerperfil [get]
func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	out, err := h.users.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Editar perfil
// @Tags         cuentas
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "nombre"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/editarperfil [put]
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.users.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UID godoc
// @Summary      Identidad de la sesión
// @Tags         cuentas
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.UIDResponse
// @Router       /auth/obteneruid [get]
func (h *AccountHandler) UID(c *fiber.Ctx) error {
	a, _ := GetAuth(c)
	return c.JSON(dto.UIDResponse{UID: a.UID(), Email: a.Email()})
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     CookieAuth
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /auth/obtenerusuarios [get]
func (h *AccountHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SetRole godoc
// @Summary      Asignar rol
// @Tags         usuarios
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "uid del usuario"
// @Param        body  body  dto.SetRoleRequest  true  "rol"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/usuario/{id} [put]
func (h *AccountHandler) SetRole(c *fiber.Ctx) error {
	var in dto.SetRoleRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.users.SetRole(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *AccountHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookie.MaxAge,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
}

func (h *AccountHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(1, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
}
