package dto

import "time"

// SignUpRequest entrada de registro (el password lo gestiona el proveedor de identidad).
type SignUpRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInRequest entrada de inicio de sesión.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInResult resultado interno del login; el token sólo viaja en la cookie.
type SignInResult struct {
	UID     string
	IDToken string
}

// SignInResponse respuesta de /signin.
type SignInResponse struct {
	Mensaje string `json:"mensaje"`
	UID     string `json:"uid"`
}

// ResetPasswordRequest entrada de /restablecer.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest entrada de /editarperfil.
type UpdateProfileRequest struct {
	Nombre string `json:"nombre" validate:"required,max=120"`
}

// SetRoleRequest entrada de PUT /usuario/:id.
type SetRoleRequest struct {
	Rol string `json:"rol" validate:"required,oneof=admin admin-calendario cliente"`
}

// CaptchaRequest entrada de /verificar.
type CaptchaRequest struct {
	Token string `json:"token" validate:"required"`
}

// CaptchaResponse resultado de la verificación de reCAPTCHA.
type CaptchaResponse struct {
	Success bool `json:"success"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// SignUpResponse respuesta de /signup.
type SignUpResponse struct {
	Mensaje string `json:"mensaje"`
	UID     string `json:"uid"`
}

// UIDResponse respuesta de /obteneruid.
type UIDResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}
