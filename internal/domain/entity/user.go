package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin           = "admin"
	RoleAdminCalendario = "admin-calendario"
	RoleCliente         = "cliente"
)

// Roles vocabulario cerrado de roles; el resolver de roles nunca inventa otros.
var Roles = []string{RoleAdmin, RoleAdminCalendario, RoleCliente}

// IsValidRole indica si r pertenece al vocabulario de roles.
func IsValidRole(r string) bool {
	return Contains(Roles, r)
}

// User usuario registrado en la aplicación. ID es el UID emitido por el proveedor de identidad.
type User struct {
	ID        string
	Nombre    string
	Email     string // único
	Rol       string // admin, admin-calendario, cliente
	CreatedAt time.Time
}

// Contact datos mínimos para notificar a un usuario.
type Contact struct {
	Nombre string
	Email  string
}
