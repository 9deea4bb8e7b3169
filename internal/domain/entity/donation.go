package entity

import "time"

// DonationStatusPendiente estado inicial de una solicitud de donación.
const DonationStatusPendiente = "Pendiente"

// DonationProduct artículo que el club necesita (equipo, uniformes...).
type DonationProduct struct {
	ID          int64
	Nombre      string
	Descripcion string
	Imagen      string
	Estado      string
}

// Donation solicitud de donación enviada desde el formulario público.
type Donation struct {
	ID          int64
	Nombre      string
	Telefono    string
	Correo      string
	Dia         time.Time // sólo fecha
	Horario     string    // HH:MM
	Descripcion string
	Estado      string
	CreatedAt   time.Time
}
