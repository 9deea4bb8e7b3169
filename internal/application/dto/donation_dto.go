package dto

import "time"

// DonationProductRequest entrada para artículos de donación.
type DonationProductRequest struct {
	Nombre      string `json:"nombre" form:"nombre" validate:"required,max=150"`
	Descripcion string `json:"descripcion" form:"descripcion"`
	Imagen      string `json:"imagen" form:"imagen" validate:"omitempty,url"`
	Estado      string `json:"estado" form:"estado" validate:"omitempty,max=30"`
}

// DonationProductResponse salida de un artículo de donación.
type DonationProductResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	Estado      string `json:"estado"`
}

// DonationRequest formulario público de donación.
type DonationRequest struct {
	Nombre      string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Telefono    string `json:"telefono" form:"telefono" validate:"required,max=30"`
	Correo      string `json:"correo" form:"correo" validate:"required,email"`
	Dia         string `json:"dia" form:"dia" validate:"required,fecha"`
	Horario     string `json:"horario" form:"horario" validate:"required,horario"`
	Descripcion string `json:"descripcion" form:"descripcion" validate:"required,max=2000"`
}

// DonationResponse salida de una solicitud de donación.
type DonationResponse struct {
	IDDonacion  int64     `json:"id_donacion"`
	Nombre      string    `json:"nombre"`
	Telefono    string    `json:"telefono"`
	Correo      string    `json:"correo"`
	Dia         string    `json:"dia"`
	Horario     string    `json:"horario"`
	Descripcion string    `json:"descripcion"`
	Estado      string    `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
}

// DonationStatusRequest entrada de PUT /donaciones/:id/estado.
type DonationStatusRequest struct {
	Estado string `json:"estado" validate:"required,max=30"`
}

// ContactFormRequest formulario público de contacto.
type ContactFormRequest struct {
	Nombre   string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Correo   string `json:"correo" form:"correo" validate:"required,email"`
	Telefono string `json:"telefono" form:"telefono" validate:"omitempty,max=30"`
	Asunto   string `json:"asunto" form:"asunto" validate:"omitempty,max=150"`
	Mensaje  string `json:"mensaje" form:"mensaje" validate:"required,max=4000"`
}
