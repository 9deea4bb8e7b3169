package dto

import "time"

// EventRequest entrada para registrar o modificar un evento. Fechas RFC3339 o YYYY-MM-DD.
type EventRequest struct {
	Nombre      string `json:"nombre" form:"nombre" validate:"required,max=150"`
	Descripcion string `json:"descripcion" form:"descripcion"`
	FechaInicio string `json:"fecha_inicio" form:"fecha_inicio" validate:"required"`
	FechaFinal  string `json:"fecha_final" form:"fecha_final"`
	Habilitado  *bool  `json:"ishabilitado" form:"ishabilitado"`
	ImgURL      string `json:"img_url" form:"img_url" validate:"omitempty,url"`
}

// EventResponse salida de un evento.
type EventResponse struct {
	ID          int64      `json:"id"`
	Nombre      string     `json:"nombre"`
	Descripcion string     `json:"descripcion"`
	FechaInicio time.Time  `json:"fecha_inicio"`
	FechaFinal  *time.Time `json:"fecha_final"`
	Habilitado  bool       `json:"ishabilitado"`
	ImgURL      string     `json:"img_url"`
}

// NewsRequest entrada para crear o modificar una noticia.
type NewsRequest struct {
	Titulo    string `json:"titulo" form:"titulo" validate:"required,max=200"`
	Contenido string `json:"contenido" form:"contenido" validate:"required"`
	ImagenURL string `json:"imagen_url" form:"imagen_url" validate:"omitempty,url"`
	Fecha     string `json:"fecha" form:"fecha"`
}

// NewsResponse salida de una noticia.
type NewsResponse struct {
	ID               int64     `json:"id"`
	Titulo           string    `json:"titulo"`
	Contenido        string    `json:"contenido"`
	ImagenURL        string    `json:"imagen_url"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`
	AutorID          *string   `json:"autor_id"`
}

// NewsListResponse envoltura del listado.
type NewsListResponse struct {
	Noticias []NewsResponse `json:"noticias"`
}

// TestimonialRequest entrada para crear o modificar un testimonio.
type TestimonialRequest struct {
	Nombre    string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Cargo     string `json:"cargo" form:"cargo" validate:"max=120"`
	Contenido string `json:"contenido" form:"contenido" validate:"required,max=2000"`
	ImagenURL string `json:"imagen_url" form:"imagen_url" validate:"omitempty,url"`
}

// FeatureTestimonialRequest entrada de PUT /testimonios/destacado.
type FeatureTestimonialRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// TestimonialResponse salida de un testimonio.
type TestimonialResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Cargo     string    `json:"cargo"`
	Contenido string    `json:"contenido"`
	ImagenURL string    `json:"imagen_url"`
	Destacado bool      `json:"destacado"`
	CreatedAt time.Time `json:"created_at"`
}

// TestimonialsHeaderRequest entrada de PUT /testimoniossite.
type TestimonialsHeaderRequest struct {
	HeaderTitle string `json:"header_title" validate:"required,max=200"`
}

// TestimonialsHeaderResponse encabezado de la sección.
type TestimonialsHeaderResponse struct {
	HeaderTitle string     `json:"header_title"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// PlayerResponse salida de un jugador.
type PlayerResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Numero    *int   `json:"numero"`
	Posicion  string `json:"posicion"`
	Categoria string `json:"categoria"`
	FotoURL   string `json:"foto_url"`
}

// PlayerListResponse envoltura del listado.
type PlayerListResponse struct {
	Jugadores []PlayerResponse `json:"jugadores"`
}
