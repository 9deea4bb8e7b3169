package dto

import "time"

// LiveStreamRequest entrada de POST /registrarenvivo y PUT /video/:id.
type LiveStreamRequest struct {
	Titulo         string `json:"titulo" form:"titulo" validate:"required,max=200"`
	URL            string `json:"url" form:"url" validate:"required,url"`
	Descripcion    string `json:"descripcion" form:"descripcion"`
	MostrarAnuncio bool   `json:"mostrar_anuncio" form:"mostrar_anuncio"`
}

// AnnouncementRequest entrada de PATCH /envivo/mostrar-anuncio. Sin id aplica a la transmisión vigente.
type AnnouncementRequest struct {
	MostrarAnuncio *bool `json:"mostrar_anuncio" validate:"required"`
	ID             int64 `json:"id" validate:"omitempty,gt=0"`
}

// LiveStreamResponse salida de una transmisión.
type LiveStreamResponse struct {
	ID             int64     `json:"id"`
	Titulo         string    `json:"titulo"`
	URL            string    `json:"url"`
	Descripcion    string    `json:"descripcion"`
	MostrarAnuncio bool      `json:"mostrar_anuncio"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BoardMemberRequest entrada para agregar o editar un miembro de la junta.
type BoardMemberRequest struct {
	Nombre    string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Cargo     string `json:"cargo" form:"cargo" validate:"required,max=120"`
	ImagenURL string `json:"imagen_url" form:"imagen_url" validate:"omitempty,url"`
	Orden     int    `json:"orden" form:"orden" validate:"gte=0"`
}

// BoardMemberResponse salida de un miembro.
type BoardMemberResponse struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Cargo     string `json:"cargo"`
	ImagenURL string `json:"imagen_url"`
	Orden     int    `json:"orden"`
}

// BoardResponse envoltura del listado.
type BoardResponse struct {
	Miembros []BoardMemberResponse `json:"miembros"`
}

// CategoryRequest entrada de PUT /categorias/:id. image es una URL ya subida.
type CategoryRequest struct {
	TitleText   string `json:"titletext" validate:"required,max=200"`
	Tipo        string `json:"tipo" validate:"max=64"`
	Descripcion string `json:"descripcion"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Slugs       string `json:"slugs"`
	TitleText   string `json:"titletext"`
	Image       string `json:"image"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
}

// CategoryListResponse envoltura de GET /categorias.
type CategoryListResponse struct {
	Categorias []CategoryResponse `json:"categorias"`
}

// CategoryUpdatedResponse envoltura de PUT /categorias/:id.
type CategoryUpdatedResponse struct {
	Categoria CategoryResponse `json:"categoria"`
}

// CategoriesHeaderRequest actualización parcial del encabezado; lo ausente conserva su valor.
type CategoriesHeaderRequest struct {
	HeaderTitle *string `json:"header_title" validate:"omitempty,max=200"`
	HeaderImg   *string `json:"header_img" validate:"omitempty,url"`
}

// CategoriesCarouselRequest actualización parcial del carrusel.
type CategoriesCarouselRequest struct {
	CarruselTitle    *string `json:"carrusel_title" validate:"omitempty,max=200"`
	CarruselSubtitle *string `json:"carrusel_subtitle" validate:"omitempty,max=500"`
	CarruselImage    *string `json:"carrusel_image" validate:"omitempty,url"`
}

// CategoriesHeaderResponse encabezado de la página de categorías.
type CategoriesHeaderResponse struct {
	HeaderTitle string `json:"header_title"`
	HeaderImg   string `json:"header_img"`
}

// CategoriesCarouselResponse carrusel de la página de categorías.
type CategoriesCarouselResponse struct {
	CarruselTitle    string `json:"carrusel_title"`
	CarruselSubtitle string `json:"carrusel_subtitle"`
	CarruselImage    string `json:"carrusel_image"`
}

// CategoriesSiteResponse fila completa de categorias_site.
type CategoriesSiteResponse struct {
	CategoriesHeaderResponse
	CategoriesCarouselResponse
	UpdatedAt time.Time `json:"updated_at"`
}

// DonationReceiptRequest campos de texto del multipart de POST /donaciones/comprobante.
type DonationReceiptRequest struct {
	Monto      string `form:"monto" validate:"max=40"`
	Comentario string `form:"comentario" validate:"max=1000"`
}
