package entity

import "time"

// LiveStream transmisión en vivo publicada en el sitio.
type LiveStream struct {
	ID             int64
	Titulo         string
	URL            string
	Descripcion    string
	MostrarAnuncio bool
	UpdatedAt      time.Time
}

// BoardMember integrante de la junta directiva.
type BoardMember struct {
	ID        int64
	Nombre    string
	Cargo     string
	ImagenURL string
	Orden     int
}

// Category tarjeta de una categoría del club (infantil, juvenil, mayor...).
type Category struct {
	ID          int64
	Slug        string
	TitleText   string
	Image       string
	Tipo        string
	Descripcion string
}

// CategoriesSite encabezado y carrusel de la página de categorías (fila única).
type CategoriesSite struct {
	HeaderTitle      string
	HeaderImg        string
	CarruselTitle    string
	CarruselSubtitle string
	CarruselImage    string
	UpdatedAt        time.Time
}
