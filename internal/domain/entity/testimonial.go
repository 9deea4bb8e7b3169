package entity

import "time"

// Testimonial testimonio de un jugador, padre de familia o aliado.
type Testimonial struct {
	ID        int64
	Nombre    string
	Cargo     string
	Contenido string
	ImagenURL string
	Destacado bool
	CreatedAt time.Time
}

// TestimonialsHeader encabezado de la sección de testimonios (fila única).
type TestimonialsHeader struct {
	HeaderTitle string
	UpdatedAt   *time.Time
}

// DefaultTestimonialsHeader título cuando aún no se ha editado la sección.
const DefaultTestimonialsHeader = "Historias que inspiran."
