package entity

import "time"

// News noticia publicada en el sitio.
type News struct {
	ID               int64
	Titulo           string
	Contenido        string
	ImagenURL        string
	FechaPublicacion time.Time
	AutorID          *string
}
