package entity

import "time"

// Event evento del calendario del club.
type Event struct {
	ID          int64
	Nombre      string
	Descripcion string
	FechaInicio time.Time
	FechaFinal  *time.Time
	Habilitado  bool
	ImgURL      string
}
