package entity

// Player jugador del club (listado de estadísticas).
type Player struct {
	ID        int64
	Nombre    string
	Numero    *int
	Posicion  string
	Categoria string
	FotoURL   string
}
