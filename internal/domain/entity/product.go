package entity

import (
	"github.com/shopspring/decimal"
)

// Estados de producto en la tienda.
const (
	ProductStatusDisponible = "disponible"
	ProductStatusAgotado    = "agotado"
)

// Product producto de la tienda del club.
type Product struct {
	ID             int64
	Nombre         string
	Descripcion    string
	PrecioUnitario decimal.Decimal
	Cantidad       int // stock informativo; las órdenes no lo descuentan
	Talla          string
	Estado         string
	ImageURL       string
}
