package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPendiente estado inicial de toda orden.
const OrderStatusPendiente = "Pendiente"

// Order cabecera de una orden de la tienda.
type Order struct {
	ID     int64
	UserID string
	Fecha  time.Time
	Estado string // texto libre del flujo: Pendiente, Pagada, Entregada...
}

// OrderLine línea de detalle. PrecioUnitario se captura al momento de la compra
// y no se vuelve a leer del producto.
type OrderLine struct {
	ID             int64
	OrderID        int64
	ProductID      int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	DetalleCamisa  *string // personalización: "Talla: XL, Nombre: Pérez Numero: 7"
}

// NewOrderLine valida y construye una línea de detalle.
func NewOrderLine(orderID, productID int64, cantidad int, precio decimal.Decimal, detalle *string) (OrderLine, error) {
	if productID <= 0 {
		return OrderLine{}, errors.New("idproducto inválido")
	}
	if cantidad <= 0 {
		return OrderLine{}, errors.New("la cantidad debe ser un entero positivo")
	}
	if precio.IsNegative() {
		return OrderLine{}, errors.New("el precio unitario no puede ser negativo")
	}
	return OrderLine{
		OrderID:        orderID,
		ProductID:      productID,
		Cantidad:       cantidad,
		PrecioUnitario: precio,
		DetalleCamisa:  detalle,
	}, nil
}

// Subtotal cantidad * precio unitario.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// OrderSummary orden con los datos del usuario que la creó (listado admin).
type OrderSummary struct {
	ID            int64
	Fecha         time.Time
	Estado        string
	NombreUsuario string
	Email         string
	Total         decimal.Decimal
}

// OrderWithTotal orden con el total calculado desde sus líneas.
type OrderWithTotal struct {
	Order
	Total decimal.Decimal
}

// PurchasedProduct línea de una orden unida al nombre del producto.
type PurchasedProduct struct {
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
	DetalleCamisa  *string
}
