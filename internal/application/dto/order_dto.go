package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest línea del carrito tal como la envía la tienda.
type CartItemRequest struct {
	IDProducto     int64           `json:"idproducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	DetalleCamisa  *string         `json:"detalle_camisa,omitempty"`
	NombreProducto string          `json:"nombre_producto,omitempty"`
}

// CreateOrderRequest entrada de /agregarorden. Acepta userId o uid para el dueño.
type CreateOrderRequest struct {
	UserID    string            `json:"userId"`
	UID       string            `json:"uid"`
	CartItems []CartItemRequest `json:"cartItems"`
}

// Owner devuelve el dueño declarado en el cuerpo (vacío si no viene).
func (r CreateOrderRequest) Owner() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.UID
}

// CreateOrderResponse respuesta 201 de /agregarorden.
type CreateOrderResponse struct {
	Mensaje string `json:"mensaje"`
	OrdenID int64  `json:"orden_id"`
}

// OrderResponse orden con total.
type OrderResponse struct {
	IDOrden   int64           `json:"idorden"`
	UsuarioID string          `json:"usuario_id"`
	Fecha     time.Time       `json:"fecha"`
	Estado    string          `json:"estado"`
	Total     decimal.Decimal `json:"total"`
}

// OrderSummaryResponse orden en el listado administrativo.
type OrderSummaryResponse struct {
	IDOrden       int64           `json:"idorden"`
	Fecha         time.Time       `json:"fecha"`
	Estado        string          `json:"estado"`
	NombreUsuario string          `json:"nombre_usuario"`
	Email         string          `json:"email"`
	Total         decimal.Decimal `json:"total"`
}

// OrderListResponse envoltura del listado.
type OrderListResponse struct {
	Ordenes []OrderSummaryResponse `json:"ordenes"`
}

// PurchasedProductResponse línea comprada con nombre del producto.
type PurchasedProductResponse struct {
	NombreProducto string          `json:"nombre_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	DetalleCamisa  *string         `json:"detalle_camisa"`
}

// UpdateOrderStatusRequest entrada de PUT /orden/:idorden.
type UpdateOrderStatusRequest struct {
	Estado string `json:"estado" validate:"required,max=50"`
}

// LatestOrderResponse respuesta de /ultimaorden.
type LatestOrderResponse struct {
	IDOrden int64 `json:"idorden"`
}

// OrderLineRequest entrada para crear o modificar una línea (administración).
type OrderLineRequest struct {
	OrdenID        int64           `json:"orden_id" validate:"required,gt=0"`
	ProductoID     int64           `json:"producto_id" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	DetalleCamisa  *string         `json:"detalle_camisa"`
}

// OrderLineResponse salida de una línea.
type OrderLineResponse struct {
	IDDetalle      int64           `json:"iddetalle"`
	OrdenID        int64           `json:"orden_id"`
	ProductoID     int64           `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	DetalleCamisa  *string         `json:"detalle_camisa"`
}
