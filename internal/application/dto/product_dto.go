package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o modificar un producto de la tienda.
// Llega como JSON o como multipart (los campos de formulario usan los mismos nombres).
type ProductRequest struct {
	NombreProducto string          `json:"nombre_producto" form:"nombre_producto" validate:"required,max=150"`
	Descripcion    string          `json:"descripcion" form:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" form:"precio_unitario"`
	Cantidad       int             `json:"cantidad" form:"cantidad" validate:"gte=0"`
	Talla          string          `json:"talla" form:"talla" validate:"max=20"`
	Estado         string          `json:"estado" form:"estado" validate:"omitempty,oneof=disponible agotado"`
	ImageURL       string          `json:"image_url" form:"image_url" validate:"omitempty,url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	IDProducto     int64           `json:"idproducto"`
	NombreProducto string          `json:"nombre_producto"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       int             `json:"cantidad"`
	Talla          string          `json:"talla"`
	Estado         string          `json:"estado"`
	ImageURL       string          `json:"image_url"`
}

// ProductListResponse envoltura del listado.
type ProductListResponse struct {
	Productos []ProductResponse `json:"productos"`
}
