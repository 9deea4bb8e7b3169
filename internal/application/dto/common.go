package dto

// ErrorResponse cuerpo de error HTTP. Mensaje nunca contiene detalle interno.
type ErrorResponse struct {
	Code    string `json:"code"`
	Mensaje string `json:"mensaje"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// IDResponse respuesta de creación con id numérico.
type IDResponse struct {
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id"`
}
