package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeValidation      = "VALIDATION"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnsupportedType = "UNSUPPORTED_MEDIA_TYPE"
	CodeTooLarge        = "PAYLOAD_TOO_LARGE"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL"
)

const msgInternal = "Error interno del servidor"

// apiError respuesta HTTP ya decidida por un middleware o handler.
// cause sólo se registra en el log.
type apiError struct {
	status  int
	code    string
	mensaje string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.mensaje + ": " + e.cause.Error()
	}
	return e.mensaje
}

func (e *apiError) Unwrap() error { return e.cause }

func newAPIError(status int, code, mensaje string) *apiError {
	return &apiError{status: status, code: code, mensaje: mensaje}
}

// ErrorHandler frontera única de errores: traduce errores de dominio a la
// taxonomía HTTP y registra el detalle interno sólo en el servidor.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		log.ForStatus(status).Err(err).
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("petición fallida")
		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, dto.ErrorResponse) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, dto.ErrorResponse{Code: ae.code, Mensaje: ae.mensaje}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fiberErrorBody(fe.Code)
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Mensaje: ve.Error()}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Mensaje: nf.Message}
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Mensaje: domain.ErrEmptyCart.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Mensaje: "Datos inválidos"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Mensaje: "Credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Mensaje: "No autorizado"}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Mensaje: "Usuario no encontrado"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Mensaje: "Recurso no encontrado"}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeConflict, Mensaje: "El email ya está registrado"}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeConflict, Mensaje: "La operación entra en conflicto con los datos actuales"}
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return fiber.StatusUnsupportedMediaType, dto.ErrorResponse{Code: CodeUnsupportedType, Mensaje: "Tipo de archivo no permitido"}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Mensaje: msgInternal}
}

func fiberErrorBody(status int) dto.ErrorResponse {
	switch status {
	case fiber.StatusNotFound:
		return dto.ErrorResponse{Code: CodeNotFound, Mensaje: "Ruta no encontrada"}
	case fiber.StatusMethodNotAllowed:
		return dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Mensaje: "Método no permitido"}
	case fiber.StatusRequestEntityTooLarge:
		return dto.ErrorResponse{Code: CodeTooLarge, Mensaje: "El cuerpo de la petición es demasiado grande"}
	case fiber.StatusUnsupportedMediaType:
		return dto.ErrorResponse{Code: CodeUnsupportedType, Mensaje: "Tipo de contenido no soportado"}
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return dto.ErrorResponse{Code: CodeValidation, Mensaje: "Cuerpo inválido"}
	case fiber.StatusTooManyRequests:
		return dto.ErrorResponse{Code: CodeRateLimited, Mensaje: "Demasiadas solicitudes"}
	}
	if status >= fiber.StatusInternalServerError {
		return dto.ErrorResponse{Code: CodeInternal, Mensaje: msgInternal}
	}
	return dto.ErrorResponse{Code: "ERROR", Mensaje: "Solicitud rechazada"}
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("requestid").(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
