package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/orders"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/infrastructure/metrics"
)

// OrderCreator caso de uso de creación de órdenes.
type OrderCreator interface {
	Execute(ctx context.Context, callerUID string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

// OrderHandler órdenes de la tienda y sus líneas.
type OrderHandler struct {
	create OrderCreator
	orders *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(create OrderCreator, uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{create: create, orders: uc}
}

// Create godoc
// @Summary      Crear orden
// @Description  Cabecera y líneas en una transacción; la notificación por correo no bloquea la respuesta.
// @Tags         ordenes
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "userId y cartItems"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/agregarorden [post]
func (h *OrderHandler) Create(c *fiber.Ctx) (err error) {
	defer func() { metrics.RecordOrderOperation("create", err == nil) }()

	var in dto.CreateOrderRequest
	if perr := c.BodyParser(&in); perr != nil {
		return domain.ErrEmptyCart
	}
	out, err := h.create.Execute(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mine godoc
// @Summary      Órdenes del usuario autenticado
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /auth/misordenes [get]
func (h *OrderHandler) Mine(c *fiber.Ctx) error {
	out, err := h.orders.ListByUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /auth/ordenes [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.orders.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con total
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/ordenes/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.orders.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PurchasedProducts godoc
// @Summary      Productos comprados en una orden
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Param        idorden  path  int  true  "id de la orden"
// @Success      200      {array}  dto.PurchasedProductResponse
// @Router       /auth/ordenes/{idorden}/productos_comprados [get]
func (h *OrderHandler) PurchasedProducts(c *fiber.Ctx) error {
	id, err := paramID(c, "idorden")
	if err != nil {
		return err
	}
	out, err := h.orders.PurchasedProducts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una orden
// @Tags         ordenes
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        idorden  path  int                           true  "id de la orden"
// @Param        body     body  dto.UpdateOrderStatusRequest  true  "estado"
// @Success      200      {object}  dto.OrderResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /auth/orden/{idorden} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) (err error) {
	defer func() { metrics.RecordOrderOperation("update_status", err == nil) }()

	id, err := paramID(c, "idorden")
	if err != nil {
		return err
	}
	var in dto.UpdateOrderStatusRequest
	if err = parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.orders.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/eliminarorden/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) (err error) {
	defer func() { metrics.RecordOrderOperation("delete", err == nil) }()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.orders.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Orden eliminada"})
}

// Latest godoc
// @Summary      Último id de orden
// @Tags         ordenes
// @Security     CookieAuth
// @Produce      json
// @Success      200  {object}  dto.LatestOrderResponse
// @Router       /auth/ultimaorden [get]
func (h *OrderHandler) Latest(c *fiber.Ctx) error {
	out, err := h.orders.Latest(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListLines godoc
// @Summary      Listar líneas de orden
// @Description  Con ?orden_id= filtra por orden.
// @Tags         detalles
// @Security     CookieAuth
// @Produce      json
// @Param        orden_id  query  int  false  "id de la orden"
// @Success      200       {array}  dto.OrderLineResponse
// @Router       /auth/detalles [get]
func (h *OrderHandler) ListLines(c *fiber.Ctx) error {
	orderID := int64(c.QueryInt("orden_id", 0))
	if orderID < 0 {
		return domain.NewValidationError("orden_id", "id inválido")
	}
	out, err := h.orders.ListLines(c.UserContext(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetLine godoc
// @Summary      Obtener línea de orden
// @Tags         detalles
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id del detalle"
// @Success      200  {object}  dto.OrderLineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/detalles/{id} [get]
func (h *OrderHandler) GetLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.orders.GetLine(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar línea a una orden
// @Tags         detalles
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderLineRequest  true  "línea"
// @Success      201   {object}  dto.OrderLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/agregardetalle [post]
func (h *OrderHandler) AddLine(c *fiber.Ctx) error {
	var in dto.OrderLineRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.orders.AddLine(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLine godoc
// @Summary      Modificar línea de orden
// @Tags         detalles
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "id del detalle"
// @Param        body  body  dto.OrderLineRequest  true  "línea"
// @Success      200   {object}  dto.OrderLineResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/modificardetalle/{id} [put]
func (h *OrderHandler) UpdateLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.OrderLineRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.orders.UpdateLine(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteLine godoc
// @Summary      Eliminar línea de orden
// @Tags         detalles
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id del detalle"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/eliminardetalle/{id} [delete]
func (h *OrderHandler) DeleteLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.orders.DeleteLine(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Detalle eliminado"})
}
