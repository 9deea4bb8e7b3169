package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
)

// ProductHandler productos de la tienda.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         tienda
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /auth/tienda/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         tienda
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/tienda/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Description  JSON o multipart; en multipart la imagen va en el campo imagen.
// @Tags         tienda
// @Security     CookieAuth
// @Accept       json,mpfd
// @Produce      json
// @Param        body    body      dto.ProductRequest  true   "Datos del producto"
// @Param        imagen  formData  file                false  "imagen del producto"
// @Success      201     {object}  dto.ProductResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      415     {object}  dto.ErrorResponse
// @Router       /auth/tienda/agregarproducto [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	img, err := formFile(c, "imagen")
	if err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in, img)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar producto
// @Tags         tienda
// @Security     CookieAuth
// @Accept       json,mpfd
// @Produce      json
// @Param        id      path      int                 true   "ID del producto"
// @Param        body    body      dto.ProductRequest  true   "Datos del producto"
// @Param        imagen  formData  file                false  "imagen nueva"
// @Success      200     {object}  dto.ProductResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /auth/tienda/modificarproducto/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	img, err := formFile(c, "imagen")
	if err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in, img)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         tienda
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /auth/tienda/eliminarproducto/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto eliminado"})
}
