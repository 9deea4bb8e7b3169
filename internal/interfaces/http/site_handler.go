package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
)

// SiteHandler textos, imágenes y bloque de contacto editables.
type SiteHandler struct {
	uc *usecase.SiteUseCase
}

// NewSiteHandler construye el handler.
func NewSiteHandler(uc *usecase.SiteUseCase) *SiteHandler {
	return &SiteHandler{uc: uc}
}

// Texts godoc
// @Summary      Textos de una sección
// @Tags         sitio
// @Produce      json
// @Param        seccion  path  string  true  "home, nuestroequipo, tienda, aliados, historia"
// @Success      200      {object}  dto.SiteTextsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /auth/{seccion}/textos [get]
func (h *SiteHandler) Texts(c *fiber.Ctx) error {
	out, err := h.uc.Texts(c.UserContext(), c.Params("seccion"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Text godoc
// @Summary      Texto por clave
// @Tags         sitio
// @Produce      json
// @Param        seccion  path  string  true  "sección"
// @Param        clave    path  string  true  "clave"
// @Success      200      {object}  dto.SiteTextResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /auth/{seccion}/textos/{clave} [get]
func (h *SiteHandler) Text(c *fiber.Ctx) error {
	out, err := h.uc.Text(c.UserContext(), c.Params("seccion"), c.Params("clave"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpsertText godoc
// @Summary      Guardar texto
// @Tags         sitio
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        seccion  path  string               true  "sección"
// @Param        body     body  dto.SiteTextRequest  true  "clave, valor"
// @Success      200      {object}  dto.SiteTextResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /auth/{seccion}/textos [put]
func (h *SiteHandler) UpsertText(c *fiber.Ctx) error {
	var in dto.SiteTextRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpsertText(c.UserContext(), c.Params("seccion"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpsertTexts godoc
// @Summary      Guardar varios textos
// @Description  200 si todas las claves se guardaron, 207 con el detalle si alguna falló.
// @Tags         sitio
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        seccion  path  string                   true  "sección"
// @Param        body     body  dto.SiteTextBulkRequest  true  "textos"
// @Success      200      {object}  dto.SiteTextBulkResponse
// @Success      207      {object}  dto.SiteTextBulkResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /auth/{seccion}/textos/bulk [put]
func (h *SiteHandler) UpsertTexts(c *fiber.Ctx) error {
	var in dto.SiteTextBulkRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpsertTexts(c.UserContext(), c.Params("seccion"), in)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if !out.Success {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(out)
}

// Images godoc
// @Summary      Imágenes de una sección
// @Tags         sitio
// @Produce      json
// @Param        seccion  path  string  true  "sección"
// @Success      200      {array}  dto.SiteImageResponse
// @Router       /auth/{seccion}/images [get]
func (h *SiteHandler) Images(c *fiber.Ctx) error {
	out, err := h.uc.Images(c.UserContext(), c.Params("seccion"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpsertImage godoc
// @Summary      Guardar imagen de una sección
// @Description  JSON con url ya subida, o multipart con el archivo en file.
// @Tags         sitio
// @Security     CookieAuth
// @Accept       json,mpfd
// @Produce      json
// @Param        seccion  path      string                true   "sección"
// @Param        body     body      dto.SiteImageRequest  true   "type, url"
// @Param        file     formData  file                  false  "imagen"
// @Success      200      {object}  dto.SiteImageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      415      {object}  dto.ErrorResponse
// @Router       /auth/{seccion}/images [put]
func (h *SiteHandler) UpsertImage(c *fiber.Ctx) error {
	var in dto.SiteImageRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	file, err := formFile(c, "file")
	if err != nil {
		return err
	}
	out, err := h.uc.UpsertImage(c.UserContext(), c.Params("seccion"), in, file)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Contact godoc
// @Summary      Bloque de contacto
// @Tags         sitio
// @Produce      json
// @Success      200  {object}  dto.ContactInfoResponse
// @Router       /auth/contacto [get]
func (h *SiteHandler) Contact(c *fiber.Ctx) error {
	out, err := h.uc.Contact(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateContact godoc
// @Summary      Editar bloque de contacto
// @Tags         sitio
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactInfoRequest  true  "contacto"
// @Success      200   {object}  dto.ContactInfoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/contacto [put]
func (h *SiteHandler) UpdateContact(c *fiber.Ctx) error {
	var in dto.ContactInfoRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateContact(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
