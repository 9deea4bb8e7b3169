package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
)

// FormHandler formularios públicos (donación, contacto, reCAPTCHA) y artículos para donar.
type FormHandler struct {
	donations *usecase.DonationUseCase
	contact   *usecase.ContactUseCase
}

// NewFormHandler construye el handler.
func NewFormHandler(donations *usecase.DonationUseCase, contact *usecase.ContactUseCase) *FormHandler {
	return &FormHandler{donations: donations, contact: contact}
}

// ListDonationProducts godoc
// @Summary      Artículos para donar
// @Tags         donaciones
// @Produce      json
// @Success      200  {array}  dto.DonationProductResponse
// @Router       /auth/donaciones/productos [get]
func (h *FormHandler) ListDonationProducts(c *fiber.Ctx) error {
	out, err := h.donations.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateDonationProduct godoc
// @Summary      Publicar artículo para donar
// @Tags         donaciones
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DonationProductRequest  true  "artículo"
// @Success      201   {object}  dto.DonationProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/donaciones/productos [post]
func (h *FormHandler) CreateDonationProduct(c *fiber.Ctx) error {
	var in dto.DonationProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.donations.CreateProduct(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDonationProduct godoc
// @Summary      Modificar artículo para donar
// @Tags         donaciones
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "id"
// @Param        body  body  dto.DonationProductRequest  true  "artículo"
// @Success      200   {object}  dto.DonationProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/donaciones/productos/{id} [put]
func (h *FormHandler) UpdateDonationProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.DonationProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.donations.UpdateProduct(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteDonationProduct godoc
// @Summary      Eliminar artículo para donar
// @Tags         donaciones
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id"
// @Success      200  {object}  dto.DonationProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/donaciones/productos/{id} [delete]
func (h *FormHandler) DeleteDonationProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.donations.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RegisterDonation godoc
// @Summary      Registrar solicitud de donación
// @Description  Avisa por correo a la organización y al donante sin esperar el envío.
// @Tags         donaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DonationRequest  true  "solicitud"
// @Success      201   {object}  dto.DonationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/registrardonacion [post]
func (h *FormHandler) RegisterDonation(c *fiber.Ctx) error {
	var in dto.DonationRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.donations.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDonations godoc
// @Summary      Listar solicitudes de donación
// @Tags         donaciones
// @Security     CookieAuth
// @Produce      json
// @Success      200  {array}  dto.DonationResponse
// @Router       /auth/donaciones [get]
func (h *FormHandler) ListDonations(c *fiber.Ctx) error {
	out, err := h.donations.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateDonationStatus godoc
// @Summary      Cambiar estado de una solicitud de donación
// @Tags         donaciones
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "id_donacion"
// @Param        body  body  dto.DonationStatusRequest  true  "estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/donaciones/{id}/estado [put]
func (h *FormHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.DonationStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.donations.UpdateStatus(c.UserContext(), id, in); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Estado actualizado"})
}

// SubmitContactForm godoc
// @Summary      Enviar formulario de contacto
// @Tags         contacto
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactFormRequest  true  "mensaje"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /auth/registrarformulario [post]
func (h *FormHandler) SubmitContactForm(c *fiber.Ctx) error {
	var in dto.ContactFormRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.contact.Submit(c.UserContext(), in); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Formulario enviado correctamente"})
}

// VerifyCaptcha godoc
// @Summary      Verificar reCAPTCHA
// @Tags         contacto
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CaptchaRequest  true  "token"
// @Success      200   {object}  dto.CaptchaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/verificar [post]
func (h *FormHandler) VerifyCaptcha(c *fiber.Ctx) error {
	var in dto.CaptchaRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.contact.VerifyCaptcha(c.UserContext(), in, c.IP())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ReceiptHandler comprobantes de donaciones monetarias.
type ReceiptHandler struct {
	uc *usecase.DonationReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.DonationReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Send godoc
// @Summary      Enviar comprobante de donación
// @Description  Reenvía el comprobante (imagen o PDF) a la administración y agradece al donante.
// @Tags         donaciones
// @Security     CookieAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        comprobante  formData  file    true   "comprobante"
// @Param        monto        formData  string  false  "monto en lempiras"
// @Param        comentario   formData  string  false  "comentario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /auth/donaciones/comprobante [post]
func (h *ReceiptHandler) Send(c *fiber.Ctx) error {
	var in dto.DonationReceiptRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	f, err := formFile(c, "comprobante")
	if err != nil {
		return err
	}
	out, err := h.uc.Send(c.UserContext(), GetUserID(c), in, f)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
