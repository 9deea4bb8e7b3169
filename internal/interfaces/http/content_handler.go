package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
)

// ContentHandler calendario, noticias, testimonios y plantel.
type ContentHandler struct {
	events       *usecase.EventUseCase
	news         *usecase.NewsUseCase
	testimonials *usecase.TestimonialUseCase
	players      *usecase.PlayerUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(events *usecase.EventUseCase, news *usecase.NewsUseCase, testimonials *usecase.TestimonialUseCase, players *usecase.PlayerUseCase) *ContentHandler {
	return &ContentHandler{events: events, news: news, testimonials: testimonials, players: players}
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos
// ──────────────────────────────────────────────────────────────────────────────

// UpcomingEvents godoc
// @Summary      Próximos eventos
// @Tags         eventos
// @Produce      json
// @Success      200  {array}  dto.EventResponse
// @Router       /auth/obtenereventos [get]
func (h *ContentHandler) UpcomingEvents(c *fiber.Ctx) error {
	out, err := h.events.Upcoming(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateEvent godoc
// @Summary      Registrar evento
// @Tags         eventos
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EventRequest  true  "evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/registrarevento [post]
func (h *ContentHandler) CreateEvent(c *fiber.Ctx) error {
	var in dto.EventRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.events.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEvent godoc
// @Summary      Modificar evento
// @Tags         eventos
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "id del evento"
// @Param        body  body  dto.EventRequest  true  "evento"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/evento/{id} [put]
func (h *ContentHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.EventRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.events.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteEvent godoc
// @Summary      Eliminar evento
// @Tags         eventos
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id del evento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/evento/{id} [delete]
func (h *ContentHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.events.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Evento eliminado"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Noticias
// ──────────────────────────────────────────────────────────────────────────────

// ListNews godoc
// @Summary      Listar noticias
// @Tags         noticias
// @Produce      json
// @Success      200  {object}  dto.NewsListResponse
// @Router       /auth/noticias [get]
func (h *ContentHandler) ListNews(c *fiber.Ctx) error {
	out, err := h.news.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetNews godoc
// @Summary      Obtener noticia
// @Tags         noticias
// @Produce      json
// @Param        id   path  int  true  "id de la noticia"
// @Success      200  {object}  dto.NewsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/noticias/{id} [get]
func (h *ContentHandler) GetNews(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.news.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateNews godoc
// @Summary      Publicar noticia
// @Description  El autor es el usuario autenticado.
// @Tags         noticias
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewsRequest  true  "noticia"
// @Success      201   {object}  dto.NewsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/agregarnoticia [post]
func (h *ContentHandler) CreateNews(c *fiber.Ctx) error {
	var in dto.NewsRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.news.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateNews godoc
// @Summary      Modificar noticia
// @Tags         noticias
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "id de la noticia"
// @Param        body  body  dto.NewsRequest  true  "noticia"
// @Success      200   {object}  dto.NewsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/modificarnoticia/{id} [put]
func (h *ContentHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.NewsRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.news.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteNews godoc
// @Summary      Eliminar noticia
// @Tags         noticias
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id de la noticia"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/eliminarnoticia/{id} [delete]
func (h *ContentHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.news.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Noticia eliminada"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Testimonios
// ──────────────────────────────────────────────────────────────────────────────

// ListTestimonials godoc
// @Summary      Listar testimonios
// @Tags         testimonios
// @Produce      json
// @Success      200  {array}  dto.TestimonialResponse
// @Router       /auth/obtenertestimonios [get]
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	out, err := h.testimonials.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// FeaturedTestimonial godoc
// @Summary      Testimonio destacado
// @Tags         testimonios
// @Produce      json
// @Success      200  {object}  dto.TestimonialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/testimonios/destacado [get]
func (h *ContentHandler) FeaturedTestimonial(c *fiber.Ctx) error {
	out, err := h.testimonials.Featured(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateTestimonial godoc
// @Summary      Registrar testimonio
// @Tags         testimonios
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TestimonialRequest  true  "testimonio"
// @Success      201   {object}  dto.TestimonialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/registrartestimonio [post]
func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var in dto.TestimonialRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.testimonials.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTestimonial godoc
// @Summary      Modificar testimonio
// @Tags         testimonios
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "id del testimonio"
// @Param        body  body  dto.TestimonialRequest  true  "testimonio"
// @Success      200   {object}  dto.TestimonialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/testimonio/{id} [put]
func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.TestimonialRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.testimonials.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// FeatureTestimonial godoc
// @Summary      Destacar testimonio
// @Description  El indicado queda como único destacado.
// @Tags         testimonios
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FeatureTestimonialRequest  true  "id"
// @Success      200   {object}  dto.TestimonialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/testimonios/destacado [put]
func (h *ContentHandler) FeatureTestimonial(c *fiber.Ctx) error {
	var in dto.FeatureTestimonialRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.testimonials.SetFeatured(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteTestimonial godoc
// @Summary      Eliminar testimonio
// @Tags         testimonios
// @Security     CookieAuth
// @Produce      json
// @Param        id   path  int  true  "id del testimonio"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/testimonio/{id} [delete]
func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.testimonials.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Testimonio eliminado"})
}

// TestimonialsHeader godoc
// @Summary      Encabezado de la sección de testimonios
// @Tags         testimonios
// @Produce      json
// @Success      200  {object}  dto.TestimonialsHeaderResponse
// @Router       /auth/testimoniossite [get]
func (h *ContentHandler) TestimonialsHeader(c *fiber.Ctx) error {
	out, err := h.testimonials.Header(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateTestimonialsHeader godoc
// @Summary      Editar encabezado de testimonios
// @Tags         testimonios
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TestimonialsHeaderRequest  true  "header_title"
// @Success      200   {object}  dto.TestimonialsHeaderResponse
// @Router       /auth/testimoniossite [put]
func (h *ContentHandler) UpdateTestimonialsHeader(c *fiber.Ctx) error {
	var in dto.TestimonialsHeaderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.testimonials.UpdateHeader(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Players godoc
// @Summary      Plantel
// @Tags         jugadores
// @Produce      json
// @Success      200  {object}  dto.PlayerListResponse
// @Router       /auth/jugadores [get]
func (h *ContentHandler) Players(c *fiber.Ctx) error {
	out, err := h.players.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
