package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
)

// ClubHandler transmisión en vivo, junta directiva y categorías.
type ClubHandler struct {
	live       *usecase.LiveStreamUseCase
	board      *usecase.BoardUseCase
	categories *usecase.CategoryUseCase
}

// NewClubHandler construye el handler.
func NewClubHandler(live *usecase.LiveStreamUseCase, board *usecase.BoardUseCase, categories *usecase.CategoryUseCase) *ClubHandler {
	return &ClubHandler{live: live, board: board, categories: categories}
}

// ──────────────────────────────────────────────────────────────────────────────
// En vivo
// ──────────────────────────────────────────────────────────────────────────────

// CreateLiveStream godoc
// @Summary      Registrar transmisión en vivo
// @Tags         envivo
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiveStreamRequest  true  "transmisión"
// @Success      201   {object}  dto.LiveStreamResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/registrarenvivo [post]
func (h *ClubHandler) CreateLiveStream(c *fiber.Ctx) error {
	var in dto.LiveStreamRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.live.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CurrentLiveStream godoc
// @Summary      Transmisión vigente
// @Tags         envivo
// @Produce      json
// @Success      200  {object}  dto.LiveStreamResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /auth/obtenerenvivo [get]
func (h *ClubHandler) CurrentLiveStream(c *fiber.Ctx) error {
	out, err := h.live.Current(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateLiveStream godoc
// @Summary      Modificar transmisión
// @Tags         envivo
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id de la transmisión"
// @Param        body  body  dto.LiveStreamRequest  true  "transmisión"
// @Success      200   {object}  dto.LiveStreamResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/video/{id} [put]
func (h *ClubHandler) UpdateLiveStream(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.LiveStreamRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.live.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SetAnnouncement godoc
// @Summary      Mostrar u ocultar el anuncio de la transmisión
// @Tags         envivo
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnnouncementRequest  true  "bandera"
// @Success      200   {object}  dto.LiveStreamResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/envivo/mostrar-anuncio [patch]
func (h *ClubHandler) SetAnnouncement(c *fiber.Ctx) error {
	var in dto.AnnouncementRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.live.SetAnnouncement(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Junta directiva
// ──────────────────────────────────────────────────────────────────────────────

// Board godoc
// @Summary      Junta directiva
// @Tags         junta
// @Produce      json
// @Success      200  {object}  dto.BoardResponse
// @Router       /auth/junta-directiva [get]
func (h *ClubHandler) Board(c *fiber.Ctx) error {
	out, err := h.board.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ClubHandler) CreateBoardMember(c *fiber.Ctx) error {
	var in dto.BoardMemberRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.board.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ClubHandler) UpdateBoardMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.BoardMemberRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.board.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ClubHandler) DeleteBoardMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.board.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Miembro eliminado"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

// Categories godoc
// @Summary      Categorías del club
// @Tags         categorias
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /auth/categorias [get]
func (h *ClubHandler) Categories(c *fiber.Ctx) error {
	out, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Modificar categoría
// @Tags         categorias
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "categoría"
// @Success      200   {object}  dto.CategoryUpdatedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/categorias/{id} [put]
func (h *ClubHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.categories.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ClubHandler) CategoriesHeader(c *fiber.Ctx) error {
	out, err := h.categories.Header(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ClubHandler) CategoriesCarousel(c *fiber.Ctx) error {
	out, err := h.categories.Carousel(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ClubHandler) CategoriesSite(c *fiber.Ctx) error {
	out, err := h.categories.Site(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCategoriesHeader godoc
// @Summary      Modificar encabezado de categorías
// @Description  Sólo cambia los campos enviados.
// @Tags         categorias
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriesHeaderRequest  true  "encabezado"
// @Success      200   {object}  dto.CategoriesSiteResponse
// @Router       /auth/categorias/site/header [put]
func (h *ClubHandler) UpdateCategoriesHeader(c *fiber.Ctx) error {
	var in dto.CategoriesHeaderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.categories.UpdateHeader(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateCategoriesCarousel godoc
// @Summary      Modificar carrusel de categorías
// @Description  Sólo cambia los campos enviados.
// @Tags         categorias
// @Security     CookieAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriesCarouselRequest  true  "carrusel"
// @Success      200   {object}  dto.CategoriesSiteResponse
// @Router       /auth/categorias/carrusel [put]
func (h *ClubHandler) UpdateCategoriesCarousel(c *fiber.Ctx) error {
	var in dto.CategoriesCarouselRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.categories.UpdateCarousel(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
