package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pilotosfah/pilotos-api/internal/application/usecase"
	"github.com/pilotosfah/pilotos-api/internal/domain"
)

// UploadHandler subida directa de imágenes al almacenamiento.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen
// @Description  Sólo jpeg, png, webp o avif hasta 5 MB. Devuelve la ruta y la URL pública.
// @Tags         archivos
// @Security     CookieAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /auth/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	f, err := formFile(c, "file")
	if err != nil {
		return err
	}
	if f == nil {
		return domain.NewValidationError("file", "es obligatorio")
	}
	out, err := h.uc.Upload(c.UserContext(), GetUserID(c), *f)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// formFile lee el archivo field de un multipart. Devuelve nil si la petición no
// es multipart o no trae ese campo.
func formFile(c *fiber.Ctx, field string) (*usecase.FileInput, error) {
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	if fh.Size > usecase.MaxUploadSize {
		return nil, newAPIError(fiber.StatusRequestEntityTooLarge, CodeTooLarge,
			fmt.Sprintf("El archivo supera el máximo de %d MB", usecase.MaxUploadSize>>20))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo %s: %w", fh.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, usecase.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("leer archivo %s: %w", fh.Filename, err)
	}
	if len(content) > usecase.MaxUploadSize {
		return nil, newAPIError(fiber.StatusRequestEntityTooLarge, CodeTooLarge,
			fmt.Sprintf("El archivo supera el máximo de %d MB", usecase.MaxUploadSize>>20))
	}
	return &usecase.FileInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Content:     content,
	}, nil
}
