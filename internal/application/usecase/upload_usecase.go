package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// MaxUploadSize tamaño máximo de una imagen subida.
const MaxUploadSize = 5 << 20

// AllowedImageTypes tipos MIME aceptados para imágenes del sitio.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/avif"}

// FileInput archivo recibido en un formulario multipart.
type FileInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// UploadUseCase sube imágenes al almacenamiento de objetos.
type UploadUseCase struct {
	storage ports.ObjectStorage
	log     *logger.Logger
	now     func() time.Time
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(storage ports.ObjectStorage, log *logger.Logger) *UploadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadUseCase{storage: storage, log: log, now: time.Now}
}

// Upload valida el tipo y guarda el archivo bajo users/{uid}/{unixms}-{nombre}.
func (uc *UploadUseCase) Upload(ctx context.Context, uid string, f FileInput) (*dto.UploadResponse, error) {
	if err := checkImage(f); err != nil {
		return nil, err
	}
	p := fmt.Sprintf("users/%s/%d-%s", uid, uc.now().UnixMilli(), SanitizeName(f.Filename))
	obj, err := uc.storage.Upload(ctx, p, f.Content, f.ContentType)
	if err != nil {
		return nil, fmt.Errorf("subir %s: %w", p, err)
	}
	return &dto.UploadResponse{Path: obj.Path, URL: obj.URL}, nil
}

// store sube una imagen de contenido (productos, secciones) bajo prefix.
func (uc *UploadUseCase) store(ctx context.Context, prefix string, f FileInput) (string, error) {
	if err := checkImage(f); err != nil {
		return "", err
	}
	p := fmt.Sprintf("%s/%d-%s", prefix, uc.now().UnixMilli(), SanitizeName(f.Filename))
	obj, err := uc.storage.Upload(ctx, p, f.Content, f.ContentType)
	if err != nil {
		return "", fmt.Errorf("subir %s: %w", p, err)
	}
	return obj.URL, nil
}

// discard borra un objeto reemplazado; los fallos sólo se registran.
func (uc *UploadUseCase) discard(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := uc.storage.DeleteByURL(ctx, url); err != nil {
		uc.log.Warn().Err(err).Str("url", url).Msg("no se pudo eliminar la imagen anterior")
	}
}

func checkImage(f FileInput) error {
	if len(f.Content) == 0 {
		return domain.NewValidationError("file", "archivo vacío")
	}
	if len(f.Content) > MaxUploadSize {
		return domain.NewValidationError("file", "el archivo supera 5 MB")
	}
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(f.ContentType, ";", 2)[0]))
	for _, allowed := range AllowedImageTypes {
		if ct == allowed {
			return nil
		}
	}
	return domain.ErrUnsupportedMedia
}

// SanitizeName quita acentos, espacios y caracteres fuera de [a-z0-9._-].
func SanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, base)
	if err != nil {
		clean = base
	}
	var b strings.Builder
	for _, r := range strings.ToLower(clean) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), ".-")
	if out == "" || out == "." {
		return "archivo"
	}
	return out
}
