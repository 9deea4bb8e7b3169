package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

// ReceiptNotifier envío del comprobante de donación.
type ReceiptNotifier interface {
	NotifyDonationReceipt(ctx context.Context, d notify.DonationReceipt) error
}

// ReceiptTypes tipos aceptados para el comprobante: imágenes o PDF.
var ReceiptTypes = append([]string{"application/pdf"}, AllowedImageTypes...)

// DonationReceiptUseCase comprobantes de donaciones monetarias.
type DonationReceiptUseCase struct {
	users    repository.UserRepository
	notifier ReceiptNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewDonationReceiptUseCase construye el caso de uso.
func NewDonationReceiptUseCase(users repository.UserRepository, notifier ReceiptNotifier, log *logger.Logger) *DonationReceiptUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DonationReceiptUseCase{users: users, notifier: notifier, log: log, now: time.Now}
}

// Send reenvía el comprobante a los administradores con el nombre y correo del usuario uid.
// El envío es síncrono: la respuesta confirma que el correo salió.
func (uc *DonationReceiptUseCase) Send(ctx context.Context, uid string, in dto.DonationReceiptRequest, f *FileInput) (*dto.MessageResponse, error) {
	if f == nil || len(f.Content) == 0 {
		return nil, domain.NewValidationError("comprobante", "Falta el archivo comprobante")
	}
	if len(f.Content) > MaxUploadSize {
		return nil, domain.NewValidationError("comprobante", "el archivo supera 5 MB")
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.SplitN(f.ContentType, ";", 2)[0]))
	if !slices.Contains(ReceiptTypes, contentType) {
		return nil, domain.ErrUnsupportedMedia
	}

	d := notify.DonationReceipt{
		Nombre:     "Anónimo",
		Monto:      strings.TrimSpace(in.Monto),
		Comentario: strings.TrimSpace(in.Comentario),
		RecibidoEn: uc.now(),
		Archivo: ports.Attachment{
			Filename:    receiptFilename(f.Filename),
			Content:     f.Content,
			ContentType: contentType,
		},
	}
	// Sin datos del usuario el comprobante sale como anónimo.
	if c, err := uc.users.GetContact(ctx, uid); err != nil {
		uc.log.Warn().Err(err).Str("uid", uid).Msg("no se pudo resolver el donante")
	} else if c != nil {
		if n := strings.TrimSpace(c.Nombre); n != "" {
			d.Nombre = n
		}
		d.Correo = strings.TrimSpace(c.Email)
	}

	if err := uc.notifier.NotifyDonationReceipt(ctx, d); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Mensaje: "Comprobante enviado."}, nil
}

func receiptFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return "comprobante"
	}
	return SanitizeName(name)
}
