package usecase

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/application/notify"
	"github.com/pilotosfah/pilotos-api/internal/application/ports"
	"github.com/pilotosfah/pilotos-api/internal/domain"
)

// ContactUseCase formulario público de contacto y verificación de reCAPTCHA.
type ContactUseCase struct {
	notifier FormNotifier
	tasks    TaskDispatcher
	captcha  ports.CaptchaVerifier
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(notifier FormNotifier, tasks TaskDispatcher, captcha ports.CaptchaVerifier) *ContactUseCase {
	return &ContactUseCase{notifier: notifier, tasks: tasks, captcha: captcha}
}

// Submit encola los correos del formulario y responde de inmediato.
// Los campos se copian porque la tarea sobrevive al cuerpo de la petición.
func (uc *ContactUseCase) Submit(ctx context.Context, in dto.ContactFormRequest) error {
	m := notify.ContactMessage{
		Nombre:   ownedTrim(in.Nombre),
		Correo:   ownedTrim(in.Correo),
		Telefono: ownedTrim(in.Telefono),
		Asunto:   ownedTrim(in.Asunto),
		Mensaje:  ownedTrim(in.Mensaje),
	}
	if m.Nombre == "" || m.Correo == "" || m.Mensaje == "" {
		return domain.NewValidationError("", "Faltan campos obligatorios")
	}
	if uc.notifier == nil || uc.tasks == nil {
		return nil
	}
	uc.tasks.Dispatch("notificar-contacto", func(tctx context.Context) error {
		return uc.notifier.NotifyContactForm(tctx, m)
	})
	return nil
}

// VerifyCaptcha valida el token contra reCAPTCHA.
func (uc *ContactUseCase) VerifyCaptcha(ctx context.Context, in dto.CaptchaRequest, remoteIP string) (*dto.CaptchaResponse, error) {
	if strings.TrimSpace(in.Token) == "" {
		return nil, domain.NewValidationError("token", "token requerido")
	}
	ok, err := uc.captcha.Verify(ctx, in.Token, remoteIP)
	if err != nil {
		return nil, err
	}
	return &dto.CaptchaResponse{Success: ok}, nil
}
