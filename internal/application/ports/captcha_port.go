package ports

import "context"

// CaptchaVerifier valida el token de reCAPTCHA enviado por el navegador.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
