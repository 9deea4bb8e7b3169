package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/ports"
)

var _ ports.CaptchaVerifier = (*Client)(nil)

// Client verifica tokens contra la API siteverify de reCAPTCHA.
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

func NewClient(secret, verifyURL string) *Client {
	return &Client{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify devuelve success tal cual lo informa Google. Errores de red o de configuración se devuelven como error.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if c.secret == "" {
		return false, fmt.Errorf("recaptcha: RECAPTCHA_SECRET no configurado")
	}
	form := url.Values{"secret": {c.secret}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("recaptcha: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("recaptcha: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("recaptcha: HTTP %d", resp.StatusCode)
	}
	var out verifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 16*1024)).Decode(&out); err != nil {
		return false, fmt.Errorf("recaptcha: deserializar respuesta: %w", err)
	}
	return out.Success, nil
}
