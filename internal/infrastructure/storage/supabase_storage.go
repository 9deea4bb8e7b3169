package storage

import (
	"bytes"
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

var _ ports.ObjectStorage = (*SupabaseStorage)(nil)

// SupabaseStorage adaptador de ObjectStorage sobre la API REST de Supabase Storage.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewSupabaseStorage construye el adaptador para un bucket público.
func NewSupabaseStorage(baseURL, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube (o reemplaza) el objeto y devuelve su URL pública.
func (s *SupabaseStorage) Upload(ctx context.Context, path string, content []byte, contentType string) (*ports.StoredObject, error) {
	if s.baseURL == "" || s.serviceKey == "" {
		return nil, fmt.Errorf("storage: SUPABASE_URL o SUPABASE_SERVICE_ROLE_KEY no configurados")
	}
	path = strings.TrimLeft(path, "/")
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, escapePath(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("storage: crear request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	if err := s.do(req); err != nil {
		return nil, fmt.Errorf("storage: subir %s: %w", path, err)
	}
	return &ports.StoredObject{Path: path, URL: s.PublicURL(path)}, nil
}

// PublicURL URL pública de un objeto del bucket.
func (s *SupabaseStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, escapePath(path))
}

// DeleteByURL elimina el objeto si la URL pertenece al bucket; otras URLs se ignoran.
func (s *SupabaseStorage) DeleteByURL(ctx context.Context, publicURL string) error {
	path, ok := s.PathFromURL(publicURL)
	if !ok {
		return nil
	}
	body, err := json.Marshal(map[string][]string{"prefixes": {path}})
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, s.bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("storage: crear request: %w", err)
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	if err := s.do(req); err != nil {
		return fmt.Errorf("storage: eliminar %s: %w", path, err)
	}
	return nil
}

// PathFromURL extrae la ruta dentro del bucket a partir de la URL pública.
func (s *SupabaseStorage) PathFromURL(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if s.baseURL == "" || !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	raw := strings.TrimPrefix(publicURL, prefix)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	path, err := url.PathUnescape(raw)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

func (s *SupabaseStorage) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
}

func (s *SupabaseStorage) do(req *http.Request) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
