package ports

import "context"

// StoredObject objeto subido al almacenamiento.
type StoredObject struct {
	Path string
	URL  string // URL pública
}

// ObjectStorage almacenamiento de archivos binarios (imágenes del sitio).
type ObjectStorage interface {
	Upload(ctx context.Context, path string, content []byte, contentType string) (*StoredObject, error)
	// DeleteByURL elimina el objeto referenciado por una URL pública; URLs ajenas al bucket se ignoran.
	DeleteByURL(ctx context.Context, publicURL string) error
}
