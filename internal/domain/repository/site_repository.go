package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// SiteRepository textos, imágenes y bloque de contacto editables.
type SiteRepository interface {
	ListTexts(ctx context.Context, seccion string) ([]*entity.SiteText, error)
	GetText(ctx context.Context, seccion, clave string) (*entity.SiteText, error)
	// UpsertText inserta o actualiza por (seccion, clave).
	UpsertText(ctx context.Context, t *entity.SiteText) (*entity.SiteText, error)

	ListImages(ctx context.Context, seccion string) ([]*entity.SiteImage, error)
	GetImage(ctx context.Context, seccion, tipo string) (*entity.SiteImage, error)
	// UpsertImage inserta o actualiza por (seccion, tipo).
	UpsertImage(ctx context.Context, img *entity.SiteImage) (*entity.SiteImage, error)

	GetContact(ctx context.Context) (*entity.ContactInfo, error)
	UpsertContact(ctx context.Context, c *entity.ContactInfo) (*entity.ContactInfo, error)
}
