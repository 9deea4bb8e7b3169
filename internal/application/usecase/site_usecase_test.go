package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestUpsertText_SeccionInvalida(t *testing.T) {
	uc := NewSiteUseCase(newMemSite(), nil)
	_, err := uc.UpsertText(context.Background(), "inexistente", dto.SiteTextRequest{Clave: "x", Valor: strPtr("y")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsertText_HomeSoloClavesPermitidas(t *testing.T) {
	repo := newMemSite()
	uc := NewSiteUseCase(repo, nil)

	_, err := uc.UpsertText(context.Background(), entity.SectionHome, dto.SiteTextRequest{Clave: "banner_libre", Valor: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.UpsertText(context.Background(), entity.SectionHome, dto.SiteTextRequest{Clave: "mision_titulo", Valor: strPtr("Misión")})
	require.NoError(t, err)
	assert.Equal(t, "Misión", out.Valor)
}

func TestUpsertText_ValorDemasiadoLargo(t *testing.T) {
	uc := NewSiteUseCase(newMemSite(), nil)
	largo := strings.Repeat("ñ", entity.MaxSiteTextLen+1)
	_, err := uc.UpsertText(context.Background(), entity.SectionHistoria, dto.SiteTextRequest{Clave: "intro", Valor: &largo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpsertTexts_FalloParcial_ReportaPorClave(t *testing.T) {
	repo := newMemSite()
	repo.failKey = "vision_desc"
	uc := NewSiteUseCase(repo, nil)

	res, err := uc.UpsertTexts(context.Background(), entity.SectionHome, dto.SiteTextBulkRequest{Textos: map[string]string{
		"mision_titulo": "Misión",
		"vision_desc":   "Visión",
		"no_permitida":  "x",
	}})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, []string{"mision_titulo"}, res.Guardados)
	require.Len(t, res.Errores, 2)

	texts, err := uc.Texts(context.Background(), entity.SectionHome)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"mision_titulo": "Misión"}, texts.Data)
}

func TestUpsertTexts_TodoGuardado(t *testing.T) {
	uc := NewSiteUseCase(newMemSite(), nil)
	res, err := uc.UpsertTexts(context.Background(), entity.SectionTienda, dto.SiteTextBulkRequest{Textos: map[string]string{"a": "1", "b": "2"}})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, res.Errores)
	assert.Len(t, res.Guardados, 2)
}

func TestUpsertImage_ReemplazaYBorraAnterior(t *testing.T) {
	repo := newMemSite()
	storage := newMemStorage()
	uc := NewSiteUseCase(repo, NewUploadUseCase(storage, nil))
	ctx := context.Background()

	first, err := uc.UpsertImage(ctx, entity.SectionHome, dto.SiteImageRequest{Type: "hero", URL: "https://cdn.test/public/old.png"}, nil)
	require.NoError(t, err)

	second, err := uc.UpsertImage(ctx, entity.SectionHome, dto.SiteImageRequest{Type: "hero"},
		&FileInput{Filename: "Nueva Foto.PNG", ContentType: "image/png", Content: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.NotEqual(t, first.URL, second.URL)
	assert.Contains(t, second.URL, "site/home/")
	assert.Equal(t, []string{first.URL}, storage.deleted)
}

func TestUpsertImage_SinURLNiArchivo(t *testing.T) {
	uc := NewSiteUseCase(newMemSite(), nil)
	_, err := uc.UpsertImage(context.Background(), entity.SectionHome, dto.SiteImageRequest{Type: "hero"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContact_ValoresPorDefecto(t *testing.T) {
	uc := NewSiteUseCase(newMemSite(), nil)
	c, err := uc.Contact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ponte en Contacto", c.HeaderTitle)
	assert.Nil(t, c.UpdatedAt)
}
