package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// SiteUseCase textos, imágenes y bloque de contacto editables del sitio.
type SiteUseCase struct {
	repo   repository.SiteRepository
	images *UploadUseCase
}

// NewSiteUseCase construye el caso de uso. images puede ser nil.
func NewSiteUseCase(repo repository.SiteRepository, images *UploadUseCase) *SiteUseCase {
	return &SiteUseCase{repo: repo, images: images}
}

// Texts textos de una sección como mapa clave -> valor.
func (uc *SiteUseCase) Texts(ctx context.Context, seccion string) (*dto.SiteTextsResponse, error) {
	if err := checkTextSection(seccion); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListTexts(ctx, seccion)
	if err != nil {
		return nil, err
	}
	data := make(map[string]string, len(list))
	for _, t := range list {
		data[t.Clave] = t.Valor
	}
	return &dto.SiteTextsResponse{Success: true, Data: data, Count: len(data)}, nil
}

// Text un texto por clave.
func (uc *SiteUseCase) Text(ctx context.Context, seccion, clave string) (*dto.SiteTextResponse, error) {
	if err := checkTextSection(seccion); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetText(ctx, seccion, clave)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Texto no encontrado")
	}
	r := toSiteTextResponse(t)
	return &r, nil
}

// UpsertText guarda un texto por (sección, clave).
func (uc *SiteUseCase) UpsertText(ctx context.Context, seccion string, in dto.SiteTextRequest) (*dto.SiteTextResponse, error) {
	if err := checkTextSection(seccion); err != nil {
		return nil, err
	}
	if in.Valor == nil {
		return nil, domain.NewValidationError("valor", "el valor es obligatorio")
	}
	clave := strings.TrimSpace(in.Clave)
	if err := checkText(seccion, clave, *in.Valor); err != nil {
		return nil, err
	}
	t, err := uc.repo.UpsertText(ctx, &entity.SiteText{Seccion: seccion, Clave: clave, Valor: *in.Valor, Descripcion: in.Descripcion})
	if err != nil {
		return nil, err
	}
	r := toSiteTextResponse(t)
	return &r, nil
}

// UpsertTexts guarda varias claves; los fallos por clave no detienen al resto.
func (uc *SiteUseCase) UpsertTexts(ctx context.Context, seccion string, in dto.SiteTextBulkRequest) (*dto.SiteTextBulkResponse, error) {
	if err := checkTextSection(seccion); err != nil {
		return nil, err
	}
	if len(in.Textos) == 0 {
		return nil, domain.NewValidationError("textos", "no hay textos para guardar")
	}
	claves := make([]string, 0, len(in.Textos))
	for k := range in.Textos {
		claves = append(claves, k)
	}
	sort.Strings(claves)

	res := &dto.SiteTextBulkResponse{Guardados: []string{}}
	for _, raw := range claves {
		clave := strings.TrimSpace(raw)
		valor := in.Textos[raw]
		if err := checkText(seccion, clave, valor); err != nil {
			res.Errores = append(res.Errores, dto.BulkItemError{Clave: raw, Mensaje: err.Error()})
			continue
		}
		if _, err := uc.repo.UpsertText(ctx, &entity.SiteText{Seccion: seccion, Clave: clave, Valor: valor}); err != nil {
			res.Errores = append(res.Errores, dto.BulkItemError{Clave: raw, Mensaje: "no se pudo guardar"})
			continue
		}
		res.Guardados = append(res.Guardados, clave)
	}
	res.Success = len(res.Errores) == 0
	if res.Success {
		res.Mensaje = "Textos guardados"
	} else {
		res.Mensaje = fmt.Sprintf("Se guardaron %d de %d textos", len(res.Guardados), len(claves))
	}
	return res, nil
}

// Images imágenes de una sección.
func (uc *SiteUseCase) Images(ctx context.Context, seccion string) ([]dto.SiteImageResponse, error) {
	if err := checkImageSection(seccion); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListImages(ctx, seccion)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SiteImageResponse, 0, len(list))
	for _, img := range list {
		out = append(out, dto.SiteImageResponse{Type: img.Tipo, URL: img.URL, UpdatedAt: img.UpdatedAt})
	}
	return out, nil
}

// UpsertImage guarda la imagen de un tipo con una URL dada o subiendo file.
// La imagen anterior se borra del almacenamiento si cambió.
func (uc *SiteUseCase) UpsertImage(ctx context.Context, seccion string, in dto.SiteImageRequest, file *FileInput) (*dto.SiteImageResponse, error) {
	if err := checkImageSection(seccion); err != nil {
		return nil, err
	}
	tipo := strings.TrimSpace(in.Type)
	if tipo == "" {
		return nil, domain.NewValidationError("type", "el tipo es obligatorio")
	}
	url := strings.TrimSpace(in.URL)
	if file != nil {
		if uc.images == nil {
			return nil, domain.NewValidationError("file", "almacenamiento no configurado")
		}
		u, err := uc.images.store(ctx, "site/"+seccion, *file)
		if err != nil {
			return nil, err
		}
		url = u
	}
	if url == "" {
		return nil, domain.NewValidationError("url", "se requiere url o archivo")
	}

	prev, err := uc.repo.GetImage(ctx, seccion, tipo)
	if err != nil {
		return nil, err
	}
	img, err := uc.repo.UpsertImage(ctx, &entity.SiteImage{Seccion: seccion, Tipo: tipo, URL: url})
	if err != nil {
		return nil, err
	}
	if prev != nil && prev.URL != url && uc.images != nil {
		uc.images.discard(ctx, prev.URL)
	}
	return &dto.SiteImageResponse{Type: img.Tipo, URL: img.URL, UpdatedAt: img.UpdatedAt}, nil
}

// Contact bloque de contacto; valores por defecto si nunca se editó.
func (uc *SiteUseCase) Contact(ctx context.Context) (*dto.ContactInfoResponse, error) {
	c, err := uc.repo.GetContact(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		def := entity.DefaultContactInfo()
		c = &def
	}
	return toContactResponse(c), nil
}

// UpdateContact guarda el bloque de contacto.
func (uc *SiteUseCase) UpdateContact(ctx context.Context, in dto.ContactInfoRequest) (*dto.ContactInfoResponse, error) {
	c := &entity.ContactInfo{
		OrgNombre:   strings.TrimSpace(in.OrgNombre),
		TelefonoLbl: strings.TrimSpace(in.TelefonoLbl),
		TelefonoVal: strings.TrimSpace(in.TelefonoVal),
		EmailLbl:    strings.TrimSpace(in.EmailLbl),
		EmailVal:    strings.TrimSpace(in.EmailVal),
		TextoIntro:  strings.TrimSpace(in.TextoIntro),
		TextoCTA:    strings.TrimSpace(in.TextoCTA),
		HeaderTitle: strings.TrimSpace(in.HeaderTitle),
	}
	if c.HeaderTitle == "" {
		c.HeaderTitle = entity.DefaultContactInfo().HeaderTitle
	}
	saved, err := uc.repo.UpsertContact(ctx, c)
	if err != nil {
		return nil, err
	}
	return toContactResponse(saved), nil
}

func checkTextSection(seccion string) error {
	if !entity.Contains(entity.TextSections, seccion) {
		return domain.NewValidationError("seccion", "sección no válida")
	}
	return nil
}

func checkImageSection(seccion string) error {
	if !entity.Contains(entity.ImageSections, seccion) {
		return domain.NewValidationError("seccion", "sección no válida")
	}
	return nil
}

func checkText(seccion, clave, valor string) error {
	if clave == "" {
		return domain.NewValidationError("clave", "la clave es obligatoria")
	}
	if seccion == entity.SectionHome && !entity.Contains(entity.HomeTextKeys, clave) {
		return domain.NewValidationError("clave", "clave no permitida en home")
	}
	if utf8.RuneCountInString(valor) > entity.MaxSiteTextLen {
		return domain.NewValidationError("valor", fmt.Sprintf("máximo %d caracteres", entity.MaxSiteTextLen))
	}
	return nil
}

func toSiteTextResponse(t *entity.SiteText) dto.SiteTextResponse {
	return dto.SiteTextResponse{Seccion: t.Seccion, Clave: t.Clave, Valor: t.Valor, Descripcion: t.Descripcion, UpdatedAt: t.UpdatedAt}
}

func toContactResponse(c *entity.ContactInfo) *dto.ContactInfoResponse {
	return &dto.ContactInfoResponse{
		OrgNombre:   c.OrgNombre,
		TelefonoLbl: c.TelefonoLbl,
		TelefonoVal: c.TelefonoVal,
		EmailLbl:    c.EmailLbl,
		EmailVal:    c.EmailVal,
		TextoIntro:  c.TextoIntro,
		TextoCTA:    c.TextoCTA,
		HeaderTitle: c.HeaderTitle,
		UpdatedAt:   c.UpdatedAt,
	}
}
