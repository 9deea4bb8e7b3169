package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo contenido editable: textos, imágenes y bloque de contacto.
type SiteRepo struct {
	q Querier
}

// NewSiteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSiteRepository(q Querier) *SiteRepo {
	return &SiteRepo{q: q}
}

const siteTextColumns = `seccion, clave, valor, descripcion, updated_at`

func scanSiteText(row pgx.Row) (*entity.SiteText, error) {
	var t entity.SiteText
	if err := row.Scan(&t.Seccion, &t.Clave, &t.Valor, &t.Descripcion, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SiteRepo) ListTexts(ctx context.Context, seccion string) ([]*entity.SiteText, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+siteTextColumns+` FROM site_textos WHERE seccion = $1 ORDER BY clave`, seccion)
	if err != nil {
		return nil, fmt.Errorf("list textos: %w", err)
	}
	defer rows.Close()
	var out []*entity.SiteText
	for rows.Next() {
		t, err := scanSiteText(rows)
		if err != nil {
			return nil, fmt.Errorf("scan texto: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SiteRepo) GetText(ctx context.Context, seccion, clave string) (*entity.SiteText, error) {
	t, err := scanSiteText(r.q.QueryRow(ctx,
		`SELECT `+siteTextColumns+` FROM site_textos WHERE seccion = $1 AND clave = $2`, seccion, clave))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get texto: %w", err)
	}
	return t, nil
}

// UpsertText conserva la descripción previa cuando t.Descripcion es nil.
func (r *SiteRepo) UpsertText(ctx context.Context, t *entity.SiteText) (*entity.SiteText, error) {
	saved, err := scanSiteText(r.q.QueryRow(ctx, `
		INSERT INTO site_textos (seccion, clave, valor, descripcion, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (seccion, clave) DO UPDATE
		SET valor = EXCLUDED.valor,
		    descripcion = COALESCE(EXCLUDED.descripcion, site_textos.descripcion),
		    updated_at = now()
		RETURNING `+siteTextColumns,
		t.Seccion, t.Clave, t.Valor, t.Descripcion))
	if err != nil {
		return nil, fmt.Errorf("upsert texto: %w", err)
	}
	return saved, nil
}

func (r *SiteRepo) ListImages(ctx context.Context, seccion string) ([]*entity.SiteImage, error) {
	rows, err := r.q.Query(ctx,
		`SELECT seccion, tipo, url, updated_at FROM site_images WHERE seccion = $1 ORDER BY tipo`, seccion)
	if err != nil {
		return nil, fmt.Errorf("list imagenes: %w", err)
	}
	defer rows.Close()
	var out []*entity.SiteImage
	for rows.Next() {
		var img entity.SiteImage
		if err := rows.Scan(&img.Seccion, &img.Tipo, &img.URL, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan imagen: %w", err)
		}
		out = append(out, &img)
	}
	return out, rows.Err()
}

func (r *SiteRepo) GetImage(ctx context.Context, seccion, tipo string) (*entity.SiteImage, error) {
	var img entity.SiteImage
	err := r.q.QueryRow(ctx,
		`SELECT seccion, tipo, url, updated_at FROM site_images WHERE seccion = $1 AND tipo = $2`, seccion, tipo,
	).Scan(&img.Seccion, &img.Tipo, &img.URL, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get imagen: %w", err)
	}
	return &img, nil
}

func (r *SiteRepo) UpsertImage(ctx context.Context, img *entity.SiteImage) (*entity.SiteImage, error) {
	var out entity.SiteImage
	err := r.q.QueryRow(ctx, `
		INSERT INTO site_images (seccion, tipo, url, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (seccion, tipo) DO UPDATE SET url = EXCLUDED.url, updated_at = now()
		RETURNING seccion, tipo, url, updated_at`,
		img.Seccion, img.Tipo, img.URL,
	).Scan(&out.Seccion, &out.Tipo, &out.URL, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert imagen: %w", err)
	}
	return &out, nil
}

const contactColumns = `org_nombre, telefono_lbl, telefono_val, email_lbl, email_val, texto_intro, texto_cta, header_title, updated_at`

func scanContact(row pgx.Row) (*entity.ContactInfo, error) {
	var c entity.ContactInfo
	err := row.Scan(&c.OrgNombre, &c.TelefonoLbl, &c.TelefonoVal, &c.EmailLbl, &c.EmailVal,
		&c.TextoIntro, &c.TextoCTA, &c.HeaderTitle, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetContact bloque guardado; nil si nunca se editó.
func (r *SiteRepo) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	c, err := scanContact(r.q.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacto_site WHERE id = 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacto sitio: %w", err)
	}
	return c, nil
}

func (r *SiteRepo) UpsertContact(ctx context.Context, c *entity.ContactInfo) (*entity.ContactInfo, error) {
	saved, err := scanContact(r.q.QueryRow(ctx, `
		INSERT INTO contacto_site (id, org_nombre, telefono_lbl, telefono_val, email_lbl, email_val,
		                           texto_intro, texto_cta, header_title, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id) DO UPDATE SET
		    org_nombre = EXCLUDED.org_nombre, telefono_lbl = EXCLUDED.telefono_lbl,
		    telefono_val = EXCLUDED.telefono_val, email_lbl = EXCLUDED.email_lbl,
		    email_val = EXCLUDED.email_val, texto_intro = EXCLUDED.texto_intro,
		    texto_cta = EXCLUDED.texto_cta, header_title = EXCLUDED.header_title,
		    updated_at = now()
		RETURNING `+contactColumns,
		c.OrgNombre, c.TelefonoLbl, c.TelefonoVal, c.EmailLbl, c.EmailVal, c.TextoIntro, c.TextoCTA, c.HeaderTitle))
	if err != nil {
		return nil, fmt.Errorf("upsert contacto sitio: %w", err)
	}
	return saved, nil
}
