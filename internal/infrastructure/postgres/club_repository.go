package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

var (
	_ repository.LiveStreamRepository = (*LiveStreamRepo)(nil)
	_ repository.BoardRepository      = (*BoardRepo)(nil)
	_ repository.CategoryRepository   = (*CategoryRepo)(nil)
)

// ─── En vivo ────────────────────────────────────────────────────────────────

// LiveStreamRepo tabla envivo.
type LiveStreamRepo struct {
	q Querier
}

func NewLiveStreamRepository(q Querier) *LiveStreamRepo {
	return &LiveStreamRepo{q: q}
}

const liveColumns = `id, titulo, url, descripcion, mostrar_anuncio, updated_at`

func scanLive(row pgx.Row) (*entity.LiveStream, error) {
	var s entity.LiveStream
	if err := row.Scan(&s.ID, &s.Titulo, &s.URL, &s.Descripcion, &s.MostrarAnuncio, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *LiveStreamRepo) Create(ctx context.Context, s *entity.LiveStream) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO envivo (titulo, url, descripcion, mostrar_anuncio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at`,
		s.Titulo, s.URL, s.Descripcion, s.MostrarAnuncio,
	).Scan(&s.ID, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert envivo: %w", err)
	}
	return nil
}

func (r *LiveStreamRepo) Latest(ctx context.Context) (*entity.LiveStream, error) {
	s, err := scanLive(r.q.QueryRow(ctx,
		`SELECT `+liveColumns+` FROM envivo ORDER BY updated_at DESC, id DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get envivo: %w", err)
	}
	return s, nil
}

func (r *LiveStreamRepo) Update(ctx context.Context, s *entity.LiveStream) error {
	err := r.q.QueryRow(ctx, `
		UPDATE envivo SET titulo = $2, url = $3, descripcion = $4, updated_at = now()
		WHERE id = $1
		RETURNING mostrar_anuncio, updated_at`,
		s.ID, s.Titulo, s.URL, s.Descripcion,
	).Scan(&s.MostrarAnuncio, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("Transmisión no encontrada")
		}
		return fmt.Errorf("update envivo: %w", err)
	}
	return nil
}

// SetAnnouncement cambia sólo la bandera; no altera updated_at para no reordenar.
func (r *LiveStreamRepo) SetAnnouncement(ctx context.Context, id int64, show bool) (*entity.LiveStream, error) {
	s, err := scanLive(r.q.QueryRow(ctx,
		`UPDATE envivo SET mostrar_anuncio = $2 WHERE id = $1 RETURNING `+liveColumns, id, show))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound("Transmisión no encontrada")
		}
		return nil, fmt.Errorf("update anuncio envivo: %w", err)
	}
	return s, nil
}

// ─── Junta directiva ────────────────────────────────────────────────────────

// BoardRepo tabla junta_directiva.
type BoardRepo struct {
	q Querier
}

func NewBoardRepository(q Querier) *BoardRepo {
	return &BoardRepo{q: q}
}

func (r *BoardRepo) List(ctx context.Context) ([]*entity.BoardMember, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, cargo, imagen_url, orden FROM junta_directiva ORDER BY orden, id`)
	if err != nil {
		return nil, fmt.Errorf("list junta directiva: %w", err)
	}
	defer rows.Close()
	var out []*entity.BoardMember
	for rows.Next() {
		var m entity.BoardMember
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Cargo, &m.ImagenURL, &m.Orden); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *BoardRepo) Create(ctx context.Context, m *entity.BoardMember) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO junta_directiva (nombre, cargo, imagen_url, orden)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		m.Nombre, m.Cargo, m.ImagenURL, m.Orden,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert miembro: %w", err)
	}
	return nil
}

func (r *BoardRepo) Update(ctx context.Context, m *entity.BoardMember) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE junta_directiva SET nombre = $2, cargo = $3, imagen_url = $4, orden = $5
		WHERE id = $1`,
		m.ID, m.Nombre, m.Cargo, m.ImagenURL, m.Orden)
	if err != nil {
		return fmt.Errorf("update miembro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Miembro no encontrado")
	}
	return nil
}

func (r *BoardRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM junta_directiva WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete miembro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Miembro no encontrado")
	}
	return nil
}

// ─── Categorías ─────────────────────────────────────────────────────────────

// CategoryRepo tablas categorias_images y categorias_site.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, slugs, titletext, image, tipo, descripcion FROM categorias_images ORDER BY slugs`)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.TitleText, &c.Image, &c.Tipo, &c.Descripcion); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	err := r.q.QueryRow(ctx, `
		UPDATE categorias_images SET titletext = $2, tipo = $3, descripcion = $4, image = $5
		WHERE id = $1
		RETURNING slugs`,
		c.ID, c.TitleText, c.Tipo, c.Descripcion, c.Image,
	).Scan(&c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("Categoría no encontrada")
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetSite(ctx context.Context) (*entity.CategoriesSite, error) {
	var s entity.CategoriesSite
	err := r.q.QueryRow(ctx, `
		SELECT header_title, header_img, carrusel_title, carrusel_subtitle, carrusel_image, updated_at
		FROM categorias_site WHERE id = 1`,
	).Scan(&s.HeaderTitle, &s.HeaderImg, &s.CarruselTitle, &s.CarruselSubtitle, &s.CarruselImage, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categorias_site: %w", err)
	}
	return &s, nil
}

func (r *CategoryRepo) UpdateSite(ctx context.Context, s *entity.CategoriesSite) error {
	err := r.q.QueryRow(ctx, `
		UPDATE categorias_site
		SET header_title = $1, header_img = $2, carrusel_title = $3, carrusel_subtitle = $4,
		    carrusel_image = $5, updated_at = now()
		WHERE id = 1
		RETURNING updated_at`,
		s.HeaderTitle, s.HeaderImg, s.CarruselTitle, s.CarruselSubtitle, s.CarruselImage,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("Datos de categorías no encontrados")
		}
		return fmt.Errorf("update categorias_site: %w", err)
	}
	return nil
}
