package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

var (
	_ repository.EventRepository       = (*EventRepo)(nil)
	_ repository.NewsRepository        = (*NewsRepo)(nil)
	_ repository.TestimonialRepository = (*TestimonialRepo)(nil)
	_ repository.PlayerRepository      = (*PlayerRepo)(nil)
)

// ─── Eventos ────────────────────────────────────────────────────────────────

// EventRepo eventos del calendario.
type EventRepo struct {
	q Querier
}

func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

const eventColumns = `id, nombre, descripcion, fecha_inicio, fecha_final, ishabilitado, img_url`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	if err := row.Scan(&e.ID, &e.Nombre, &e.Descripcion, &e.FechaInicio, &e.FechaFinal, &e.Habilitado, &e.ImgURL); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO eventos (nombre, descripcion, fecha_inicio, fecha_final, ishabilitado, img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		e.Nombre, e.Descripcion, e.FechaInicio, e.FechaFinal, e.Habilitado, e.ImgURL,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	e, err := scanEvent(r.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM eventos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return e, nil
}

// ListUpcoming eventos que empiezan desde from, en orden cronológico.
func (r *EventRepo) ListUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+eventColumns+` FROM eventos WHERE fecha_inicio >= $1 ORDER BY fecha_inicio ASC`, from)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepo) Update(ctx context.Context, e *entity.Event) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE eventos
		SET nombre = $2, descripcion = $3, fecha_inicio = $4, fecha_final = $5, ishabilitado = $6, img_url = $7
		WHERE id = $1`,
		e.ID, e.Nombre, e.Descripcion, e.FechaInicio, e.FechaFinal, e.Habilitado, e.ImgURL)
	if err != nil {
		return fmt.Errorf("update evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Evento no encontrado")
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Evento no encontrado")
	}
	return nil
}

// ─── Noticias ───────────────────────────────────────────────────────────────

// NewsRepo noticias del sitio.
type NewsRepo struct {
	q Querier
}

func NewNewsRepository(q Querier) *NewsRepo {
	return &NewsRepo{q: q}
}

const newsColumns = `id, titulo, contenido, imagen_url, fecha_publicacion, autor_id`

func scanNews(row pgx.Row) (*entity.News, error) {
	var n entity.News
	if err := row.Scan(&n.ID, &n.Titulo, &n.Contenido, &n.ImagenURL, &n.FechaPublicacion, &n.AutorID); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepo) Create(ctx context.Context, n *entity.News) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO noticias (titulo, contenido, imagen_url, fecha_publicacion, autor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		n.Titulo, n.Contenido, n.ImagenURL, n.FechaPublicacion, n.AutorID,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert noticia: %w", err)
	}
	return nil
}

func (r *NewsRepo) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n, err := scanNews(r.q.QueryRow(ctx, `SELECT `+newsColumns+` FROM noticias WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get noticia: %w", err)
	}
	return n, nil
}

// List noticias, la más reciente primero.
func (r *NewsRepo) List(ctx context.Context) ([]*entity.News, error) {
	rows, err := r.q.Query(ctx, `SELECT `+newsColumns+` FROM noticias ORDER BY fecha_publicacion DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list noticias: %w", err)
	}
	defer rows.Close()
	var out []*entity.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan noticia: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NewsRepo) Update(ctx context.Context, n *entity.News) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE noticias SET titulo = $2, contenido = $3, imagen_url = $4, fecha_publicacion = $5
		WHERE id = $1`,
		n.ID, n.Titulo, n.Contenido, n.ImagenURL, n.FechaPublicacion)
	if err != nil {
		return fmt.Errorf("update noticia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Noticia no encontrada")
	}
	return nil
}

func (r *NewsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM noticias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete noticia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Noticia no encontrada")
	}
	return nil
}

// ─── Testimonios ────────────────────────────────────────────────────────────

// TestimonialRepo testimonios y encabezado de la sección.
type TestimonialRepo struct {
	q Querier
}

func NewTestimonialRepository(q Querier) *TestimonialRepo {
	return &TestimonialRepo{q: q}
}

const testimonialColumns = `id, nombre, cargo, contenido, imagen_url, destacado, created_at`

func scanTestimonial(row pgx.Row) (*entity.Testimonial, error) {
	var t entity.Testimonial
	if err := row.Scan(&t.ID, &t.Nombre, &t.Cargo, &t.Contenido, &t.ImagenURL, &t.Destacado, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepo) Create(ctx context.Context, t *entity.Testimonial) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO testimonios (nombre, cargo, contenido, imagen_url, destacado)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, destacado, created_at`,
		t.Nombre, t.Cargo, t.Contenido, t.ImagenURL,
	).Scan(&t.ID, &t.Destacado, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert testimonio: %w", err)
	}
	return nil
}

func (r *TestimonialRepo) GetByID(ctx context.Context, id int64) (*entity.Testimonial, error) {
	t, err := scanTestimonial(r.q.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get testimonio: %w", err)
	}
	return t, nil
}

// List destacado primero, luego los más recientes.
func (r *TestimonialRepo) List(ctx context.Context) ([]*entity.Testimonial, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+testimonialColumns+` FROM testimonios ORDER BY destacado DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonios: %w", err)
	}
	defer rows.Close()
	var out []*entity.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonio: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetFeatured testimonio destacado; nil si ninguno lo está.
func (r *TestimonialRepo) GetFeatured(ctx context.Context) (*entity.Testimonial, error) {
	t, err := scanTestimonial(r.q.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonios WHERE destacado LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get destacado: %w", err)
	}
	return t, nil
}

// SetFeatured deja a id como único destacado. Si id no existe no cambia nada.
func (r *TestimonialRepo) SetFeatured(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE testimonios SET destacado = (id = $1)
		WHERE EXISTS (SELECT 1 FROM testimonios WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("destacar testimonio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Testimonio no encontrado")
	}
	return nil
}

func (r *TestimonialRepo) Update(ctx context.Context, t *entity.Testimonial) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE testimonios SET nombre = $2, cargo = $3, contenido = $4, imagen_url = $5
		WHERE id = $1`,
		t.ID, t.Nombre, t.Cargo, t.Contenido, t.ImagenURL)
	if err != nil {
		return fmt.Errorf("update testimonio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Testimonio no encontrado")
	}
	return nil
}

func (r *TestimonialRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM testimonios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Testimonio no encontrado")
	}
	return nil
}

// GetHeader encabezado guardado; nil si nunca se editó.
func (r *TestimonialRepo) GetHeader(ctx context.Context) (*entity.TestimonialsHeader, error) {
	var h entity.TestimonialsHeader
	err := r.q.QueryRow(ctx, `SELECT header_title, updated_at FROM testimonios_site WHERE id = 1`).
		Scan(&h.HeaderTitle, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get encabezado testimonios: %w", err)
	}
	return &h, nil
}

func (r *TestimonialRepo) UpsertHeader(ctx context.Context, title string) (*entity.TestimonialsHeader, error) {
	var h entity.TestimonialsHeader
	err := r.q.QueryRow(ctx, `
		INSERT INTO testimonios_site (id, header_title, updated_at) VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET header_title = EXCLUDED.header_title, updated_at = now()
		RETURNING header_title, updated_at`, title).Scan(&h.HeaderTitle, &h.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert encabezado testimonios: %w", err)
	}
	return &h, nil
}

// ─── Jugadores ──────────────────────────────────────────────────────────────

// PlayerRepo lectura de jugadores.
type PlayerRepo struct {
	q Querier
}

func NewPlayerRepository(q Querier) *PlayerRepo {
	return &PlayerRepo{q: q}
}

func (r *PlayerRepo) List(ctx context.Context) ([]*entity.Player, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nombre, numero, posicion, categoria, foto_url FROM jugadores ORDER BY categoria, numero NULLS LAST, nombre`)
	if err != nil {
		return nil, fmt.Errorf("list jugadores: %w", err)
	}
	defer rows.Close()
	var out []*entity.Player
	for rows.Next() {
		var p entity.Player
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Numero, &p.Posicion, &p.Categoria, &p.FotoURL); err != nil {
			return nil, fmt.Errorf("scan jugador: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
