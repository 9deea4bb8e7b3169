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

var _ repository.DonationRepository = (*DonationRepo)(nil)

// DonationRepo artículos para donar y solicitudes de donación.
type DonationRepo struct {
	q Querier
}

// NewDonationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{q: q}
}

func (r *DonationRepo) CreateProduct(ctx context.Context, p *entity.DonationProduct) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO productos_donacion (nombre, descripcion, imagen, estado)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Nombre, p.Descripcion, p.Imagen, p.Estado,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto donacion: %w", err)
	}
	return nil
}

func (r *DonationRepo) ListProducts(ctx context.Context) ([]*entity.DonationProduct, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, descripcion, imagen, estado FROM productos_donacion ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list productos donacion: %w", err)
	}
	defer rows.Close()
	var out []*entity.DonationProduct
	for rows.Next() {
		var p entity.DonationProduct
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Imagen, &p.Estado); err != nil {
			return nil, fmt.Errorf("scan producto donacion: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *DonationRepo) UpdateProduct(ctx context.Context, p *entity.DonationProduct) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE productos_donacion SET nombre = $2, descripcion = $3, imagen = $4, estado = $5
		WHERE id = $1`,
		p.ID, p.Nombre, p.Descripcion, p.Imagen, p.Estado)
	if err != nil {
		return fmt.Errorf("update producto donacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Producto no encontrado")
	}
	return nil
}

// DeleteProduct elimina y devuelve la fila borrada; nil si no existía.
func (r *DonationRepo) DeleteProduct(ctx context.Context, id int64) (*entity.DonationProduct, error) {
	var p entity.DonationProduct
	err := r.q.QueryRow(ctx,
		`DELETE FROM productos_donacion WHERE id = $1 RETURNING id, nombre, descripcion, imagen, estado`, id,
	).Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Imagen, &p.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete producto donacion: %w", err)
	}
	return &p, nil
}

func (r *DonationRepo) Create(ctx context.Context, d *entity.Donation) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO donaciones (nombre, telefono, correo, dia, horario, descripcion, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_donacion, created_at`,
		d.Nombre, d.Telefono, d.Correo, d.Dia, d.Horario, d.Descripcion, d.Estado,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert donacion: %w", err)
	}
	return nil
}

// List solicitudes, la más reciente primero.
func (r *DonationRepo) List(ctx context.Context) ([]*entity.Donation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id_donacion, nombre, telefono, correo, dia, horario, descripcion, estado, created_at
		FROM donaciones ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list donaciones: %w", err)
	}
	defer rows.Close()
	var out []*entity.Donation
	for rows.Next() {
		var d entity.Donation
		if err := rows.Scan(&d.ID, &d.Nombre, &d.Telefono, &d.Correo, &d.Dia, &d.Horario, &d.Descripcion, &d.Estado, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donacion: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *DonationRepo) UpdateStatus(ctx context.Context, id int64, estado string) error {
	tag, err := r.q.Exec(ctx, `UPDATE donaciones SET estado = $2 WHERE id_donacion = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado donacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Donación no encontrada")
	}
	return nil
}
