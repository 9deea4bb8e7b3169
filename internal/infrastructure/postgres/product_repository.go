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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `idproducto, nombre_producto, descripcion, precio_unitario, cantidad, talla, estado, image_url`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioUnitario, &p.Cantidad, &p.Talla, &p.Estado, &p.ImageURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta el producto y completa su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (nombre_producto, descripcion, precio_unitario, cantidad, talla, estado, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING idproducto`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Descripcion, p.PrecioUnitario, p.Cantidad, p.Talla, p.Estado, p.ImageURL,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM productos WHERE idproducto = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List todos los productos por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY idproducto`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update reemplaza los campos del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre_producto = $2, descripcion = $3, precio_unitario = $4, cantidad = $5,
		    talla = $6, estado = $7, image_url = $8
		WHERE idproducto = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.PrecioUnitario, p.Cantidad, p.Talla, p.Estado, p.ImageURL)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Producto no encontrado")
	}
	return nil
}

// Delete elimina el producto. Si aparece en órdenes devuelve ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM productos WHERE idproducto = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("producto con órdenes asociadas: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Producto no encontrado")
	}
	return nil
}

// NamesByIDs id -> nombre_producto para los ids que existan.
func (r *ProductRepo) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT idproducto, nombre_producto FROM productos WHERE idproducto = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("nombres productos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan nombre producto: %w", err)
		}
		out[id] = name
	}
	return out, rows.Err()
}
