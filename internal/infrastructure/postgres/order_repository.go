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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes y detalleorden sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// CreateHeader inserta la cabecera con estado inicial y devuelve el id generado.
func (r *OrderRepo) CreateHeader(ctx context.Context, userID string) (*entity.Order, error) {
	o := entity.Order{UserID: userID}
	err := r.q.QueryRow(ctx,
		`INSERT INTO ordenes (usuario_id, estado) VALUES ($1, $2) RETURNING idorden, fecha, estado`,
		userID, entity.OrderStatusPendiente,
	).Scan(&o.ID, &o.Fecha, &o.Estado)
	if err != nil {
		return nil, fmt.Errorf("insert orden: %w", err)
	}
	return &o, nil
}

// AddLine inserta una línea y completa su id.
func (r *OrderRepo) AddLine(ctx context.Context, l *entity.OrderLine) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO detalleorden (orden_id, producto_id, cantidad, precio_unitario, detalle_camisa)
		 VALUES ($1, $2, $3, $4, $5) RETURNING iddetalle`,
		l.OrderID, l.ProductID, l.Cantidad, l.PrecioUnitario, l.DetalleCamisa,
	).Scan(&l.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert detalle: producto u orden inexistente: %w", err)
		}
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// List órdenes con nombre y email del usuario, la más reciente primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.OrderSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT o.idorden, o.fecha, o.estado, u.nombre, u.email,
		       COALESCE(SUM(d.cantidad * d.precio_unitario), 0) AS total
		FROM ordenes o
		JOIN usuarios u ON o.usuario_id = u.id
		LEFT JOIN detalleorden d ON d.orden_id = o.idorden
		GROUP BY o.idorden, u.nombre, u.email
		ORDER BY o.idorden DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	var out []*entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(&s.ID, &s.Fecha, &s.Estado, &s.NombreUsuario, &s.Email, &s.Total); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

const orderWithTotalQuery = `
	SELECT o.idorden, o.usuario_id, o.fecha, o.estado,
	       COALESCE(SUM(d.cantidad * d.precio_unitario), 0) AS total
	FROM ordenes o
	LEFT JOIN detalleorden d ON o.idorden = d.orden_id`

// ListByUser órdenes de un usuario con su total.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.OrderWithTotal, error) {
	rows, err := r.q.Query(ctx, orderWithTotalQuery+`
		WHERE o.usuario_id = $1
		GROUP BY o.idorden
		ORDER BY o.idorden DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list ordenes usuario: %w", err)
	}
	defer rows.Close()
	var out []*entity.OrderWithTotal
	for rows.Next() {
		var o entity.OrderWithTotal
		if err := rows.Scan(&o.ID, &o.UserID, &o.Fecha, &o.Estado, &o.Total); err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

// GetByID orden con total; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.OrderWithTotal, error) {
	var o entity.OrderWithTotal
	err := r.q.QueryRow(ctx, orderWithTotalQuery+`
		WHERE o.idorden = $1
		GROUP BY o.idorden`, id).Scan(&o.ID, &o.UserID, &o.Fecha, &o.Estado, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &o, nil
}

// ListPurchasedProducts líneas de la orden unidas al nombre del producto.
func (r *OrderRepo) ListPurchasedProducts(ctx context.Context, orderID int64) ([]*entity.PurchasedProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.nombre_producto, d.cantidad, d.precio_unitario,
		       d.cantidad * d.precio_unitario AS total, d.detalle_camisa
		FROM detalleorden d
		JOIN productos p ON d.producto_id = p.idproducto
		WHERE d.orden_id = $1
		ORDER BY p.nombre_producto ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list productos comprados: %w", err)
	}
	defer rows.Close()
	var out []*entity.PurchasedProduct
	for rows.Next() {
		var p entity.PurchasedProduct
		if err := rows.Scan(&p.NombreProducto, &p.Cantidad, &p.PrecioUnitario, &p.Total, &p.DetalleCamisa); err != nil {
			return nil, fmt.Errorf("scan producto comprado: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// UpdateStatus cambia el estado; nil si la orden no existe.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, estado string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx,
		`UPDATE ordenes SET estado = $2 WHERE idorden = $1 RETURNING idorden, usuario_id, fecha, estado`,
		id, estado).Scan(&o.ID, &o.UserID, &o.Fecha, &o.Estado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update estado orden: %w", err)
	}
	return &o, nil
}

// Delete elimina la orden; las líneas caen en cascada.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ordenes WHERE idorden = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orden: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Orden no encontrada")
	}
	return nil
}

// LatestID id más alto; 0 si no hay órdenes.
func (r *OrderRepo) LatestID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(idorden), 0) FROM ordenes`).Scan(&id); err != nil {
		return 0, fmt.Errorf("ultima orden: %w", err)
	}
	return id, nil
}

const lineColumns = `iddetalle, orden_id, producto_id, cantidad, precio_unitario, detalle_camisa`

func (r *OrderRepo) queryLines(ctx context.Context, sql string, args ...any) ([]*entity.OrderLine, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	var out []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Cantidad, &l.PrecioUnitario, &l.DetalleCamisa); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// ListLines líneas de una orden.
func (r *OrderRepo) ListLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	return r.queryLines(ctx, `SELECT `+lineColumns+` FROM detalleorden WHERE orden_id = $1 ORDER BY iddetalle`, orderID)
}

// ListAllLines todas las líneas.
func (r *OrderRepo) ListAllLines(ctx context.Context) ([]*entity.OrderLine, error) {
	return r.queryLines(ctx, `SELECT `+lineColumns+` FROM detalleorden ORDER BY iddetalle`)
}

// GetLine una línea; nil si no existe.
func (r *OrderRepo) GetLine(ctx context.Context, id int64) (*entity.OrderLine, error) {
	var l entity.OrderLine
	err := r.q.QueryRow(ctx, `SELECT `+lineColumns+` FROM detalleorden WHERE iddetalle = $1`, id).
		Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Cantidad, &l.PrecioUnitario, &l.DetalleCamisa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &l, nil
}

// UpdateLine reemplaza los datos de una línea.
func (r *OrderRepo) UpdateLine(ctx context.Context, l *entity.OrderLine) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE detalleorden
		SET orden_id = $2, producto_id = $3, cantidad = $4, precio_unitario = $5, detalle_camisa = $6
		WHERE iddetalle = $1`,
		l.ID, l.OrderID, l.ProductID, l.Cantidad, l.PrecioUnitario, l.DetalleCamisa)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("", "orden o producto inexistente")
		}
		return fmt.Errorf("update detalle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Detalle no encontrado")
	}
	return nil
}

// DeleteLine elimina una línea.
func (r *OrderRepo) DeleteLine(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM detalleorden WHERE iddetalle = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("Detalle no encontrado")
	}
	return nil
}
