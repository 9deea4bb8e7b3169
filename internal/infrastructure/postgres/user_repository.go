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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la tabla usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nombre, email, rol, fecha_creacion`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.Rol, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserta el perfil. Email repetido -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `INSERT INTO usuarios (id, nombre, email, rol, fecha_creacion) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Email, u.Rol, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por UID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetRoleByEmail rol almacenado para el email.
func (r *UserRepo) GetRoleByEmail(ctx context.Context, email string) (string, error) {
	var rol string
	err := r.q.QueryRow(ctx, `SELECT rol FROM usuarios WHERE lower(email) = lower($1) LIMIT 1`, email).Scan(&rol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("get rol: %w", err)
	}
	return rol, nil
}

// GetContact nombre y email del usuario; nil si no existe.
func (r *UserRepo) GetContact(ctx context.Context, id string) (*entity.Contact, error) {
	var c entity.Contact
	err := r.q.QueryRow(ctx, `SELECT nombre, email FROM usuarios WHERE id = $1 LIMIT 1`, id).Scan(&c.Nombre, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contacto: %w", err)
	}
	return &c, nil
}

// List todos los usuarios por fecha de creación.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY fecha_creacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateName cambia el nombre; nil si el usuario no existe.
func (r *UserRepo) UpdateName(ctx context.Context, id, nombre string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`UPDATE usuarios SET nombre = $2 WHERE id = $1 RETURNING `+userColumns, id, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update nombre: %w", err)
	}
	return u, nil
}

// UpdateRole cambia el rol; nil si el usuario no existe.
func (r *UserRepo) UpdateRole(ctx context.Context, id, rol string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx,
		`UPDATE usuarios SET rol = $2 WHERE id = $1 RETURNING `+userColumns, id, rol))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update rol: %w", err)
	}
	return u, nil
}

// Delete elimina el perfil (las órdenes caen en cascada).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
