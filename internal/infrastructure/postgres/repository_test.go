package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// ─── TxRunner ───────────────────────────────────────────────────────────────

func TestTxRunner_RollbackSiFallaUnaLinea(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO ordenes").
		WithArgs("uid-1", entity.OrderStatusPendiente).
		WillReturnRows(pgxmock.NewRows([]string{"idorden", "fecha", "estado"}).
			AddRow(int64(7), time.Now(), entity.OrderStatusPendiente))
	mock.ExpectQuery("INSERT INTO detalleorden").
		WithArgs(int64(7), int64(99), 1, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("violates foreign key constraint"))
	mock.ExpectRollback()

	runner := NewTxRunner(mock)
	err := runner.RunOrders(context.Background(), func(repo repository.OrderRepository) error {
		o, err := repo.CreateHeader(context.Background(), "uid-1")
		if err != nil {
			return err
		}
		line, err := entity.NewOrderLine(o.ID, 99, 1, decimal.NewFromInt(350), nil)
		if err != nil {
			return err
		}
		return repo.AddLine(context.Background(), &line)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert detalle")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_ErrorAlIniciar(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool cerrado"))

	called := false
	err := NewTxRunner(mock).RunOrders(context.Background(), func(repository.OrderRepository) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─── Usuarios ───────────────────────────────────────────────────────────────

func TestUserRepo_GetRoleByEmail(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT rol FROM usuarios").
		WithArgs("admin@pilotos.hn").
		WillReturnRows(pgxmock.NewRows([]string{"rol"}).AddRow(entity.RoleAdmin))

	rol, err := NewUserRepository(mock).GetRoleByEmail(context.Background(), "admin@pilotos.hn")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, rol)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetRoleByEmail_SinFila(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT rol FROM usuarios").
		WithArgs("nadie@pilotos.hn").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetRoleByEmail(context.Background(), "nadie@pilotos.hn")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_GetContact_SinFilaDevuelveNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT nombre, email FROM usuarios").
		WithArgs("uid-x").
		WillReturnError(pgx.ErrNoRows)

	c, err := NewUserRepository(mock).GetContact(context.Background(), "uid-x")

	require.NoError(t, err)
	assert.Nil(t, c)
}

// ─── Órdenes ────────────────────────────────────────────────────────────────

func TestOrderRepo_Delete_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM ordenes").
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewOrderRepository(mock).Delete(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderRepo_LatestID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("SELECT COALESCE\\(MAX\\(idorden\\), 0\\) FROM ordenes").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(12)))

	id, err := NewOrderRepository(mock).LatestID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

// ─── Contenido ──────────────────────────────────────────────────────────────

func TestTestimonialRepo_SetFeatured_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE testimonios SET destacado").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewTestimonialRepository(mock).SetFeatured(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepo_Update_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("UPDATE eventos").
		WithArgs(int64(3), "Torneo", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := NewEventRepository(mock).Update(context.Background(), &entity.Event{ID: 3, Nombre: "Torneo"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepo_NamesByIDs_VacioNoConsulta(t *testing.T) {
	mock := newMock(t)

	names, err := NewProductRepository(mock).NamesByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Delete_ConOrdenes(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM productos").
		WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := NewProductRepository(mock).Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrConflict)
}
