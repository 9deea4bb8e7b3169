package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// ─── En vivo ────────────────────────────────────────────────────────────────

func TestLiveStreamRepo_Latest_SinFilasDevuelveNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM envivo ORDER BY updated_at DESC").WillReturnError(pgx.ErrNoRows)

	s, err := NewLiveStreamRepository(mock).Latest(context.Background())

	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiveStreamRepo_SetAnnouncement_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE envivo SET mostrar_anuncio").
		WithArgs(int64(9), true).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewLiveStreamRepository(mock).SetAnnouncement(context.Background(), 9, true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLiveStreamRepo_Update_ConservaBandera(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery("UPDATE envivo SET titulo").
		WithArgs(int64(2), "Final", "https://youtu.be/x", "").
		WillReturnRows(pgxmock.NewRows([]string{"mostrar_anuncio", "updated_at"}).AddRow(true, now))

	s := &entity.LiveStream{ID: 2, Titulo: "Final", URL: "https://youtu.be/x"}
	require.NoError(t, NewLiveStreamRepository(mock).Update(context.Background(), s))

	assert.True(t, s.MostrarAnuncio)
	assert.Equal(t, now, s.UpdatedAt)
}

// ─── Junta directiva ────────────────────────────────────────────────────────

func TestBoardRepo_List_PorOrden(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM junta_directiva ORDER BY orden, id").
		WillReturnRows(pgxmock.NewRows([]string{"id", "nombre", "cargo", "imagen_url", "orden"}).
			AddRow(int64(1), "Carlos", "Presidente", "", 0).
			AddRow(int64(4), "María", "Tesorera", "", 1))

	list, err := NewBoardRepository(mock).List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Presidente", list[0].Cargo)
	assert.Equal(t, 1, list[1].Orden)
}

func TestBoardRepo_Delete_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM junta_directiva").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := NewBoardRepository(mock).Delete(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Categorías ─────────────────────────────────────────────────────────────

func TestCategoryRepo_Update_DevuelveSlug(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE categorias_images").
		WithArgs(int64(3), "Sub 12", "infantil", "desc", "https://cdn/x.png").
		WillReturnRows(pgxmock.NewRows([]string{"slugs"}).AddRow("sub-12"))

	c := &entity.Category{ID: 3, TitleText: "Sub 12", Tipo: "infantil", Descripcion: "desc", Image: "https://cdn/x.png"}
	require.NoError(t, NewCategoryRepository(mock).Update(context.Background(), c))

	assert.Equal(t, "sub-12", c.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepo_Update_NoExiste(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE categorias_images").
		WithArgs(int64(99), "x", "", "", "").
		WillReturnError(pgx.ErrNoRows)

	err := NewCategoryRepository(mock).Update(context.Background(), &entity.Category{ID: 99, TitleText: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepo_GetSite_SinFilaDevuelveNil(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM categorias_site WHERE id = 1").WillReturnError(pgx.ErrNoRows)

	s, err := NewCategoryRepository(mock).GetSite(context.Background())

	require.NoError(t, err)
	assert.Nil(t, s)
}
