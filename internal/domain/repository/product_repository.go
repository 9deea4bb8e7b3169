package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// NamesByIDs devuelve id -> nombre para los productos existentes.
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
