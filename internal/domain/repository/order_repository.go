package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes y sus líneas.
// Las implementaciones pueden estar atadas al pool o a una transacción.
type OrderRepository interface {
	CreateHeader(ctx context.Context, userID string) (*entity.Order, error)
	AddLine(ctx context.Context, line *entity.OrderLine) error

	List(ctx context.Context) ([]*entity.OrderSummary, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.OrderWithTotal, error)
	GetByID(ctx context.Context, id int64) (*entity.OrderWithTotal, error)
	ListPurchasedProducts(ctx context.Context, orderID int64) ([]*entity.PurchasedProduct, error)
	UpdateStatus(ctx context.Context, id int64, estado string) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
	LatestID(ctx context.Context) (int64, error)

	ListLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error)
	ListAllLines(ctx context.Context) ([]*entity.OrderLine, error)
	GetLine(ctx context.Context, id int64) (*entity.OrderLine, error)
	UpdateLine(ctx context.Context, line *entity.OrderLine) error
	DeleteLine(ctx context.Context, id int64) error
}
