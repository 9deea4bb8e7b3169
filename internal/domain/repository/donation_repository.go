package repository

import (
	"context"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
)

// DonationRepository persistencia de artículos para donar y solicitudes de donación.
type DonationRepository interface {
	CreateProduct(ctx context.Context, p *entity.DonationProduct) error
	ListProducts(ctx context.Context) ([]*entity.DonationProduct, error)
	UpdateProduct(ctx context.Context, p *entity.DonationProduct) error
	DeleteProduct(ctx context.Context, id int64) (*entity.DonationProduct, error)

	Create(ctx context.Context, d *entity.Donation) error
	List(ctx context.Context) ([]*entity.Donation, error)
	UpdateStatus(ctx context.Context, id int64, estado string) error
}
