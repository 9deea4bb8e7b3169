package orders

import (
	"context"
	"strings"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// OrderUseCase consultas y mantenimiento de órdenes y sus líneas.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List todas las órdenes con datos del usuario y total.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummaryResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrderSummaryResponse{
			IDOrden:       o.ID,
			Fecha:         o.Fecha,
			Estado:        o.Estado,
			NombreUsuario: o.NombreUsuario,
			Email:         o.Email,
			Total:         o.Total,
		})
	}
	return &dto.OrderListResponse{Ordenes: out}, nil
}

// ListByUser órdenes de un usuario.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// GetByID una orden con su total.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NewNotFound("Orden no encontrada")
	}
	r := toOrderResponse(o)
	return &r, nil
}

// PurchasedProducts líneas de la orden con nombre de producto.
func (uc *OrderUseCase) PurchasedProducts(ctx context.Context, orderID int64) ([]dto.PurchasedProductResponse, error) {
	list, err := uc.repo.ListPurchasedProducts(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NewNotFound("No se encontraron productos para esta orden")
	}
	out := make([]dto.PurchasedProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PurchasedProductResponse{
			NombreProducto: p.NombreProducto,
			Cantidad:       p.Cantidad,
			PrecioUnitario: p.PrecioUnitario,
			Total:          p.Total,
			DetalleCamisa:  p.DetalleCamisa,
		})
	}
	return out, nil
}

// UpdateStatus cambia el estado de la orden.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		return nil, domain.NewValidationError("estado", "el estado es obligatorio")
	}
	o, err := uc.repo.UpdateStatus(ctx, id, estado)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NewNotFound("Orden no encontrada")
	}
	return &dto.OrderResponse{IDOrden: o.ID, UsuarioID: o.UserID, Fecha: o.Fecha, Estado: o.Estado}, nil
}

// Delete elimina la orden y sus líneas.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Latest id de la orden más reciente.
func (uc *OrderUseCase) Latest(ctx context.Context) (*dto.LatestOrderResponse, error) {
	id, err := uc.repo.LatestID(ctx)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, domain.NewNotFound("No hay órdenes registradas")
	}
	return &dto.LatestOrderResponse{IDOrden: id}, nil
}

// ListLines líneas de una orden, o de todas si orderID es 0.
func (uc *OrderUseCase) ListLines(ctx context.Context, orderID int64) ([]dto.OrderLineResponse, error) {
	var (
		list []*entity.OrderLine
		err  error
	)
	if orderID > 0 {
		list, err = uc.repo.ListLines(ctx, orderID)
	} else {
		list, err = uc.repo.ListAllLines(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderLineResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLineResponse(l))
	}
	return out, nil
}

// GetLine una línea por id.
func (uc *OrderUseCase) GetLine(ctx context.Context, id int64) (*dto.OrderLineResponse, error) {
	l, err := uc.repo.GetLine(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.NewNotFound("Detalle no encontrado")
	}
	r := toLineResponse(l)
	return &r, nil
}

// AddLine agrega una línea a una orden existente.
func (uc *OrderUseCase) AddLine(ctx context.Context, in dto.OrderLineRequest) (*dto.OrderLineResponse, error) {
	line, err := entity.NewOrderLine(in.OrdenID, in.ProductoID, in.Cantidad, in.PrecioUnitario, in.DetalleCamisa)
	if err != nil {
		return nil, domain.NewValidationError("", err.Error())
	}
	if err := uc.repo.AddLine(ctx, &line); err != nil {
		return nil, err
	}
	r := toLineResponse(&line)
	return &r, nil
}

// UpdateLine reemplaza los datos de una línea.
func (uc *OrderUseCase) UpdateLine(ctx context.Context, id int64, in dto.OrderLineRequest) (*dto.OrderLineResponse, error) {
	line, err := entity.NewOrderLine(in.OrdenID, in.ProductoID, in.Cantidad, in.PrecioUnitario, in.DetalleCamisa)
	if err != nil {
		return nil, domain.NewValidationError("", err.Error())
	}
	line.ID = id
	if err := uc.repo.UpdateLine(ctx, &line); err != nil {
		return nil, err
	}
	r := toLineResponse(&line)
	return &r, nil
}

// DeleteLine elimina una línea.
func (uc *OrderUseCase) DeleteLine(ctx context.Context, id int64) error {
	return uc.repo.DeleteLine(ctx, id)
}

func toOrderResponse(o *entity.OrderWithTotal) dto.OrderResponse {
	return dto.OrderResponse{IDOrden: o.ID, UsuarioID: o.UserID, Fecha: o.Fecha, Estado: o.Estado, Total: o.Total}
}

func toLineResponse(l *entity.OrderLine) dto.OrderLineResponse {
	return dto.OrderLineResponse{
		IDDetalle:      l.ID,
		OrdenID:        l.OrderID,
		ProductoID:     l.ProductID,
		Cantidad:       l.Cantidad,
		PrecioUnitario: l.PrecioUnitario,
		DetalleCamisa:  l.DetalleCamisa,
	}
}
