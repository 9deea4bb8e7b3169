package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pilotosfah/pilotos-api/internal/application/dto"
	"github.com/pilotosfah/pilotos-api/internal/domain"
	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
	"github.com/pilotosfah/pilotos-api/pkg/logger"
)

const (
	msgEmptyCart    = "No hay productos en la orden"
	msgOrderCreated = "Orden creada exitosamente"
)

// CreateOrderUseCase registra una orden con sus líneas en una sola transacción y
// dispara la notificación sin esperar su resultado.
type CreateOrderUseCase struct {
	tx       TxRunner
	contacts ContactLookup
	products ProductNames
	notifier Notifier
	tasks    TaskDispatcher
	log      *logger.Logger
	now      func() time.Time
}

// NewCreateOrderUseCase construye el caso de uso. products puede ser nil.
func NewCreateOrderUseCase(tx TxRunner, contacts ContactLookup, products ProductNames, notifier Notifier, tasks TaskDispatcher, log *logger.Logger) *CreateOrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateOrderUseCase{
		tx:       tx,
		contacts: contacts,
		products: products,
		notifier: notifier,
		tasks:    tasks,
		log:      log,
		now:      time.Now,
	}
}

// Execute crea la orden para callerUID. Un dueño distinto en el cuerpo devuelve ErrForbidden.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, callerUID string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if len(in.CartItems) == 0 {
		return nil, domain.NewValidationError("", msgEmptyCart)
	}
	owner := strings.TrimSpace(in.Owner())
	if owner == "" {
		owner = callerUID
	}
	if owner != callerUID {
		return nil, domain.ErrForbidden
	}

	lines := make([]entity.OrderLine, 0, len(in.CartItems))
	for i, it := range in.CartItems {
		line, err := entity.NewOrderLine(0, it.IDProducto, it.Cantidad, it.PrecioUnitario, it.DetalleCamisa)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("cartItems[%d]", i), err.Error())
		}
		lines = append(lines, line)
	}

	var order *entity.Order
	err := uc.tx.RunOrders(ctx, func(repo repository.OrderRepository) error {
		h, err := repo.CreateHeader(ctx, owner)
		if err != nil {
			return fmt.Errorf("insertar cabecera: %w", err)
		}
		for i := range lines {
			lines[i].OrderID = h.ID
			if err := repo.AddLine(ctx, &lines[i]); err != nil {
				return fmt.Errorf("insertar línea %d: %w", i, err)
			}
		}
		order = h
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("crear orden: %w", err)
	}

	uc.log.Info().Int64("orden_id", order.ID).Str("usuario_id", owner).Int("lineas", len(lines)).Msg("orden creada")

	ev := OrderCreated{OrderID: order.ID, UserID: strings.Clone(callerUID), CreatedAt: order.Fecha, Items: toItems(in.CartItems)}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = uc.now()
	}
	uc.tasks.Dispatch("notificar-orden", func(tctx context.Context) error {
		uc.enrich(tctx, &ev)
		return uc.notifier.NotifyOrderCreated(tctx, ev)
	})

	return &dto.CreateOrderResponse{Mensaje: msgOrderCreated, OrdenID: order.ID}, nil
}

// enrich completa cliente y nombres de producto. Los fallos sólo se registran.
func (uc *CreateOrderUseCase) enrich(ctx context.Context, ev *OrderCreated) {
	if uc.contacts != nil {
		c, err := uc.contacts.GetContact(ctx, ev.UserID)
		switch {
		case err != nil:
			uc.log.Warn().Err(err).Int64("orden_id", ev.OrderID).Msg("no se pudo obtener el contacto del cliente")
		case c != nil:
			ev.Customer = &Customer{Nombre: c.Nombre, Email: c.Email}
		}
	}

	if uc.products == nil {
		return
	}
	var missing []int64
	for _, it := range ev.Items {
		if it.Nombre == "" {
			missing = append(missing, it.ProductID)
		}
	}
	if len(missing) == 0 {
		return
	}
	names, err := uc.products.NamesByIDs(ctx, missing)
	if err != nil {
		uc.log.Warn().Err(err).Int64("orden_id", ev.OrderID).Msg("no se pudieron resolver nombres de producto")
		return
	}
	for i := range ev.Items {
		if ev.Items[i].Nombre == "" {
			ev.Items[i].Nombre = names[ev.Items[i].ProductID]
		}
	}
}

// toItems copia las cadenas: la tarea corre después de liberar el cuerpo de la petición.
func toItems(in []dto.CartItemRequest) []OrderItem {
	out := make([]OrderItem, 0, len(in))
	for _, it := range in {
		item := OrderItem{
			ProductID:      it.IDProducto,
			Nombre:         strings.Clone(strings.TrimSpace(it.NombreProducto)),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
		}
		if it.DetalleCamisa != nil {
			item.Detalle = strings.Clone(*it.DetalleCamisa)
		}
		out = append(out, item)
	}
	return out
}
