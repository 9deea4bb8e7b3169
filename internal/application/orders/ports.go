package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pilotosfah/pilotos-api/internal/domain/entity"
	"github.com/pilotosfah/pilotos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un OrderRepository atado a ella.
// Si fn devuelve error la transacción se revierte completa.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(repo repository.OrderRepository) error) error
}

// ContactLookup datos de contacto del dueño de la orden.
type ContactLookup interface {
	GetContact(ctx context.Context, userID string) (*entity.Contact, error)
}

// ProductNames resuelve nombres de producto para el resumen de la notificación.
type ProductNames interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// Notifier entrega el aviso de orden creada (correo directo o cola).
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, ev OrderCreated) error
}

// TaskDispatcher ejecuta tareas fuera del ciclo de la petición.
type TaskDispatcher interface {
	Dispatch(name string, task func(ctx context.Context) error)
}

// Customer destinatario de la notificación.
type Customer struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// OrderItem línea resumida para la notificación.
type OrderItem struct {
	ProductID      int64           `json:"idproducto"`
	Nombre         string          `json:"nombre_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Detalle        string          `json:"detalle_camisa,omitempty"`
}

// Subtotal cantidad * precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// OrderCreated evento publicado tras confirmar una orden. Customer es nil si no se pudo resolver.
type OrderCreated struct {
	OrderID   int64       `json:"orden_id"`
	UserID    string      `json:"usuario_id"`
	CreatedAt time.Time   `json:"fecha"`
	Customer  *Customer   `json:"cliente,omitempty"`
	Items     []OrderItem `json:"items"`
}

// Subtotal suma de las líneas sin impuesto.
func (e OrderCreated) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
