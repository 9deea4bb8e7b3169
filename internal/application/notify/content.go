package notify

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pilotosfah/pilotos-api/internal/application/orders"
)

// TaxRate impuesto sobre ventas incluido en el precio.
var TaxRate = decimal.RequireFromString("0.15")

var (
	reTalla       = regexp.MustCompile(`(?i)talla\s*:\s*([A-Za-z0-9+]+)`)
	reTallaSuelta = regexp.MustCompile(`(?i)\b(4XL|3XL|2XL|XL|L|M|S|XS)\b`)
	reNombre      = regexp.MustCompile(`(?i)nombre\s*:\s*([^,]+?)(?:\s+numero|\s*$)`)
	reNumero      = regexp.MustCompile(`(?i)numero\s*:\s*([0-9]+)`)
)

// SplitTax separa el impuesto incluido en total: impuesto = total*0.15, subtotal = total - impuesto.
func SplitTax(total decimal.Decimal) (subtotal, tax decimal.Decimal) {
	tax = total.Mul(TaxRate)
	return total.Sub(tax), tax
}

// ShirtDetail personalización extraída de detalle_camisa.
type ShirtDetail struct {
	Talla  string
	Nombre string
	Numero string
}

// ParseShirtDetail interpreta textos como "Talla: XL, Nombre: Pérez Numero: 7". Lo ausente queda en "-".
func ParseShirtDetail(s string) ShirtDetail {
	d := ShirtDetail{Talla: "-", Nombre: "-", Numero: "-"}
	if m := reTalla.FindStringSubmatch(s); m != nil {
		d.Talla = m[1]
	} else if m := reTallaSuelta.FindStringSubmatch(s); m != nil {
		d.Talla = m[1]
	}
	if m := reNombre.FindStringSubmatch(s); m != nil {
		if n := strings.TrimSpace(m[1]); n != "" {
			d.Nombre = n
		}
	}
	if m := reNumero.FindStringSubmatch(s); m != nil {
		d.Numero = m[1]
	}
	return d
}

// ReceiptLine línea lista para mostrar.
type ReceiptLine struct {
	Producto       string
	Detalle        ShirtDetail
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// Receipt resumen de compra compartido por el correo y el PDF.
type Receipt struct {
	OrderID  int64
	Fecha    time.Time
	Cliente  string
	Email    string
	Lines    []ReceiptLine
	Subtotal decimal.Decimal
	Impuesto decimal.Decimal
	Total    decimal.Decimal
}

// NewReceipt arma el recibo de una orden creada.
func NewReceipt(ev orders.OrderCreated) Receipt {
	r := Receipt{OrderID: ev.OrderID, Fecha: ev.CreatedAt, Cliente: "amigo/a"}
	if ev.Customer != nil {
		if ev.Customer.Nombre != "" {
			r.Cliente = ev.Customer.Nombre
		}
		r.Email = ev.Customer.Email
	}
	for _, it := range ev.Items {
		nombre := it.Nombre
		if nombre == "" {
			nombre = "Producto #" + strconv.FormatInt(it.ProductID, 10)
		}
		r.Lines = append(r.Lines, ReceiptLine{
			Producto:       nombre,
			Detalle:        ParseShirtDetail(it.Detalle),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal(),
		})
	}
	r.Total = ev.Subtotal()
	r.Subtotal, r.Impuesto = SplitTax(r.Total)
	return r
}

// Money formato "L. 1234.50".
func Money(d decimal.Decimal) string {
	return "L. " + d.StringFixed(2)
}
