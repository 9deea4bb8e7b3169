// Package pdf genera el comprobante de compra que se adjunta al correo del cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pilotos FAH          │  Orden #id + Fecha           │
//	│  CLIENTE: Nombre + email                                     │
//	│  TABLA: Producto | Talla | Nombre | Número | Cant | P.Unit   │
//	│  TOTALES: Subtotal / ISV 15% / TOTAL                         │
//	│  FOOTER: QR con la referencia + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pilotosfah/pilotos-api/internal/application/notify"
)

var _ notify.ReceiptRenderer = (*ReceiptGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 11, Green: 37, Blue: 84}
	colorAccent  = &props.Color{Red: 200, Green: 16, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa notify.ReceiptRenderer con Maroto v2.
type ReceiptGenerator struct {
	org string
}

// NewReceiptGenerator construye el generador. org aparece en el encabezado.
func NewReceiptGenerator(org string) *ReceiptGenerator {
	if org == "" {
		org = "Pilotos FAH"
	}
	return &ReceiptGenerator{org: org}
}

// RenderReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) RenderReceipt(ctx context.Context, r notify.Receipt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Comprobante orden #%d", r.OrderID), true).
		WithAuthor(g.org, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReceiptGenerator) headerRow(r notify.Receipt) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.org, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Comprobante de compra", props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Orden #%d", r.OrderID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorAccent, Top: 1,
			}),
			text.New("Fecha: "+r.Fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func customerRow(r notify.Receipt) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(r.Cliente, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(nonEmpty(r.Email, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Talla", 1, align.Center),
		h("Nombre", 2, align.Left),
		h("Número", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

func tableRows(lines []notify.ReceiptLine) []core.Row {
	out := make([]core.Row, 0, len(lines))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, l := range lines {
		out = append(out, row.New(7).Add(
			cell(l.Producto, 4, align.Left),
			cell(l.Detalle.Talla, 1, align.Center),
			cell(l.Detalle.Nombre, 2, align.Left),
			cell(l.Detalle.Numero, 1, align.Center),
			cell(fmt.Sprintf("%d", l.Cantidad), 1, align.Center),
			cell(notify.Money(l.Subtotal), 3, align.Right),
		))
	}
	return out
}

func totalsRow(r notify.Receipt) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label("ISV 15%:", 7),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 2, Top: 13}),
		),
		col.New(3).Add(
			value(notify.Money(r.Subtotal), 1),
			value(notify.Money(r.Impuesto), 7),
			text.New(notify.Money(r.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 1, Top: 13}),
		),
	)
}

func footerRow(r notify.Receipt) core.Row {
	return row.New(34).Add(
		col.New(3).Add(code.NewQr(fmt.Sprintf("PILOTOS-ORDEN-%d", r.OrderID), props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Gracias por apoyar al club.", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary}),
			text.New("Presente este comprobante al retirar su pedido. Los precios incluyen ISV.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
