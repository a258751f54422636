// Package pdf implementa el render del reporte PDF del dashboard del vendedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del vendedor │ Período del reporte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pedidos / entregados / pendientes / ganancia      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Comprador | Pago | Estado | Ganancia        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/libroya-api/internal/application/dashboard"
	"github.com/jhoicas/libroya-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ dashboard.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa dashboard.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(
	_ context.Context,
	sellerName string,
	win dashboard.Window,
	report *dto.SellerDashboardDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dashboard del vendedor", true).
		WithAuthor(sellerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sellerName, win))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, o := range report.Orders {
		m.AddRows(orderRow(o))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del vendedor (izq) y período (der).
func headerRow(sellerName string, win dashboard.Window) core.Row {
	period := fmt.Sprintf("%s — %s", win.Start.Format("02/01/2006"), win.End.Format("02/01/2006"))
	return row.New(14).Add(
		col.New(7).Add(
			text.New(sellerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard de ventas", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{Size: 8, Align: align.Right, Color: colorGray}),
			text.New(period, props.Text{Size: 10, Top: 5, Align: align.Right, Style: fontstyle.Bold}),
		),
	)
}

// summaryRows: los seis contadores del resumen en dos filas de tres.
func summaryRows(s dto.DashboardSummaryDTO) []core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray}),
			text.New(value, props.Text{Size: 11, Top: 4, Style: fontstyle.Bold}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			metric("Pedidos pagados", fmt.Sprintf("%d", s.TotalOrders)),
			metric("Ganancia total", s.TotalRevenue.StringFixed(2)),
			metric("Libros publicados", fmt.Sprintf("%d", s.AvailableBooks)),
		),
		row.New(12).Add(
			metric("Entregados", fmt.Sprintf("%d", s.PaidAndDeliveredOrders)),
			metric("En proceso", fmt.Sprintf("%d", s.ProcessingOrders)),
			metric("Pago pendiente", fmt.Sprintf("%d", s.PendingPaymentOrders)),
		),
	}
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 8, Style: fontstyle.Bold, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(3, "Comprador"),
		header(2, "Pago"),
		header(2, "Estado"),
		header(3, "Ganancia"),
	)
}

func orderRow(o dto.DashboardOrderDTO) core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: alignment}))
	}
	return row.New(6).Add(
		cell(2, o.CreatedAt.Format("02/01/2006"), align.Left),
		cell(3, o.Buyer.Name, align.Left),
		cell(2, o.PaymentStatus, align.Left),
		cell(2, o.OrderStatus, align.Left),
		cell(3, o.Pricing.SellerEarnings.StringFixed(2), align.Right),
	)
}
