package dashboard_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libroya-api/internal/application/dashboard"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
)

const (
	sellerA = "seller-a"
	sellerB = "seller-b"
)

// buildOrder helper: pedido pagado y entregado con desglose para los vendedores dados.
func buildOrder(id string, createdAt time.Time, earnings map[string]int64) entity.Order {
	var breakdown []entity.SellerEarning
	var items []entity.OrderItem
	for seller, amount := range earnings {
		breakdown = append(breakdown, entity.SellerEarning{
			SellerID: seller,
			Total:    decimal.NewFromInt(amount),
		})
		items = append(items, entity.OrderItem{
			BookID:    "book-" + seller,
			BookTitle: "Libro de " + seller,
			SellerID:  seller,
			Quantity:  1,
			Price:     decimal.NewFromInt(amount),
		})
	}
	return entity.Order{
		ID:            id,
		UserID:        "buyer-1",
		BuyerName:     "Comprador Uno",
		Items:         items,
		PaymentStatus: entity.PaymentPaid,
		OrderStatus:   entity.OrderDelivered,
		RefundStatus:  entity.RefundNone,
		Pricing: entity.OrderPricing{
			Subtotal:        decimal.NewFromInt(30),
			DeliveryFee:     decimal.NewFromInt(5),
			Total:           decimal.NewFromInt(35),
			SellerBreakdown: breakdown,
		},
		ShippingAddress: "Calle 1 # 2-3",
		CreatedAt:       createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento multi-vendedor: un pedido compartido solo expone a cada vendedor
// su propia ganancia y sus propias líneas.
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_AislamientoEntreVendedores(t *testing.T) {
	order := buildOrder("o1", testNow, map[string]int64{sellerA: 10, sellerB: 20})

	vistaA := dashboard.Project(sellerA, []entity.Order{order})
	vistaB := dashboard.Project(sellerB, []entity.Order{order})

	require.Len(t, vistaA, 1)
	require.Len(t, vistaB, 1)

	assert.True(t, vistaA[0].Pricing.SellerEarnings.Equal(decimal.NewFromInt(10)),
		"el vendedor A solo ve su ganancia")
	assert.True(t, vistaB[0].Pricing.SellerEarnings.Equal(decimal.NewFromInt(20)),
		"el vendedor B solo ve su ganancia")

	require.Len(t, vistaA[0].Books, 1, "el vendedor A solo ve sus líneas")
	assert.Equal(t, "Libro de "+sellerA, vistaA[0].Books[0].Title)
	require.Len(t, vistaB[0].Books, 1, "el vendedor B solo ve sus líneas")
	assert.Equal(t, "Libro de "+sellerB, vistaB[0].Books[0].Title)
}

func TestProject_DesgloseAusenteDegradaACero(t *testing.T) {
	order := buildOrder("o1", testNow, nil) // sin breakdown ni líneas

	vista := dashboard.Project(sellerA, []entity.Order{order})

	require.Len(t, vista, 1, "el pedido sin desglose no se excluye de la lista")
	assert.True(t, vista[0].Pricing.SellerEarnings.IsZero(), "sin entrada propia la ganancia es cero")
	assert.NotNil(t, vista[0].Books, "la lista de libros sale vacía, nunca nil")
	assert.Empty(t, vista[0].Books)
}

func TestSummarize_DesgloseAusenteSumaCeroYCuentaAnomalia(t *testing.T) {
	conDesglose := buildOrder("o1", testNow, map[string]int64{sellerA: 10})
	sinDesglose := buildOrder("o2", testNow, nil)

	res := dashboard.Summarize(sellerA, []entity.Order{conDesglose, sinDesglose})

	assert.Equal(t, 2, res.TotalOrders, "ambos pedidos pagados cuentan")
	assert.True(t, res.TotalRevenue.Equal(decimal.NewFromInt(10)), "el pedido sin desglose aporta cero")
	assert.Equal(t, 1, res.Anomalies, "el desglose ausente se registra como anomalía agregada")
}

func TestSummarize_IDsConEspaciosSeNormalizan(t *testing.T) {
	order := buildOrder("o1", testNow, nil)
	order.Pricing.SellerBreakdown = []entity.SellerEarning{
		{SellerID: "  " + sellerA + " ", Total: decimal.NewFromInt(7)},
	}

	res := dashboard.Summarize(sellerA, []entity.Order{order})
	assert.True(t, res.TotalRevenue.Equal(decimal.NewFromInt(7)),
		"la comparación de ids debe normalizar espacios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exclusividad de buckets: a lo sumo uno de {entregados, en proceso} por pedido,
// y solo si está pagado; los pendientes jamás suman ingreso.
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_BucketsExcluyentes(t *testing.T) {
	delivered := buildOrder("o1", testNow, map[string]int64{sellerA: 10})

	processing := buildOrder("o2", testNow, map[string]int64{sellerA: 20})
	processing.OrderStatus = entity.OrderProcessing

	shipped := buildOrder("o3", testNow, map[string]int64{sellerA: 30})
	shipped.OrderStatus = entity.OrderShipped // pagado pero ni entregado ni en proceso

	pending := buildOrder("o4", testNow, map[string]int64{sellerA: 40})
	pending.PaymentStatus = entity.PaymentPending
	pending.OrderStatus = entity.OrderProcessing

	res := dashboard.Summarize(sellerA, []entity.Order{delivered, processing, shipped, pending})

	assert.Equal(t, 3, res.TotalOrders, "totalOrders cuenta solo pedidos pagados")
	assert.Equal(t, 1, res.PaidAndDeliveredOrders)
	assert.Equal(t, 1, res.ProcessingOrders, "un pendiente en proceso no entra al bucket de procesando")
	assert.Equal(t, 1, res.PendingPaymentOrders)
	assert.True(t, res.TotalRevenue.Equal(decimal.NewFromInt(60)),
		"solo los pagados (10+20+30) aportan ingreso; el pendiente no")
}

func TestSummarize_EstadosDePagoExtranosNoAportan(t *testing.T) {
	failed := buildOrder("o1", testNow, map[string]int64{sellerA: 10})
	failed.PaymentStatus = entity.PaymentFailed
	refunded := buildOrder("o2", testNow, map[string]int64{sellerA: 20})
	refunded.PaymentStatus = entity.PaymentRefunded

	res := dashboard.Summarize(sellerA, []entity.Order{failed, refunded})

	assert.Zero(t, res.TotalOrders, "failed/refunded no cuentan aunque el filtrado upstream fallara")
	assert.Zero(t, res.PendingPaymentOrders)
	assert.True(t, res.TotalRevenue.IsZero())
}

func TestSummarize_ListaVacia(t *testing.T) {
	res := dashboard.Summarize(sellerA, nil)
	assert.Zero(t, res.TotalOrders)
	assert.True(t, res.TotalRevenue.IsZero(), "TotalRevenue inicia en cero, no en valor nulo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden y unicidad de la lista de detalle: created_at descendente es contrato,
// y ningún pedido aparece dos veces aunque llegue duplicado.
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_OrdenDescendenteYSinDuplicados(t *testing.T) {
	t1 := testNow.Add(-3 * time.Hour)
	t2 := testNow.Add(-2 * time.Hour)
	t3 := testNow.Add(-1 * time.Hour)

	o1 := buildOrder("o1", t1, map[string]int64{sellerA: 1})
	o2 := buildOrder("o2", t2, map[string]int64{sellerA: 2})
	o3 := buildOrder("o3", t3, map[string]int64{sellerA: 3})

	// o2 llega dos veces (dos predicados internos lo alcanzaron) y desordenado.
	vista := dashboard.Project(sellerA, []entity.Order{o1, o2, o3, o2})

	require.Len(t, vista, 3, "cada pedido aparece exactamente una vez")
	assert.Equal(t, "o3", vista[0].ID)
	assert.Equal(t, "o2", vista[1].ID)
	assert.Equal(t, "o1", vista[2].ID)
}

func TestProject_ListaVaciaNuncaNil(t *testing.T) {
	vista := dashboard.Project(sellerA, nil)
	require.NotNil(t, vista, "la lista de detalle vacía debe serializar como [], no null")
	assert.Empty(t, vista)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: tres pedidos del vendedor S con estados mixtos.
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_TresPedidosEstadosMixtos(t *testing.T) {
	t1 := testNow.Add(-3 * time.Hour)
	t2 := testNow.Add(-2 * time.Hour)
	t3 := testNow.Add(-1 * time.Hour)

	o1 := buildOrder("o1", t1, map[string]int64{sellerA: 15}) // paid + delivered
	o2 := buildOrder("o2", t2, map[string]int64{sellerA: 25}) // paid + processing
	o2.OrderStatus = entity.OrderProcessing
	o3 := buildOrder("o3", t3, nil) // pending, sin desglose
	o3.PaymentStatus = entity.PaymentPending
	o3.OrderStatus = entity.OrderProcessing

	orders := []entity.Order{o1, o2, o3}

	res := dashboard.Summarize(sellerA, orders)
	assert.Equal(t, 2, res.TotalOrders)
	assert.Equal(t, 1, res.PaidAndDeliveredOrders)
	assert.Equal(t, 1, res.ProcessingOrders)
	assert.Equal(t, 1, res.PendingPaymentOrders)
	assert.True(t, res.TotalRevenue.Equal(decimal.NewFromInt(40)), "15 + 25, el pendiente no suma")

	vista := dashboard.Project(sellerA, orders)
	require.Len(t, vista, 3, "los tres pedidos aparecen en el detalle")
	assert.True(t, vista[0].Pricing.SellerEarnings.IsZero(), "o3 (más reciente) sin desglose: cero")
	assert.True(t, vista[1].Pricing.SellerEarnings.Equal(decimal.NewFromInt(25)))
	assert.True(t, vista[2].Pricing.SellerEarnings.Equal(decimal.NewFromInt(15)))
}
