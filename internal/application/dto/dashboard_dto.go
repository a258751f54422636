package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerDashboardDTO respuesta de GET /api/seller/dashboard.
//
// Los nombres JSON de este módulo son un contrato de compatibilidad con los
// consumidores existentes del endpoint (camelCase, no el snake_case del resto
// de la API): summary.totalOrders, orders[].pricing.sellerEarnings, etc.
type SellerDashboardDTO struct {
	Summary DashboardSummaryDTO `json:"summary"`
	Orders  []DashboardOrderDTO `json:"orders"`
}

// DashboardSummaryDTO contadores agregados del vendedor en la ventana consultada.
type DashboardSummaryDTO struct {
	TotalOrders            int             `json:"totalOrders"`            // solo pedidos pagados
	PaidAndDeliveredOrders int             `json:"paidAndDeliveredOrders"` // pagados y entregados
	PendingPaymentOrders   int             `json:"pendingPaymentOrders"`   // pago pendiente
	ProcessingOrders       int             `json:"processingOrders"`       // pagados y en proceso
	TotalRevenue           decimal.Decimal `json:"totalRevenue"`           // ganancia propia del vendedor, no el total del pedido
	AvailableBooks         int             `json:"availableBooks"`         // tamaño del catálogo del vendedor
}

// DashboardOrderDTO proyección de un pedido restringida a lo visible por un vendedor:
// solo sus líneas y solo su parte del desglose de precios.
type DashboardOrderDTO struct {
	ID              string            `json:"id"`
	Buyer           OrderBuyerDTO     `json:"buyer"`
	PaymentStatus   string            `json:"paymentStatus"`
	OrderStatus     string            `json:"orderStatus"`
	Pricing         OrderPricingDTO   `json:"pricing"`
	ShippingAddress string            `json:"shippingAddress"`
	Books           []OrderBookDTO    `json:"books"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// OrderBuyerDTO identidad mínima del comprador.
type OrderBuyerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderPricingDTO totales del pedido más la ganancia propia del vendedor.
type OrderPricingDTO struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Total          decimal.Decimal `json:"total"`
	SellerEarnings decimal.Decimal `json:"sellerEarnings"`
}

// OrderBookDTO línea visible en el dashboard: título y cantidad, nada más.
type OrderBookDTO struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}
