package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un pedido.
const (
	PaymentPaid     = "paid"
	PaymentPending  = "pending"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Estados logísticos de un pedido.
const (
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCanceled   = "canceled"
)

// Estados de reembolso de un pedido.
const (
	RefundNone      = "none"
	RefundPartial   = "partial"
	RefundCompleted = "completed"
)

// Order representa un pedido del marketplace. Un pedido es compartido:
// sus ítems pueden pertenecer a varios vendedores distintos, y Pricing
// registra en SellerBreakdown cuánto le corresponde a cada uno.
// Para este módulo el pedido es de solo lectura (proyección por request).
type Order struct {
	ID              string
	UserID          string
	BuyerName       string // hidratado por la consulta de detalle; vacío en la de resumen
	Items           []OrderItem
	Pricing         OrderPricing
	PaymentStatus   string // paid, pending, failed, refunded
	OrderStatus     string // processing, shipped, delivered, canceled
	RefundStatus    string // none, partial, completed
	ShippingAddress string
	CreatedAt       time.Time
}

// OrderItem es una línea del pedido: un libro de un vendedor concreto.
type OrderItem struct {
	BookID    string
	BookTitle string // hidratado por la consulta de detalle
	SellerID  string
	Quantity  int
	Price     decimal.Decimal
}

// OrderPricing totales del pedido completo más el desglose por vendedor.
// Invariante: a lo sumo una entrada de SellerBreakdown por vendedor.
type OrderPricing struct {
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	SellerBreakdown []SellerEarning
}

// SellerEarning cuánto ganó un vendedor en un pedido compartido.
type SellerEarning struct {
	SellerID string
	Total    decimal.Decimal
}
