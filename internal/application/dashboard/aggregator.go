package dashboard

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
)

// SummaryResult contadores de la reducción de resumen.
// Anomalies cuenta pedidos pagados sin entrada propia en el desglose
// (inconsistencia de datos tolerada: se suma cero, no se descarta el pedido).
type SummaryResult struct {
	TotalOrders            int
	PaidAndDeliveredOrders int
	PendingPaymentOrders   int
	ProcessingOrders       int
	TotalRevenue           decimal.Decimal
	Anomalies              int
}

// sellerShare busca la ganancia del vendedor dentro del desglose del pedido.
// Búsqueda lineal con comparación de ids normalizados (TrimSpace): las entradas
// por pedido son pocas y su orden es irrelevante. Sin entrada propia devuelve
// cero; eso no es un error, el pedido sigue contando.
func sellerShare(o entity.Order, sellerID string) (decimal.Decimal, bool) {
	id := strings.TrimSpace(sellerID)
	for _, e := range o.Pricing.SellerBreakdown {
		if strings.TrimSpace(e.SellerID) == id {
			return e.Total, true
		}
	}
	return decimal.Zero, false
}

// Summarize reduce el conjunto de resumen a los contadores del dashboard.
//
// Reglas por pedido:
//   - paid: suma a TotalOrders y a TotalRevenue (la ganancia propia, cero si no
//     hay desglose); además incrementa a lo sumo uno de
//     {PaidAndDeliveredOrders, ProcessingOrders} según el estado logístico.
//   - pending: solo PendingPaymentOrders, nunca ingreso.
//   - cualquier otro estado de pago no aporta a ningún contador (el filtrado
//     upstream debería excluirlos, pero el reductor no lo asume).
//
// Un solo recorrido; las colecciones de entrada se tratan como snapshots
// inmutables durante la pasada.
func Summarize(sellerID string, orders []entity.Order) SummaryResult {
	res := SummaryResult{TotalRevenue: decimal.Zero}
	for _, o := range orders {
		switch o.PaymentStatus {
		case entity.PaymentPaid:
			res.TotalOrders++
			share, found := sellerShare(o, sellerID)
			if !found {
				res.Anomalies++
			}
			res.TotalRevenue = res.TotalRevenue.Add(share)
			if o.OrderStatus == entity.OrderDelivered {
				res.PaidAndDeliveredOrders++
			} else if o.OrderStatus == entity.OrderProcessing {
				res.ProcessingOrders++
			}
		case entity.PaymentPending:
			res.PendingPaymentOrders++
		}
	}
	return res
}

// Project construye la lista de detalle restringida a lo visible por el vendedor.
//
// Cada pedido aparece exactamente una vez (se deduplica por ID aunque haya
// llegado por más de un predicado de consulta) y la lista sale ordenada por
// CreatedAt descendente: ese orden es contrato, no accidente. Nunca devuelve nil.
func Project(sellerID string, orders []entity.Order) []dto.DashboardOrderDTO {
	views := make([]dto.DashboardOrderDTO, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		views = append(views, projectOrder(o, sellerID))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// projectOrder proyecta un pedido a la vista del vendedor: solo sus líneas
// (jamás las de otro vendedor) y su parte del desglose de precios.
func projectOrder(o entity.Order, sellerID string) dto.DashboardOrderDTO {
	share, _ := sellerShare(o, sellerID)

	id := strings.TrimSpace(sellerID)
	books := make([]dto.OrderBookDTO, 0, len(o.Items))
	for _, item := range o.Items {
		if strings.TrimSpace(item.SellerID) != id {
			continue
		}
		books = append(books, dto.OrderBookDTO{
			Title:    item.BookTitle,
			Quantity: item.Quantity,
		})
	}

	return dto.DashboardOrderDTO{
		ID:            o.ID,
		Buyer:         dto.OrderBuyerDTO{ID: o.UserID, Name: o.BuyerName},
		PaymentStatus: o.PaymentStatus,
		OrderStatus:   o.OrderStatus,
		Pricing: dto.OrderPricingDTO{
			Subtotal:       o.Pricing.Subtotal,
			DeliveryFee:    o.Pricing.DeliveryFee,
			Total:          o.Pricing.Total,
			SellerEarnings: share,
		},
		ShippingAddress: o.ShippingAddress,
		Books:           books,
		CreatedAt:       o.CreatedAt,
	}
}
