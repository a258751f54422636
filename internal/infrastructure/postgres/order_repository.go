package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/libroya-api/internal/domain/entity"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

var _ repository.OrderReadRepository = (*OrderRepo)(nil)

// OrderRepo consultas de solo lectura sobre pedidos del marketplace.
//
// Un pedido vive en tres tablas: orders (cabecera + totales),
// order_items (líneas, cada una con su seller_id) y order_seller_breakdown
// (ganancia por vendedor). La hidratación de líneas y desgloses se hace en
// lote con = ANY($1) para evitar N+1 por pedido.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// FetchSummaryOrders devuelve los pedidos del vendedor en la ventana,
// excluyendo cancelados y reembolsos completados. Solo hidrata el desglose
// por vendedor (lo único que necesita la reducción de resumen).
func (r *OrderRepo) FetchSummaryOrders(
	ctx context.Context,
	sellerID string,
	startDate, endDate time.Time,
) ([]entity.Order, error) {
	const query = `
	SELECT o.id, o.user_id, '' AS buyer_name,
	       o.payment_status, o.order_status, o.refund_status,
	       o.subtotal, o.delivery_fee, o.total, o.shipping_address, o.created_at
	FROM orders o
	WHERE EXISTS (
	        SELECT 1 FROM order_items i
	        WHERE i.order_id = o.id AND i.seller_id = $1
	      )
	  AND o.order_status  <> 'canceled'
	  AND o.refund_status <> 'completed'
	  AND o.created_at BETWEEN $2 AND $3`

	orders, err := r.queryOrders(ctx, query, sellerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("orders.FetchSummaryOrders: %w", err)
	}
	if err := r.attachBreakdowns(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.FetchSummaryOrders desglose: %w", err)
	}
	return orders, nil
}

// FetchDetailOrders aplica las mismas exclusiones que el resumen, restringe a
// paid/pending y además hidrata nombre del comprador, líneas y títulos.
// El orden created_at DESC es contrato de la lista de detalle.
func (r *OrderRepo) FetchDetailOrders(
	ctx context.Context,
	sellerID string,
	startDate, endDate time.Time,
) ([]entity.Order, error) {
	const query = `
	SELECT o.id, o.user_id, COALESCE(u.name, '') AS buyer_name,
	       o.payment_status, o.order_status, o.refund_status,
	       o.subtotal, o.delivery_fee, o.total, o.shipping_address, o.created_at
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id
	WHERE EXISTS (
	        SELECT 1 FROM order_items i
	        WHERE i.order_id = o.id AND i.seller_id = $1
	      )
	  AND o.payment_status IN ('paid', 'pending')
	  AND o.order_status  <> 'canceled'
	  AND o.refund_status <> 'completed'
	  AND o.created_at BETWEEN $2 AND $3
	ORDER BY o.created_at DESC`

	orders, err := r.queryOrders(ctx, query, sellerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("orders.FetchDetailOrders: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.FetchDetailOrders líneas: %w", err)
	}
	if err := r.attachBreakdowns(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.FetchDetailOrders desglose: %w", err)
	}
	return orders, nil
}

// FetchByBuyer historial completo del comprador, del más reciente al más antiguo.
func (r *OrderRepo) FetchByBuyer(ctx context.Context, userID string) ([]entity.Order, error) {
	const query = `
	SELECT o.id, o.user_id, '' AS buyer_name,
	       o.payment_status, o.order_status, o.refund_status,
	       o.subtotal, o.delivery_fee, o.total, o.shipping_address, o.created_at
	FROM orders o
	WHERE o.user_id = $1
	ORDER BY o.created_at DESC`

	orders, err := r.queryOrders(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.FetchByBuyer: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.FetchByBuyer líneas: %w", err)
	}
	return orders, nil
}

// FetchPaidByBuyer pedidos pagados y no cancelados del comprador (biblioteca).
func (r *OrderRepo) FetchPaidByBuyer(ctx context.Context, userID string) ([]entity.Order, error) {
	const query = `
	SELECT o.id, o.user_id, '' AS buyer_name,
	       o.payment_status, o.order_status, o.refund_status,
	       o.subtotal, o.delivery_fee, o.total, o.shipping_address, o.created_at
	FROM orders o
	WHERE o.user_id = $1
	  AND o.payment_status = 'paid'
	  AND o.order_status <> 'canceled'
	ORDER BY o.created_at DESC`

	orders, err := r.queryOrders(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("orders.FetchPaidByBuyer: %w", err)
	}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, fmt.Errorf("orders.FetchPaidByBuyer líneas: %w", err)
	}
	return orders, nil
}

// queryOrders ejecuta una consulta de cabeceras y escanea las filas.
func (r *OrderRepo) queryOrders(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.BuyerName,
			&o.PaymentStatus, &o.OrderStatus, &o.RefundStatus,
			&o.Pricing.Subtotal, &o.Pricing.DeliveryFee, &o.Pricing.Total,
			&o.ShippingAddress, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems hidrata las líneas de los pedidos en un solo round-trip.
// LEFT JOIN con books: una referencia rota deja el título vacío, no rompe la fila.
func (r *OrderRepo) attachItems(ctx context.Context, orders []entity.Order) error {
	ids := orderIDs(orders)
	if len(ids) == 0 {
		return nil
	}
	const query = `
	SELECT i.order_id, i.book_id, COALESCE(b.title, '') AS book_title,
	       i.seller_id, i.quantity, i.price
	FROM order_items i
	LEFT JOIN books b ON b.id = i.book_id
	WHERE i.order_id = ANY($1)
	ORDER BY i.order_id, i.id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[string][]entity.OrderItem, len(orders))
	for rows.Next() {
		var orderID string
		var item entity.OrderItem
		if err := rows.Scan(&orderID, &item.BookID, &item.BookTitle, &item.SellerID, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for idx := range orders {
		orders[idx].Items = byOrder[orders[idx].ID]
	}
	return nil
}

// attachBreakdowns hidrata el desglose de ganancia por vendedor en lote.
func (r *OrderRepo) attachBreakdowns(ctx context.Context, orders []entity.Order) error {
	ids := orderIDs(orders)
	if len(ids) == 0 {
		return nil
	}
	const query = `
	SELECT order_id, seller_id, total
	FROM order_seller_breakdown
	WHERE order_id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byOrder := make(map[string][]entity.SellerEarning, len(orders))
	for rows.Next() {
		var orderID string
		var earning entity.SellerEarning
		if err := rows.Scan(&orderID, &earning.SellerID, &earning.Total); err != nil {
			return fmt.Errorf("scan seller breakdown: %w", err)
		}
		byOrder[orderID] = append(byOrder[orderID], earning)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for idx := range orders {
		orders[idx].Pricing.SellerBreakdown = byOrder[orders[idx].ID]
	}
	return nil
}

func orderIDs(orders []entity.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}
