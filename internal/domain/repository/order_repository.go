package repository

import (
	"context"
	"time"

	"github.com/jhoicas/libroya-api/internal/domain/entity"
)

// OrderReadRepository define las consultas de lectura sobre pedidos.
// Las implementaciones son read-only (no modifican datos).
type OrderReadRepository interface {
	// FetchSummaryOrders devuelve los pedidos en los que participa el vendedor
	// dentro del rango [startDate, endDate], excluyendo pedidos cancelados y
	// pedidos con reembolso completado. No hidrata comprador ni títulos.
	FetchSummaryOrders(
		ctx context.Context,
		sellerID string,
		startDate, endDate time.Time,
	) ([]entity.Order, error)

	// FetchDetailOrders aplica las mismas exclusiones que FetchSummaryOrders y
	// además restringe a paymentStatus paid o pending. Hidrata el nombre del
	// comprador y los títulos de los libros (join), ordenado por created_at DESC.
	FetchDetailOrders(
		ctx context.Context,
		sellerID string,
		startDate, endDate time.Time,
	) ([]entity.Order, error)

	// FetchByBuyer devuelve el historial de pedidos de un comprador,
	// del más reciente al más antiguo, con títulos hidratados.
	FetchByBuyer(ctx context.Context, userID string) ([]entity.Order, error)

	// FetchPaidByBuyer devuelve los pedidos pagados y no cancelados de un
	// comprador, con títulos hidratados (biblioteca de compras).
	FetchPaidByBuyer(ctx context.Context, userID string) ([]entity.Order, error)
}
