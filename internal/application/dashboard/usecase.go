package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

// UseCase construye el dashboard completo de un vendedor.
//
// Fuente de datos: OrderReadRepository y BookRepository (consultas read-only).
// El use case no toca SQL; delega todo en los repositorios.
type UseCase struct {
	orderRepo repository.OrderReadRepository
	bookRepo  repository.BookRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(orderRepo repository.OrderReadRepository, bookRepo repository.BookRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, bookRepo: bookRepo}
}

// Build es el único punto de entrada del dashboard.
//
// Tres lecturas en paralelo sobre la ventana resuelta:
//  1. FetchSummaryOrders → contadores y ganancia
//  2. FetchDetailOrders  → lista de detalle (paid/pending, hidratada)
//  3. CountBySeller      → availableBooks
//
// Cualquier fallo de repositorio aborta el request completo: el caller recibe
// o bien el par resumen+detalle consistente, o bien un error, nunca un
// resultado parcial. Las anomalías por registro (desglose ausente) no fallan:
// degradan a cero dentro de los reductores.
func (uc *UseCase) Build(
	ctx context.Context,
	sellerID, rawStart, rawEnd string,
	now time.Time,
) (*dto.SellerDashboardDTO, error) {
	win := ResolveWindow(rawStart, rawEnd, now)

	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type countResult struct {
		count int
		err   error
	}

	summaryCh := make(chan ordersResult, 1)
	detailCh := make(chan ordersResult, 1)
	booksCh := make(chan countResult, 1)

	go func() {
		orders, err := uc.orderRepo.FetchSummaryOrders(ctx, sellerID, win.Start, win.End)
		summaryCh <- ordersResult{orders, err}
	}()
	go func() {
		orders, err := uc.orderRepo.FetchDetailOrders(ctx, sellerID, win.Start, win.End)
		detailCh <- ordersResult{orders, err}
	}()
	go func() {
		count, err := uc.bookRepo.CountBySeller(sellerID)
		booksCh <- countResult{count, err}
	}()

	summarySet := <-summaryCh
	detailSet := <-detailCh
	books := <-booksCh

	if summarySet.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de resumen: %w", summarySet.err)
	}
	if detailSet.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de detalle: %w", detailSet.err)
	}
	if books.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de catálogo: %w", books.err)
	}

	summary := Summarize(sellerID, summarySet.orders)
	if summary.Anomalies > 0 {
		// Diagnóstico agregado, no por registro (sería ruido de log a escala).
		log.Debug().
			Str("seller_id", sellerID).
			Int("anomalies", summary.Anomalies).
			Msg("pedidos pagados sin desglose propio del vendedor")
	}

	return &dto.SellerDashboardDTO{
		Summary: dto.DashboardSummaryDTO{
			TotalOrders:            summary.TotalOrders,
			PaidAndDeliveredOrders: summary.PaidAndDeliveredOrders,
			PendingPaymentOrders:   summary.PendingPaymentOrders,
			ProcessingOrders:       summary.ProcessingOrders,
			TotalRevenue:           summary.TotalRevenue,
			AvailableBooks:         books.count,
		},
		Orders: Project(sellerID, detailSet.orders),
	}, nil
}
