package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libroya-api/internal/application/dashboard"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio (en memoria, sin DB).
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	summaryOrders []entity.Order
	detailOrders  []entity.Order
	summaryErr    error
	detailErr     error

	// última ventana recibida, para verificar el paso de la resolución
	gotStart, gotEnd time.Time
}

func (f *fakeOrderRepo) FetchSummaryOrders(_ context.Context, _ string, start, end time.Time) ([]entity.Order, error) {
	f.gotStart, f.gotEnd = start, end
	return f.summaryOrders, f.summaryErr
}

func (f *fakeOrderRepo) FetchDetailOrders(_ context.Context, _ string, _, _ time.Time) ([]entity.Order, error) {
	return f.detailOrders, f.detailErr
}

func (f *fakeOrderRepo) FetchByBuyer(_ context.Context, _ string) ([]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FetchPaidByBuyer(_ context.Context, _ string) ([]entity.Order, error) {
	return nil, nil
}

type fakeBookRepo struct {
	count    int
	countErr error
}

func (f *fakeBookRepo) Create(_ *entity.Book) error            { return nil }
func (f *fakeBookRepo) GetByID(_ string) (*entity.Book, error) { return nil, nil }
func (f *fakeBookRepo) ListBySeller(_ string, _, _ int) ([]*entity.Book, error) {
	return nil, nil
}
func (f *fakeBookRepo) CountBySeller(_ string) (int, error) { return f.count, f.countErr }
func (f *fakeBookRepo) Update(_ *entity.Book) error         { return nil }
func (f *fakeBookRepo) Delete(_ string) error               { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Build: ensamblado completo resumen + detalle + catálogo.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_EnsamblaResumenDetalleYCatalogo(t *testing.T) {
	paid := buildOrder("o1", testNow.Add(-time.Hour), map[string]int64{sellerA: 15})
	pending := buildOrder("o2", testNow, nil)
	pending.PaymentStatus = entity.PaymentPending
	pending.OrderStatus = entity.OrderProcessing

	orderRepo := &fakeOrderRepo{
		summaryOrders: []entity.Order{paid, pending},
		detailOrders:  []entity.Order{paid, pending},
	}
	bookRepo := &fakeBookRepo{count: 7}

	uc := dashboard.NewUseCase(orderRepo, bookRepo)
	out, err := uc.Build(context.Background(), sellerA, "", "", testNow)

	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, out.Summary.TotalOrders)
	assert.Equal(t, 1, out.Summary.PaidAndDeliveredOrders)
	assert.Equal(t, 1, out.Summary.PendingPaymentOrders)
	assert.Zero(t, out.Summary.ProcessingOrders)
	assert.True(t, out.Summary.TotalRevenue.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 7, out.Summary.AvailableBooks)

	require.Len(t, out.Orders, 2)
	assert.Equal(t, "o2", out.Orders[0].ID, "detalle ordenado del más reciente al más antiguo")
	assert.Equal(t, "o1", out.Orders[1].ID)
}

func TestBuild_PropagaVentanaResuelta(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	uc := dashboard.NewUseCase(orderRepo, &fakeBookRepo{})

	_, err := uc.Build(context.Background(), sellerA, "2024-03-01", "2024-03-10", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), orderRepo.gotStart)
	assert.Equal(t, 10, orderRepo.gotEnd.Day(), "el fin de la ventana cae dentro del día pedido")
	assert.Equal(t, 23, orderRepo.gotEnd.Hour(), "el día final entra completo (fin de día inclusivo)")
}

func TestBuild_SinPedidosDevuelveEstructuraVacia(t *testing.T) {
	uc := dashboard.NewUseCase(&fakeOrderRepo{}, &fakeBookRepo{})

	out, err := uc.Build(context.Background(), sellerA, "", "", testNow)

	require.NoError(t, err)
	assert.Zero(t, out.Summary.TotalOrders)
	assert.True(t, out.Summary.TotalRevenue.IsZero())
	require.NotNil(t, out.Orders, "sin pedidos la lista es vacía, no nula")
	assert.Empty(t, out.Orders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos duros: un error de cualquiera de las tres lecturas aborta el request
// completo, sin resultado parcial.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_FalloDeResumenAbortaTodo(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := dashboard.NewUseCase(&fakeOrderRepo{summaryErr: boom}, &fakeBookRepo{count: 3})

	out, err := uc.Build(context.Background(), sellerA, "", "", testNow)

	require.Error(t, err)
	assert.Nil(t, out, "nunca se entrega un dashboard parcial")
	assert.ErrorIs(t, err, boom, "el error original queda envuelto, no tragado")
}

func TestBuild_FalloDeDetalleAbortaTodo(t *testing.T) {
	boom := errors.New("timeout")
	uc := dashboard.NewUseCase(&fakeOrderRepo{detailErr: boom}, &fakeBookRepo{})

	out, err := uc.Build(context.Background(), sellerA, "", "", testNow)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

func TestBuild_FalloDeConteoAbortaTodo(t *testing.T) {
	boom := errors.New("tabla inexistente")
	uc := dashboard.NewUseCase(&fakeOrderRepo{}, &fakeBookRepo{countErr: boom})

	out, err := uc.Build(context.Background(), sellerA, "", "", testNow)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}
