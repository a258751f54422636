package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/libroya-api/internal/application/accounts"
	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) Delete(id string) error      { delete(f.users, id); return nil }
func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.GetByEmail(email)
}

type fakeOrderRepo struct {
	paidOrders []entity.Order
}

func (f *fakeOrderRepo) FetchSummaryOrders(_ context.Context, _ string, _, _ time.Time) ([]entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FetchDetailOrders(_ context.Context, _ string, _, _ time.Time) ([]entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FetchByBuyer(_ context.Context, _ string) ([]entity.Order, error) {
	return f.paidOrders, nil
}
func (f *fakeOrderRepo) FetchPaidByBuyer(_ context.Context, _ string) ([]entity.Order, error) {
	return f.paidOrders, nil
}

type fakeBookRepo struct {
	books map[string]*entity.Book
	gets  int
}

func (f *fakeBookRepo) Create(_ *entity.Book) error { return nil }
func (f *fakeBookRepo) GetByID(id string) (*entity.Book, error) {
	f.gets++
	return f.books[id], nil
}
func (f *fakeBookRepo) ListBySeller(_ string, _, _ int) ([]*entity.Book, error) { return nil, nil }
func (f *fakeBookRepo) CountBySeller(_ string) (int, error)                     { return 0, nil }
func (f *fakeBookRepo) Update(_ *entity.Book) error                             { return nil }
func (f *fakeBookRepo) Delete(_ string) error                                   { return nil }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProfile_UsuarioInexistente(t *testing.T) {
	uc := accounts.NewAccountUseCase(
		&fakeUserRepo{users: map[string]*entity.User{}},
		&fakeOrderRepo{},
		&fakeBookRepo{},
	)

	_, err := uc.GetProfile("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_CambioDePasswordExigeLaActual(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "ana@ejemplo.com", Name: "Ana", PasswordHash: hashOf(t, "correcta")},
	}}
	uc := accounts.NewAccountUseCase(users, &fakeOrderRepo{}, &fakeBookRepo{})

	_, err := uc.UpdateProfile("u1", dto.UpdateProfileRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.UpdateProfile("u1", dto.UpdateProfileRequest{
		Name:            "Ana María",
		CurrentPassword: "correcta",
		NewPassword:     "nueva",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.Name)

	guardado := users.users["u1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("nueva")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Biblioteca de compras
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLibrary_OmiteReferenciasRotasYCacheaLibros(t *testing.T) {
	purchasedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		{
			ID:        "o1",
			CreatedAt: purchasedAt,
			Items: []entity.OrderItem{
				{BookID: "b1", Quantity: 1, Price: decimal.NewFromInt(10)},
				{BookID: "b-borrado", Quantity: 1, Price: decimal.NewFromInt(5)},
			},
		},
		{
			ID:        "o2",
			CreatedAt: purchasedAt.Add(time.Hour),
			Items: []entity.OrderItem{
				{BookID: "b1", Quantity: 1, Price: decimal.NewFromInt(10)}, // recompra del mismo libro
			},
		},
	}
	bookRepo := &fakeBookRepo{books: map[string]*entity.Book{
		"b1": {ID: "b1", Title: "Cien años", Author: "G. García Márquez", IsDigital: true},
	}}
	uc := accounts.NewAccountUseCase(
		&fakeUserRepo{users: map[string]*entity.User{}},
		&fakeOrderRepo{paidOrders: orders},
		bookRepo,
	)

	library, err := uc.GetLibrary(context.Background(), "buyer-1")
	require.NoError(t, err)

	require.Len(t, library, 2, "la línea con libro borrado se omite, las demás quedan")
	assert.Equal(t, "Cien años", library[0].Title)
	assert.True(t, library[0].IsDigital)
	assert.Equal(t, purchasedAt, library[0].PurchasedAt)

	assert.Equal(t, 2, bookRepo.gets, "cada libro se resuelve una sola vez (cache por request)")
}

func TestListMyOrders_MapeaTitulosYTotales(t *testing.T) {
	orders := []entity.Order{
		{
			ID:            "o1",
			PaymentStatus: entity.PaymentPaid,
			OrderStatus:   entity.OrderDelivered,
			Pricing:       entity.OrderPricing{Total: decimal.NewFromInt(35)},
			Items: []entity.OrderItem{
				{BookTitle: "Rayuela", Quantity: 2},
			},
			CreatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		},
	}
	uc := accounts.NewAccountUseCase(
		&fakeUserRepo{users: map[string]*entity.User{}},
		&fakeOrderRepo{paidOrders: orders},
		&fakeBookRepo{},
	)

	out, err := uc.ListMyOrders(context.Background(), "buyer-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(35)))
	require.Len(t, out[0].Books, 1)
	assert.Equal(t, "Rayuela", out[0].Books[0].Title)
	assert.Equal(t, 2, out[0].Books[0].Quantity)
}
