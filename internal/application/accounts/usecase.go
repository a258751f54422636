// Package accounts contiene los casos de uso de la cuenta del comprador:
// perfil, historial de pedidos y biblioteca de compras.
package accounts

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

// AccountUseCase operaciones sobre la cuenta propia del usuario autenticado.
type AccountUseCase struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderReadRepository
	bookRepo  repository.BookRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(
	userRepo repository.UserRepository,
	orderRepo repository.OrderReadRepository,
	bookRepo repository.BookRepository,
) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo, orderRepo: orderRepo, bookRepo: bookRepo}
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *AccountUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("accounts: obtener perfil: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza nombre/email y, opcionalmente, la contraseña.
// Cambiar la contraseña exige verificar la actual.
func (uc *AccountUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("accounts: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.CurrentPassword != "" && in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("accounts: actualizar perfil: %w", err)
	}
	return toUserResponse(user), nil
}

// ListMyOrders devuelve el historial de pedidos del comprador, del más
// reciente al más antiguo.
func (uc *AccountUseCase) ListMyOrders(ctx context.Context, userID string) ([]dto.BuyerOrderDTO, error) {
	orders, err := uc.orderRepo.FetchByBuyer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("accounts: historial de pedidos: %w", err)
	}
	out := make([]dto.BuyerOrderDTO, 0, len(orders))
	for _, o := range orders {
		books := make([]dto.OrderBookDTO, 0, len(o.Items))
		for _, item := range o.Items {
			books = append(books, dto.OrderBookDTO{Title: item.BookTitle, Quantity: item.Quantity})
		}
		out = append(out, dto.BuyerOrderDTO{
			ID:            o.ID,
			PaymentStatus: o.PaymentStatus,
			OrderStatus:   o.OrderStatus,
			Total:         o.Pricing.Total,
			Books:         books,
			CreatedAt:     o.CreatedAt,
		})
	}
	return out, nil
}

// GetLibrary aplana los pedidos pagados del comprador en su biblioteca de
// libros comprados. Las líneas cuyo libro ya no existe en el catálogo se
// omiten en silencio (referencia rota, no un error del request).
func (uc *AccountUseCase) GetLibrary(ctx context.Context, userID string) ([]dto.LibraryItemDTO, error) {
	orders, err := uc.orderRepo.FetchPaidByBuyer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("accounts: biblioteca: %w", err)
	}

	cache := make(map[string]*entity.Book)
	library := make([]dto.LibraryItemDTO, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			book, ok := cache[item.BookID]
			if !ok {
				book, err = uc.bookRepo.GetByID(item.BookID)
				if err != nil {
					return nil, fmt.Errorf("accounts: resolver libro: %w", err)
				}
				cache[item.BookID] = book
			}
			if book == nil {
				continue
			}
			library = append(library, dto.LibraryItemDTO{
				BookID:      book.ID,
				Title:       book.Title,
				Author:      book.Author,
				ImageURL:    book.ImageURL,
				IsDigital:   book.IsDigital,
				IsAudiobook: book.IsAudiobook,
				PurchasedAt: o.CreatedAt,
			})
		}
	}
	return library, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
