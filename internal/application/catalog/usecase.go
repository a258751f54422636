// Package catalog contiene los casos de uso del catálogo de libros del vendedor.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/libroya-api/internal/application/dto"
	"github.com/jhoicas/libroya-api/internal/domain"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

// BookUseCase CRUD del catálogo propio de un vendedor.
type BookUseCase struct {
	bookRepo repository.BookRepository
}

// NewBookUseCase construye el caso de uso.
func NewBookUseCase(bookRepo repository.BookRepository) *BookUseCase {
	return &BookUseCase{bookRepo: bookRepo}
}

// Create publica un libro nuevo en el catálogo del vendedor.
func (uc *BookUseCase) Create(sellerID string, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if in.Title == "" || in.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	book := &entity.Book{
		ID:          uuid.New().String(),
		SellerID:    sellerID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsDigital:   in.IsDigital,
		IsAudiobook: in.IsAudiobook,
		ImageURL:    in.ImageURL,
		Status:      entity.BookActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return toBookResponse(book), nil
}

// GetByID obtiene un libro del catálogo.
func (uc *BookUseCase) GetByID(id string) (*dto.BookResponse, error) {
	book, err := uc.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.ErrNotFound
	}
	return toBookResponse(book), nil
}

// ListBySeller lista el catálogo de un vendedor con paginación.
func (uc *BookUseCase) ListBySeller(sellerID string, page dto.PageRequest) ([]*dto.BookResponse, error) {
	page.DefaultPage()
	books, err := uc.bookRepo.ListBySeller(sellerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out, nil
}

func toBookResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:          b.ID,
		SellerID:    b.SellerID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
		Stock:       b.Stock,
		IsDigital:   b.IsDigital,
		IsAudiobook: b.IsAudiobook,
		ImageURL:    b.ImageURL,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
