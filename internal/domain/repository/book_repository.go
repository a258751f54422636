package repository

import "github.com/jhoicas/libroya-api/internal/domain/entity"

// BookRepository define el puerto de persistencia para Book (DIP).
type BookRepository interface {
	Create(book *entity.Book) error
	GetByID(id string) (*entity.Book, error)
	ListBySeller(sellerID string, limit, offset int) ([]*entity.Book, error)
	// CountBySeller cuenta los libros publicados por el vendedor
	// (métrica availableBooks del dashboard).
	CountBySeller(sellerID string) (int, error)
	Update(book *entity.Book) error
	Delete(id string) error
}
