package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/libroya-api/internal/domain"
	"github.com/jhoicas/libroya-api/internal/domain/entity"
	"github.com/jhoicas/libroya-api/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)

// BookRepo implementación del puerto BookRepository sobre PostgreSQL.
type BookRepo struct {
	pool *pgxpool.Pool
}

// NewBookRepository construye el adaptador de persistencia para libros.
func NewBookRepository(pool *pgxpool.Pool) *BookRepo {
	return &BookRepo{pool: pool}
}

const bookColumns = `id, seller_id, title, author, description, price, stock, is_digital, is_audiobook, image_url, status, created_at, updated_at`

// Create persiste un libro nuevo.
func (r *BookRepo) Create(book *entity.Book) error {
	query := `
		INSERT INTO books (` + bookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		book.ID, book.SellerID, book.Title, book.Author, book.Description,
		book.Price, book.Stock, book.IsDigital, book.IsAudiobook, book.ImageURL,
		book.Status, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID obtiene un libro por ID. Devuelve (nil, nil) si no existe.
func (r *BookRepo) GetByID(id string) (*entity.Book, error) {
	var b entity.Book
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+bookColumns+` FROM books WHERE id = $1`, id,
	).Scan(
		&b.ID, &b.SellerID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Stock,
		&b.IsDigital, &b.IsAudiobook, &b.ImageURL, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

// ListBySeller lista el catálogo de un vendedor con paginación.
func (r *BookRepo) ListBySeller(sellerID string, limit, offset int) ([]*entity.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books WHERE seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, sellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.SellerID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Stock,
			&b.IsDigital, &b.IsAudiobook, &b.ImageURL, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// CountBySeller cuenta los libros publicados por el vendedor.
func (r *BookRepo) CountBySeller(sellerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM books WHERE seller_id = $1`, sellerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

// Update actualiza los campos editables de un libro.
func (r *BookRepo) Update(book *entity.Book) error {
	query := `
		UPDATE books SET title = $2, author = $3, description = $4, price = $5, stock = $6,
			is_digital = $7, is_audiobook = $8, image_url = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		book.ID, book.Title, book.Author, book.Description, book.Price, book.Stock,
		book.IsDigital, book.IsAudiobook, book.ImageURL, book.Status, book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete elimina un libro por ID.
func (r *BookRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
