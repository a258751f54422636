package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBookRequest entrada para publicar un libro en el catálogo.
type CreateBookRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=300"`
	Author      string          `json:"author" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=5000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	IsDigital   bool            `json:"is_digital"`
	IsAudiobook bool            `json:"is_audiobook"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// BookResponse salida de un libro del catálogo.
type BookResponse struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"seller_id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsDigital   bool            `json:"is_digital"`
	IsAudiobook bool            `json:"is_audiobook"`
	ImageURL    string          `json:"image_url"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
