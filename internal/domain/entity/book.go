package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de publicación de un libro.
const (
	BookActive   = "active"
	BookInactive = "inactive"
)

// Book representa un libro publicado por un vendedor en el catálogo.
type Book struct {
	ID          string
	SellerID    string
	Title       string
	Author      string
	Description string
	Price       decimal.Decimal
	Stock       int
	IsDigital   bool
	IsAudiobook bool
	ImageURL    string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
