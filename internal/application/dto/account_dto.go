package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuyerOrderDTO un pedido en el historial del comprador.
type BuyerOrderDTO struct {
	ID            string          `json:"id"`
	PaymentStatus string          `json:"payment_status"`
	OrderStatus   string          `json:"order_status"`
	Total         decimal.Decimal `json:"total"`
	Books         []OrderBookDTO  `json:"books"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LibraryItemDTO libro comprado en la biblioteca del usuario.
// Un mismo libro puede aparecer más de una vez si se compró en pedidos distintos.
type LibraryItemDTO struct {
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	IsDigital   bool      `json:"is_digital"`
	IsAudiobook bool      `json:"is_audiobook"`
	PurchasedAt time.Time `json:"purchased_at"`
}
