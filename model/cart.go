package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartEntity struct {
	ID        uint64    `db:"id" json:"id"`
	BuyerID   uint64    `db:"buyer_id" json:"buyer_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CartItemEntity struct {
	ID        uint64          `db:"id" json:"id"`
	CartID    uint64          `db:"cart_id" json:"cart_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// CartItemDetail is a cart line joined with the product it references.
type CartItemDetail struct {
	ID          uint64          `db:"id" json:"id"`
	CartID      uint64          `db:"cart_id" json:"-"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	SellerID    uint64          `db:"seller_id" json:"seller_id"`
	Quantity    int64           `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
}

func (c CartItemDetail) LineTotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(c.Quantity))
}

type CartLine struct {
	CartItemDetail
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	ID      uint64          `json:"id"`
	BuyerID uint64          `json:"buyer_id"`
	Items   []CartLine      `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}
