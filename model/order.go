package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type OrderEntity struct {
	ID        uint64               `db:"id" json:"id"`
	BuyerID   uint64               `db:"buyer_id" json:"buyer_id"`
	Status    constant.OrderStatus `db:"status" json:"status"`
	Total     decimal.Decimal      `db:"total" json:"total"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

type OrderDetail struct {
	OrderEntity
	Invoices []InvoiceDetail `json:"invoices"`
}

type InvoiceEntity struct {
	ID          uint64                 `db:"id" json:"id"`
	OrderID     uint64                 `db:"order_id" json:"order_id"`
	BuyerID     uint64                 `db:"buyer_id" json:"buyer_id"`
	SellerID    uint64                 `db:"seller_id" json:"seller_id"`
	TotalAmount decimal.Decimal        `db:"total_amount" json:"total_amount"`
	Status      constant.InvoiceStatus `db:"status" json:"status"`
	CreatedAt   time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

type InvoiceItemEntity struct {
	ID         uint64          `db:"id" json:"id"`
	InvoiceID  uint64          `db:"invoice_id" json:"invoice_id"`
	ProductID  uint64          `db:"product_id" json:"product_id"`
	Quantity   int64           `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
}

type InvoiceDetail struct {
	InvoiceEntity
	Items        []InvoiceItemEntity `json:"items"`
	DeliveryCode string              `json:"delivery_code,omitempty"`
}

type DeliveryConfirmationEntity struct {
	ID              uint64                  `db:"id" json:"id"`
	BuyerInvoiceID  uint64                  `db:"buyer_invoice_id" json:"buyer_invoice_id"`
	SellerInvoiceID uint64                  `db:"seller_invoice_id" json:"seller_invoice_id"`
	DeliveryCode    string                  `db:"delivery_code" json:"-"`
	Status          constant.DeliveryStatus `db:"status" json:"status"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

type ConfirmDeliveryRequest struct {
	DeliveryCode    string `json:"delivery_code" validate:"required,numeric"`
	SellerInvoiceID uint64 `json:"seller_invoice_id" validate:"required"`
}
