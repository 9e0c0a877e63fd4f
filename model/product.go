package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type ProductEntity struct {
	ID               uint64                 `db:"id" json:"id"`
	SellerID         uint64                 `db:"seller_id" json:"seller_id"`
	CategoryID       *uint64                `db:"category_id" json:"category_id,omitempty"`
	Name             string                 `db:"name" json:"name"`
	Description      string                 `db:"description" json:"description,omitempty"`
	PurchasePrice    decimal.Decimal        `db:"purchase_price" json:"purchase_price"`
	SalePrice        decimal.NullDecimal    `db:"sale_price" json:"sale_price"`
	Status           constant.ProductStatus `db:"status" json:"status"`
	IsActive         bool                   `db:"is_active" json:"is_active"`
	StockQuantity    int64                  `db:"stock_quantity" json:"stock_quantity"`
	MinOrderQuantity int64                  `db:"min_order_quantity" json:"min_order_quantity"`
	Unit             string                 `db:"unit" json:"unit"`
	Tags             []string               `db:"-" json:"tags"`
	CreatedAt        time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

// Purchasable reports whether buyers may put the product in a cart.
func (p *ProductEntity) Purchasable() bool {
	return p.Status == constant.ProductStatusApproved && p.IsActive && p.SalePrice.Valid
}

type ProductFilter struct {
	SellerID   uint64
	CategoryID uint64
	Status     constant.ProductStatus
	OnlyActive bool
	Page       int
	PerPage    int
}

type ProductListResponse struct {
	Items      []ProductEntity `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}

type ProductRequest struct {
	CategoryID       *uint64         `json:"category_id"`
	Name             string          `json:"name" validate:"required,max=255"`
	Description      string          `json:"description" validate:"max=2000"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	StockQuantity    int64           `json:"stock_quantity" validate:"gte=0"`
	MinOrderQuantity int64           `json:"min_order_quantity" validate:"gte=1"`
	Unit             string          `json:"unit" validate:"required,max=32"`
	Tags             []string        `json:"tags" validate:"max=10,dive,required,max=32"`
}

type ApproveProductRequest struct {
	SalePrice decimal.Decimal `json:"sale_price"`
}

type RejectProductRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type UpdateStockRequest struct {
	StockQuantity *int64 `json:"stock_quantity" validate:"required,gte=0"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type ProductApprovalEntity struct {
	ID        uint64                    `db:"id" json:"id"`
	ProductID uint64                    `db:"product_id" json:"product_id"`
	AdminID   uint64                    `db:"admin_id" json:"admin_id"`
	Decision  constant.ApprovalDecision `db:"decision" json:"decision"`
	SalePrice decimal.NullDecimal       `db:"sale_price" json:"sale_price"`
	Reason    string                    `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time                 `db:"created_at" json:"created_at"`
}

type CategoryEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}
