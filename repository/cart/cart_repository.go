package cart

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
)

type CartRepository interface {
	WithTx(tx *sqlx.Tx) CartRepository
	GetOrCreate(ctx context.Context, buyerID uint64) (*model.CartEntity, error)
	GetByBuyerForUpdate(ctx context.Context, buyerID uint64) (*model.CartEntity, error)
	ListItems(ctx context.Context, cartID uint64) ([]model.CartItemDetail, error)
	GetItem(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error)
	InsertItem(ctx context.Context, item *model.CartItemEntity) error
	UpdateItemQuantity(ctx context.Context, itemID uint64, quantity int64) error
	DeleteItem(ctx context.Context, cartID, productID uint64) (bool, error)
	ClearItems(ctx context.Context, cartID uint64) error
}

type SQL struct {
	conn sqlx.ExtContext
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

func (s *SQL) WithTx(tx *sqlx.Tx) CartRepository {
	return &SQL{conn: tx}
}

const (
	ensureCartQuery       = `INSERT IGNORE INTO cart (buyer_id, created_at) VALUES (?, NOW())`
	getCartQuery          = `SELECT id, buyer_id, created_at FROM cart WHERE buyer_id = ?`
	getCartForUpdateQuery = getCartQuery + ` FOR UPDATE`

	listItemsQuery = `SELECT ci.id, ci.cart_id, ci.product_id, p.name AS product_name, p.seller_id, ci.quantity, ci.unit_price
FROM cart_item ci JOIN product p ON p.id = ci.product_id
WHERE ci.cart_id = ? ORDER BY ci.id`

	getItemQuery    = `SELECT id, cart_id, product_id, quantity, unit_price FROM cart_item WHERE cart_id = ? AND product_id = ?`
	insertItemQuery = `INSERT INTO cart_item (cart_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`
	updateItemQuery = `UPDATE cart_item SET quantity = ? WHERE id = ?`
	deleteItemQuery = `DELETE FROM cart_item WHERE cart_id = ? AND product_id = ?`
	clearItemsQuery = `DELETE FROM cart_item WHERE cart_id = ?`
)

// GetOrCreate returns the buyer's cart, creating it on first use.
func (s *SQL) GetOrCreate(ctx context.Context, buyerID uint64) (*model.CartEntity, error) {
	if _, err := s.conn.ExecContext(ctx, ensureCartQuery, buyerID); err != nil {
		return nil, err
	}
	var c model.CartEntity
	if err := sqlx.GetContext(ctx, s.conn, &c, getCartQuery, buyerID); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByBuyerForUpdate locks the cart row. nil, nil when the buyer has no cart.
func (s *SQL) GetByBuyerForUpdate(ctx context.Context, buyerID uint64) (*model.CartEntity, error) {
	var c model.CartEntity
	if err := sqlx.GetContext(ctx, s.conn, &c, getCartForUpdateQuery, buyerID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) ListItems(ctx context.Context, cartID uint64) ([]model.CartItemDetail, error) {
	items := make([]model.CartItemDetail, 0)
	if err := sqlx.SelectContext(ctx, s.conn, &items, listItemsQuery, cartID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetItem(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error) {
	var it model.CartItemEntity
	if err := sqlx.GetContext(ctx, s.conn, &it, getItemQuery, cartID, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (s *SQL) InsertItem(ctx context.Context, item *model.CartItemEntity) error {
	res, err := s.conn.ExecContext(ctx, insertItemQuery, item.CartID, item.ProductID, item.Quantity, item.UnitPrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = uint64(id)
	return nil
}

func (s *SQL) UpdateItemQuantity(ctx context.Context, itemID uint64, quantity int64) error {
	_, err := s.conn.ExecContext(ctx, updateItemQuery, quantity, itemID)
	return err
}

func (s *SQL) DeleteItem(ctx context.Context, cartID, productID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteItemQuery, cartID, productID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) ClearItems(ctx context.Context, cartID uint64) error {
	_, err := s.conn.ExecContext(ctx, clearItemsQuery, cartID)
	return err
}

// Total sums the line totals of items.
func Total(items []model.CartItemDetail) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
