package stock

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// StockRepository guards product.stock_quantity. Callers needing atomicity bind it to a tx.
type StockRepository interface {
	WithTx(tx *sqlx.Tx) StockRepository
	GetStockForUpdate(ctx context.Context, productID uint64) (int64, error)
	DecrementStock(ctx context.Context, productID uint64, quantity int64) error
	IncrementStock(ctx context.Context, productID uint64, quantity int64) error
	SetStock(ctx context.Context, productID uint64, quantity int64) error
}

type SQL struct {
	conn sqlx.ExtContext
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) WithTx(tx *sqlx.Tx) StockRepository {
	return &SQL{conn: tx}
}

const (
	getStockForUpdateQuery = "SELECT stock_quantity FROM product WHERE id = ? FOR UPDATE"
	decrementStockQuery    = "UPDATE product SET stock_quantity = stock_quantity - ? WHERE id = ? AND stock_quantity >= ?"
	incrementStockQuery    = "UPDATE product SET stock_quantity = stock_quantity + ? WHERE id = ?"
	setStockQuery          = "UPDATE product SET stock_quantity = ?, updated_at = NOW() WHERE id = ?"
)

// GetStockForUpdate locks the product row. Missing products yield ErrNotFound.
func (r *SQL) GetStockForUpdate(ctx context.Context, productID uint64) (int64, error) {
	var qty int64
	if err := sqlx.GetContext(ctx, r.conn, &qty, getStockForUpdateQuery, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return 0, errors.SetCustomError(constant.ErrNotFound)
		}
		return 0, err
	}
	return qty, nil
}

// DecrementStock never lets stock go below zero; a short row yields ErrInsufficientStock.
func (r *SQL) DecrementStock(ctx context.Context, productID uint64, quantity int64) error {
	res, err := r.conn.ExecContext(ctx, decrementStockQuery, quantity, productID, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return nil
}

func (r *SQL) IncrementStock(ctx context.Context, productID uint64, quantity int64) error {
	_, err := r.conn.ExecContext(ctx, incrementStockQuery, quantity, productID)
	return err
}

func (r *SQL) SetStock(ctx context.Context, productID uint64, quantity int64) error {
	_, err := r.conn.ExecContext(ctx, setStockQuery, quantity, productID)
	return err
}
