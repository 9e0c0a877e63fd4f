package order

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn sqlx.ExtContext
}

type OrderRepository interface {
	WithTx(tx *sqlx.Tx) OrderRepository
	Insert(ctx context.Context, order *model.OrderEntity) error
	GetByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetByIDForUpdate(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.OrderEntity, error)
	UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) WithTx(tx *sqlx.Tx) OrderRepository {
	return &SQL{conn: tx}
}

const (
	insertOrderQuery  = "INSERT INTO `order` (buyer_id, status, total, created_at) VALUES (?, ?, ?, NOW())"
	getOrderQuery     = "SELECT id, buyer_id, status, total, created_at, updated_at FROM `order` WHERE id = ?"
	listByBuyerQuery  = "SELECT id, buyer_id, status, total, created_at, updated_at FROM `order` WHERE buyer_id = ? ORDER BY id DESC"
	updateStatusQuery = "UPDATE `order` SET status = ?, updated_at = NOW() WHERE id = ?"
)

func (r *SQL) Insert(ctx context.Context, order *model.OrderEntity) error {
	res, err := r.conn.ExecContext(ctx, insertOrderQuery, order.BuyerID, order.Status, order.Total)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = uint64(id)
	return nil
}

// GetByID returns nil, nil when the order does not exist.
func (r *SQL) GetByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	return r.get(ctx, getOrderQuery, orderID)
}

func (r *SQL) GetByIDForUpdate(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	return r.get(ctx, getOrderQuery+" FOR UPDATE", orderID)
}

func (r *SQL) get(ctx context.Context, query string, orderID uint64) (*model.OrderEntity, error) {
	var o model.OrderEntity
	if err := sqlx.GetContext(ctx, r.conn, &o, query, orderID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.OrderEntity, error) {
	out := make([]model.OrderEntity, 0)
	if err := sqlx.SelectContext(ctx, r.conn, &out, listByBuyerQuery, buyerID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) UpdateStatus(ctx context.Context, orderID uint64, status constant.OrderStatus) error {
	_, err := r.conn.ExecContext(ctx, updateStatusQuery, status, orderID)
	return err
}
