package delivery

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type DeliveryRepository interface {
	WithTx(tx *sqlx.Tx) DeliveryRepository
	Insert(ctx context.Context, dc *model.DeliveryConfirmationEntity) error
	FindByCodeForUpdate(ctx context.Context, code string, sellerInvoiceID uint64) (*model.DeliveryConfirmationEntity, error)
	FindByBuyerInvoices(ctx context.Context, buyerInvoiceIDs []uint64) ([]model.DeliveryConfirmationEntity, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.DeliveryStatus) error
	CancelPendingByInvoices(ctx context.Context, sellerInvoiceIDs []uint64) error
}

type SQL struct {
	conn sqlx.ExtContext
}

func NewDeliveryRepository(conn *sqlx.DB) DeliveryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) WithTx(tx *sqlx.Tx) DeliveryRepository {
	return &SQL{conn: tx}
}

const (
	deliveryColumns = "id, buyer_invoice_id, seller_invoice_id, delivery_code, status, created_at, updated_at"

	insertQuery         = "INSERT INTO delivery_confirmation (buyer_invoice_id, seller_invoice_id, delivery_code, status, created_at) VALUES (?, ?, ?, ?, NOW())"
	findByCodeQuery     = "SELECT " + deliveryColumns + " FROM delivery_confirmation WHERE delivery_code = ? AND seller_invoice_id = ? FOR UPDATE"
	byBuyerInvoiceQuery = "SELECT " + deliveryColumns + " FROM delivery_confirmation WHERE buyer_invoice_id IN (?) ORDER BY id"
	updateStatusQuery   = "UPDATE delivery_confirmation SET status = ?, updated_at = NOW() WHERE id = ?"
	cancelPendingQuery  = "UPDATE delivery_confirmation SET status = ?, updated_at = NOW() WHERE seller_invoice_id IN (?) AND status = ?"
)

func (r *SQL) Insert(ctx context.Context, dc *model.DeliveryConfirmationEntity) error {
	res, err := r.conn.ExecContext(ctx, insertQuery, dc.BuyerInvoiceID, dc.SellerInvoiceID, dc.DeliveryCode, dc.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	dc.ID = uint64(id)
	return nil
}

// FindByCodeForUpdate locks the matching confirmation row. nil, nil when nothing matches.
func (r *SQL) FindByCodeForUpdate(ctx context.Context, code string, sellerInvoiceID uint64) (*model.DeliveryConfirmationEntity, error) {
	var dc model.DeliveryConfirmationEntity
	if err := sqlx.GetContext(ctx, r.conn, &dc, findByCodeQuery, code, sellerInvoiceID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dc, nil
}

func (r *SQL) FindByBuyerInvoices(ctx context.Context, buyerInvoiceIDs []uint64) ([]model.DeliveryConfirmationEntity, error) {
	out := make([]model.DeliveryConfirmationEntity, 0)
	if len(buyerInvoiceIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(byBuyerInvoiceQuery, buyerInvoiceIDs)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, r.conn, &out, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.DeliveryStatus) error {
	_, err := r.conn.ExecContext(ctx, updateStatusQuery, status, id)
	return err
}

func (r *SQL) CancelPendingByInvoices(ctx context.Context, sellerInvoiceIDs []uint64) error {
	if len(sellerInvoiceIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(cancelPendingQuery, constant.DeliveryStatusCancelled, sellerInvoiceIDs, constant.DeliveryStatusPending)
	if err != nil {
		return err
	}
	_, err = r.conn.ExecContext(ctx, r.conn.Rebind(query), args...)
	return err
}
