package invoice

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type InvoiceRepository interface {
	WithTx(tx *sqlx.Tx) InvoiceRepository
	Insert(ctx context.Context, inv *model.InvoiceEntity) error
	InsertItems(ctx context.Context, invoiceID uint64, items []model.InvoiceItemEntity) error
	GetByID(ctx context.Context, id uint64) (*model.InvoiceEntity, error)
	FindByOrder(ctx context.Context, orderID uint64) ([]model.InvoiceEntity, error)
	FindBySeller(ctx context.Context, sellerID uint64) ([]model.InvoiceEntity, error)
	FindByBuyer(ctx context.Context, buyerID uint64) ([]model.InvoiceEntity, error)
	ListItems(ctx context.Context, invoiceIDs []uint64) ([]model.InvoiceItemEntity, error)
	UpdateStatus(ctx context.Context, ids []uint64, status constant.InvoiceStatus) error
}

type SQL struct {
	conn sqlx.ExtContext
}

func NewInvoiceRepository(conn *sqlx.DB) InvoiceRepository {
	return &SQL{conn: conn}
}

func (r *SQL) WithTx(tx *sqlx.Tx) InvoiceRepository {
	return &SQL{conn: tx}
}

const (
	invoiceColumns = "id, order_id, buyer_id, seller_id, total_amount, status, created_at, updated_at"

	insertInvoiceQuery = "INSERT INTO invoice (order_id, buyer_id, seller_id, total_amount, status, created_at) VALUES (?, ?, ?, ?, ?, NOW())"
	insertItemQuery    = "INSERT INTO invoice_item (invoice_id, product_id, quantity, unit_price, total_price) VALUES (?, ?, ?, ?, ?)"
	getInvoiceQuery    = "SELECT " + invoiceColumns + " FROM invoice WHERE id = ?"
	byOrderQuery       = "SELECT " + invoiceColumns + " FROM invoice WHERE order_id = ? ORDER BY seller_id"
	bySellerQuery      = "SELECT " + invoiceColumns + " FROM invoice WHERE seller_id = ? ORDER BY id DESC"
	byBuyerQuery       = "SELECT " + invoiceColumns + " FROM invoice WHERE buyer_id = ? ORDER BY id DESC"
	listItemsQuery     = "SELECT id, invoice_id, product_id, quantity, unit_price, total_price FROM invoice_item WHERE invoice_id IN (?) ORDER BY id"
	updateStatusQuery  = "UPDATE invoice SET status = ?, updated_at = NOW() WHERE id IN (?)"
)

func (r *SQL) Insert(ctx context.Context, inv *model.InvoiceEntity) error {
	res, err := r.conn.ExecContext(ctx, insertInvoiceQuery, inv.OrderID, inv.BuyerID, inv.SellerID, inv.TotalAmount, inv.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = uint64(id)
	return nil
}

func (r *SQL) InsertItems(ctx context.Context, invoiceID uint64, items []model.InvoiceItemEntity) error {
	for i := range items {
		items[i].InvoiceID = invoiceID
		res, err := r.conn.ExecContext(ctx, insertItemQuery, invoiceID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice, items[i].TotalPrice)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		items[i].ID = uint64(id)
	}
	return nil
}

// GetByID returns nil, nil when the invoice does not exist.
func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.InvoiceEntity, error) {
	var inv model.InvoiceEntity
	if err := sqlx.GetContext(ctx, r.conn, &inv, getInvoiceQuery, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *SQL) FindByOrder(ctx context.Context, orderID uint64) ([]model.InvoiceEntity, error) {
	return r.find(ctx, byOrderQuery, orderID)
}

func (r *SQL) FindBySeller(ctx context.Context, sellerID uint64) ([]model.InvoiceEntity, error) {
	return r.find(ctx, bySellerQuery, sellerID)
}

func (r *SQL) FindByBuyer(ctx context.Context, buyerID uint64) ([]model.InvoiceEntity, error) {
	return r.find(ctx, byBuyerQuery, buyerID)
}

func (r *SQL) find(ctx context.Context, query string, arg uint64) ([]model.InvoiceEntity, error) {
	out := make([]model.InvoiceEntity, 0)
	if err := sqlx.SelectContext(ctx, r.conn, &out, query, arg); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) ListItems(ctx context.Context, invoiceIDs []uint64) ([]model.InvoiceItemEntity, error) {
	out := make([]model.InvoiceItemEntity, 0)
	if len(invoiceIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(listItemsQuery, invoiceIDs)
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, r.conn, &out, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) UpdateStatus(ctx context.Context, ids []uint64, status constant.InvoiceStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(updateStatusQuery, status, ids)
	if err != nil {
		return err
	}
	_, err = r.conn.ExecContext(ctx, r.conn.Rebind(query), args...)
	return err
}

func IDs(invoices []model.InvoiceEntity) []uint64 {
	ids := make([]uint64, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	return ids
}

// Details pairs each invoice with its items, keeping the invoice order.
func Details(invoices []model.InvoiceEntity, items []model.InvoiceItemEntity) []model.InvoiceDetail {
	byInvoice := make(map[uint64][]model.InvoiceItemEntity, len(invoices))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}

	out := make([]model.InvoiceDetail, 0, len(invoices))
	for _, inv := range invoices {
		lines := byInvoice[inv.ID]
		if lines == nil {
			lines = []model.InvoiceItemEntity{}
		}
		out = append(out, model.InvoiceDetail{InvoiceEntity: inv, Items: lines})
	}
	return out
}

// AllPaid reports whether every invoice is paid, counting the settled ids as paid
// even when the slice was read before their update.
func AllPaid(invoices []model.InvoiceEntity, settled ...uint64) bool {
	paid := make(map[uint64]bool, len(settled))
	for _, id := range settled {
		paid[id] = true
	}
	for _, inv := range invoices {
		if !paid[inv.ID] && inv.Status != constant.InvoiceStatusPaid {
			return false
		}
	}
	return true
}
