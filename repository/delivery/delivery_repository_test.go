package delivery

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "buyer_invoice_id", "seller_invoice_id", "delivery_code", "status", "created_at", "updated_at"}

func newRepo(t *testing.T) (DeliveryRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDeliveryRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestFindByCodeForUpdate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(findByCodeQuery)).
		WithArgs("123456", uint64(11)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 11, 11, "123456", "PENDING", time.Now(), nil))

	dc, err := repo.FindByCodeForUpdate(context.Background(), "123456", 11)
	require.NoError(t, err)
	assert.Equal(t, constant.DeliveryStatusPending, dc.Status)
	assert.Equal(t, uint64(11), dc.SellerInvoiceID)
}

func TestFindByCodeForUpdate_WrongInvoice(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(findByCodeQuery)).
		WithArgs("123456", uint64(12)).
		WillReturnRows(sqlmock.NewRows(columns))

	dc, err := repo.FindByCodeForUpdate(context.Background(), "123456", 12)
	assert.NoError(t, err)
	assert.Nil(t, dc)
}

func TestCancelPendingByInvoices(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_confirmation SET status = ?, updated_at = NOW() WHERE seller_invoice_id IN (?, ?) AND status = ?")).
		WithArgs("CANCELLED", uint64(1), uint64(2), "PENDING").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.CancelPendingByInvoices(context.Background(), []uint64{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByBuyerInvoices_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	out, err := repo.FindByBuyerInvoices(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
