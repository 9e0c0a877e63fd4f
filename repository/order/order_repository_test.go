package order

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (OrderRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewOrderRepository(sqlx.NewDb(db, "mysql")), mock
}

var orderColumns = []string{"id", "buyer_id", "status", "total", "created_at", "updated_at"}

func TestInsert(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertOrderQuery)).
		WithArgs(uint64(3), "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(40, 1))

	o := &model.OrderEntity{BuyerID: 3, Status: constant.OrderStatusPending, Total: decimal.NewFromInt(40)}
	require.NoError(t, repo.Insert(context.Background(), o))
	assert.Equal(t, uint64(40), o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUpdate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(getOrderQuery + " FOR UPDATE")).WithArgs(uint64(40)).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(40, 3, "pending", "40.00", time.Now(), nil))

	o, err := repo.GetByIDForUpdate(context.Background(), 40)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, constant.OrderStatusPending, o.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(getOrderQuery)).WithArgs(uint64(41)).WillReturnError(sql.ErrNoRows)

	o, err := repo.GetByID(context.Background(), 41)
	assert.NoError(t, err)
	assert.Nil(t, o)
}

func TestListByBuyer(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(listByBuyerQuery)).WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(41, 3, "cancelled", "5.00", now, now).
			AddRow(40, 3, "delivered", "40.00", now, now))

	orders, err := repo.ListByBuyer(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, constant.OrderStatusCancelled, orders[0].Status)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(updateStatusQuery)).
		WithArgs("delivered", uint64(40)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(context.Background(), 40, constant.OrderStatusDelivered))
	assert.NoError(t, mock.ExpectationsWereMet())
}
