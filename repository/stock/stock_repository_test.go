package stock

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (StockRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStockRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDecrementStock(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		errCode constant.ErrorType
	}{
		{name: "enough stock", rows: 1},
		{name: "not enough stock", rows: 0, errCode: constant.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectExec(regexp.QuoteMeta(decrementStockQuery)).
				WithArgs(int64(3), uint64(10), int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := repo.DecrementStock(context.Background(), 10, 3)
			if tt.errCode == constant.Successful {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.errCode))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetStockForUpdate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(getStockForUpdateQuery)).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(int64(42)))

	qty, err := repo.GetStockForUpdate(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(42), qty)
}

func TestGetStockForUpdate_Missing(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(getStockForUpdateQuery)).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}))

	_, err := repo.GetStockForUpdate(context.Background(), 10)
	assert.True(t, errors.Is(err, constant.ErrNotFound))
}

func TestWithTx_UsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sdb := sqlx.NewDb(db, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(incrementStockQuery)).WithArgs(int64(2), uint64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sdb.Beginx()
	require.NoError(t, err)
	require.NoError(t, NewStockRepository(sdb).WithTx(tx).IncrementStock(context.Background(), 5, 2))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
