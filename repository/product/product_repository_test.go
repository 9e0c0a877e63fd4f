package product

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "seller_id", "category_id", "name", "description", "purchase_price", "sale_price", "status",
	"is_active", "stock_quantity", "min_order_quantity", "unit", "created_at", "updated_at"}

func newRepo(t *testing.T) (ProductRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProductRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestList_PublicCatalog(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM product WHERE true AND category_id = ? AND status = ? AND is_active = TRUE")).
		WithArgs(uint64(2), "approved").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("AND category_id = ? AND status = ? AND is_active = TRUE ORDER BY id LIMIT ? OFFSET ?")).
		WithArgs(uint64(2), "approved", 5, 5).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(10, 7, 2, "Rice", "", "8.00", "10.00", "approved", true, 50, 1, "kg", now, nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT product_id, tag FROM product_tag WHERE product_id IN (?)")).
		WithArgs(uint64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "tag"}).AddRow(10, "staple"))

	items, total, err := repo.List(context.Background(), &model.ProductFilter{
		CategoryID: 2,
		Status:     constant.ProductStatusApproved,
		OnlyActive: true,
		Page:       2,
		PerPage:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.True(t, items[0].Purchasable())
	assert.Equal(t, []string{"staple"}, items[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(getProductQuery)).WithArgs(uint64(99)).WillReturnRows(sqlmock.NewRows(productCols))

	p, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(insertCategoryQuery)).WithArgs("Food").
		WillReturnError(&mysql.MySQLError{Number: 1062})

	_, err := repo.CreateCategory(context.Background(), "Food")
	assert.True(t, errors.Is(err, constant.ErrConflict))
}

func TestReplaceTags(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteTagsQuery)).WithArgs(uint64(10)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertTagQuery)).WithArgs(uint64(10), "organic").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.ReplaceTags(context.Background(), 10, []string{"organic"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
