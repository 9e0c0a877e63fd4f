package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (NotificationRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNotificationRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestList_UnreadOnly(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(countBase + " AND is_read = FALSE")).WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(listBase + " AND is_read = FALSE ORDER BY id DESC LIMIT ? OFFSET ?")).
		WithArgs(uint64(3), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event", "title", "message", "is_read", "created_at"}).
			AddRow(1, 3, "order_received", "New order", "Order #40", false, time.Now()))

	items, total, err := repo.List(context.Background(), &model.NotificationFilter{UserID: 3, UnreadOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, constant.EventOrderReceived, items[0].Event)
}

func TestMarkRead_NotOwned(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs(uint64(9), uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.MarkRead(context.Background(), 3, 9)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs(uint64(9), uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(markReadQuery)).WithArgs(uint64(9), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkRead(context.Background(), 3, 9)
	assert.NoError(t, err)
	assert.True(t, ok)
}
