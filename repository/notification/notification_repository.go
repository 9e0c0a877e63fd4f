package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/pagination"
)

type NotificationRepository interface {
	Insert(ctx context.Context, n *model.NotificationEntity) error
	List(ctx context.Context, filter *model.NotificationFilter) ([]model.NotificationEntity, int64, error)
	MarkRead(ctx context.Context, userID, id uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const (
	insertQuery   = `INSERT INTO notification (user_id, event, title, message, is_read, created_at) VALUES (?, ?, ?, ?, FALSE, NOW())`
	listBase      = `SELECT id, user_id, event, title, message, is_read, created_at FROM notification WHERE user_id = ?`
	countBase     = `SELECT COUNT(*) FROM notification WHERE user_id = ?`
	markReadQuery = `UPDATE notification SET is_read = TRUE WHERE id = ? AND user_id = ?`
)

func (s *SQL) Insert(ctx context.Context, n *model.NotificationEntity) error {
	res, err := s.conn.ExecContext(ctx, insertQuery, n.UserID, n.Event, n.Title, n.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}

func (s *SQL) List(ctx context.Context, filter *model.NotificationFilter) ([]model.NotificationEntity, int64, error) {
	where := ""
	if filter.UnreadOnly {
		where = " AND is_read = FALSE"
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countBase+where, filter.UserID); err != nil {
		return nil, 0, err
	}

	page, perPage := pagination.Normalize(filter.Page, filter.PerPage)
	items := make([]model.NotificationEntity, 0)
	query := listBase + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	if err := s.conn.SelectContext(ctx, &items, query, filter.UserID, perPage, pagination.Offset(page, perPage)); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// MarkRead reports false when the notification does not belong to the user.
// MySQL counts an already-read row as unaffected, so existence is checked separately.
func (s *SQL) MarkRead(ctx context.Context, userID, id uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM notification WHERE id = ? AND user_id = ?)`, id, userID); err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if _, err := s.conn.ExecContext(ctx, markReadQuery, id, userID); err != nil {
		return false, err
	}
	return true, nil
}
