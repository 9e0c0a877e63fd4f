package user

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

type SQL struct {
	conn sqlx.ExtContext
}

type UserRepository interface {
	WithTx(tx *sqlx.Tx) UserRepository
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetRoles(ctx context.Context, userID uint64) ([]string, error)
	AssignRole(ctx context.Context, userID uint64, role string) error
	RevokeRole(ctx context.Context, userID uint64, role string) (bool, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfileEntity, error)
	UpsertProfile(ctx context.Context, profile *model.UserProfileEntity) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (s *SQL) WithTx(tx *sqlx.Tx) UserRepository {
	return &SQL{conn: tx}
}

const (
	insertUserQuery = `INSERT INTO user (name, email, phone, password_hash, created_at) VALUES (?, NULLIF(?, ''), ?, ?, NOW())`
	getUserBase     = `SELECT id, name, COALESCE(email, '') AS email, phone, password_hash, created_at, updated_at FROM user WHERE true`

	getRolesQuery = `SELECT r.name FROM user_role ur JOIN role r ON r.id = ur.role_id WHERE ur.user_id = ? ORDER BY r.name`
	assignRole    = `INSERT INTO user_role (user_id, role_id) SELECT ?, r.id FROM role r WHERE r.name = ?`
	revokeRole    = `DELETE ur FROM user_role ur JOIN role r ON r.id = ur.role_id WHERE ur.user_id = ? AND r.name = ?`

	getProfileQuery = `SELECT user_id, address, city, postal_code, updated_at FROM user_profile WHERE user_id = ?`
	upsertProfile   = `INSERT INTO user_profile (user_id, address, city, postal_code, updated_at) VALUES (?, ?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE address = VALUES(address), city = VALUES(city), postal_code = VALUES(postal_code), updated_at = NOW()`
)

// Create inserts a user. A duplicate email or phone yields ErrCredentialExists.
func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := sqlx.GetContext(ctx, s.conn, &entity, query, args...); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetRoles(ctx context.Context, userID uint64) ([]string, error) {
	roles := make([]string, 0)
	if err := sqlx.SelectContext(ctx, s.conn, &roles, getRolesQuery, userID); err != nil {
		return nil, err
	}
	return roles, nil
}

// AssignRole grants a role. ErrRoleAlreadyAssigned when held, ErrNotFound when user or role is unknown.
func (s *SQL) AssignRole(ctx context.Context, userID uint64, role string) error {
	res, err := s.conn.ExecContext(ctx, assignRole, userID, role)
	if err != nil {
		switch {
		case dberr.IsDuplicate(err):
			return errors.SetCustomError(constant.ErrRoleAlreadyAssigned)
		case dberr.IsMissingReference(err):
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *SQL) RevokeRole(ctx context.Context, userID uint64, role string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, revokeRole, userID, role)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) GetProfile(ctx context.Context, userID uint64) (*model.UserProfileEntity, error) {
	var profile model.UserProfileEntity
	if err := sqlx.GetContext(ctx, s.conn, &profile, getProfileQuery, userID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *SQL) UpsertProfile(ctx context.Context, profile *model.UserProfileEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertProfile, profile.UserID, profile.Address, profile.City, profile.PostalCode)
	return err
}
