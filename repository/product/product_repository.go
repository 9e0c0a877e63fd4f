package product

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/pagination"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn sqlx.ExtContext
}

type ProductRepository interface {
	WithTx(tx *sqlx.Tx) ProductRepository
	Create(ctx context.Context, p *model.ProductEntity) (*model.ProductEntity, error)
	Update(ctx context.Context, p *model.ProductEntity) error
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*model.ProductEntity, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, int64, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.ProductStatus, salePrice decimal.NullDecimal, isActive bool) error
	SetActive(ctx context.Context, id uint64, active bool) error
	ReplaceTags(ctx context.Context, productID uint64, tags []string) error
	InsertApproval(ctx context.Context, a *model.ProductApprovalEntity) error
	CreateCategory(ctx context.Context, name string) (*model.CategoryEntity, error)
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (s *SQL) WithTx(tx *sqlx.Tx) ProductRepository {
	return &SQL{conn: tx}
}

const (
	productColumns = `id, seller_id, category_id, name, description, purchase_price, sale_price, status, is_active,
stock_quantity, min_order_quantity, unit, created_at, updated_at`

	insertProductQuery = `INSERT INTO product (seller_id, category_id, name, description, purchase_price, status, is_active,
stock_quantity, min_order_quantity, unit, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateProductQuery = `UPDATE product SET category_id = ?, name = ?, description = ?, purchase_price = ?, sale_price = ?,
status = ?, is_active = ?, min_order_quantity = ?, unit = ?, updated_at = NOW() WHERE id = ?`

	getProductQuery = `SELECT ` + productColumns + ` FROM product WHERE id = ?`

	listProductBase  = `SELECT ` + productColumns + ` FROM product WHERE true`
	countProductBase = `SELECT COUNT(*) FROM product WHERE true`

	updateStatusQuery = `UPDATE product SET status = ?, sale_price = ?, is_active = ?, updated_at = NOW() WHERE id = ?`
	setActiveQuery    = `UPDATE product SET is_active = ?, updated_at = NOW() WHERE id = ?`

	deleteTagsQuery = `DELETE FROM product_tag WHERE product_id = ?`
	insertTagQuery  = `INSERT IGNORE INTO product_tag (product_id, tag) VALUES (?, ?)`
	listTagsQuery   = `SELECT product_id, tag FROM product_tag WHERE product_id IN (?) ORDER BY tag`

	insertApprovalQuery = `INSERT INTO product_approval (product_id, admin_id, decision, sale_price, reason, created_at) VALUES (?, ?, ?, ?, ?, NOW())`

	insertCategoryQuery = `INSERT INTO category (name, created_at) VALUES (?, NOW())`
	listCategoriesQuery = `SELECT id, name, created_at FROM category ORDER BY name`
)

// Create inserts a product. An unknown category yields ErrInvalidRequest.
func (s *SQL) Create(ctx context.Context, p *model.ProductEntity) (*model.ProductEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertProductQuery, p.SellerID, p.CategoryID, p.Name, p.Description, p.PurchasePrice,
		p.Status, p.IsActive, p.StockQuantity, p.MinOrderQuantity, p.Unit)
	if err != nil {
		if dberr.IsMissingReference(err) {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = uint64(id)
	return p, nil
}

func (s *SQL) Update(ctx context.Context, p *model.ProductEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery, p.CategoryID, p.Name, p.Description, p.PurchasePrice, p.SalePrice,
		p.Status, p.IsActive, p.MinOrderQuantity, p.Unit, p.ID)
	if err != nil && dberr.IsMissingReference(err) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return err
}

// GetByID returns nil, nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	return s.get(ctx, getProductQuery, id)
}

func (s *SQL) GetByIDForUpdate(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	return s.get(ctx, getProductQuery+" FOR UPDATE", id)
}

func (s *SQL) get(ctx context.Context, query string, id uint64) (*model.ProductEntity, error) {
	var p model.ProductEntity
	if err := sqlx.GetContext(ctx, s.conn, &p, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	items := []model.ProductEntity{p}
	if err := s.attachTags(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, int64, error) {
	where := ""
	args := make([]any, 0, 4)
	if filter.SellerID != 0 {
		where += " AND seller_id = ?"
		args = append(args, filter.SellerID)
	}
	if filter.CategoryID != 0 {
		where += " AND category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.OnlyActive {
		where += " AND is_active = TRUE"
	}

	var total int64
	if err := sqlx.GetContext(ctx, s.conn, &total, countProductBase+where, args...); err != nil {
		return nil, 0, err
	}

	page, perPage := pagination.Normalize(filter.Page, filter.PerPage)
	query := listProductBase + where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, perPage, pagination.Offset(page, perPage))

	items := make([]model.ProductEntity, 0)
	if err := sqlx.SelectContext(ctx, s.conn, &items, query, args...); err != nil {
		return nil, 0, err
	}
	if err := s.attachTags(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) attachTags(ctx context.Context, items []model.ProductEntity) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uint64, len(items))
	for i := range items {
		ids[i] = items[i].ID
		items[i].Tags = []string{}
	}

	query, args, err := sqlx.In(listTagsQuery, ids)
	if err != nil {
		return err
	}
	var rows []struct {
		ProductID uint64 `db:"product_id"`
		Tag       string `db:"tag"`
	}
	if err := sqlx.SelectContext(ctx, s.conn, &rows, s.conn.Rebind(query), args...); err != nil {
		return err
	}

	byProduct := make(map[uint64][]string, len(items))
	for _, r := range rows {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r.Tag)
	}
	for i := range items {
		if tags, ok := byProduct[items[i].ID]; ok {
			items[i].Tags = tags
		}
	}
	return nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.ProductStatus, salePrice decimal.NullDecimal, isActive bool) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, salePrice, isActive, id)
	return err
}

func (s *SQL) SetActive(ctx context.Context, id uint64, active bool) error {
	_, err := s.conn.ExecContext(ctx, setActiveQuery, active, id)
	return err
}

func (s *SQL) ReplaceTags(ctx context.Context, productID uint64, tags []string) error {
	if _, err := s.conn.ExecContext(ctx, deleteTagsQuery, productID); err != nil {
		return err
	}
	for _, tag := range tags {
		if _, err := s.conn.ExecContext(ctx, insertTagQuery, productID, tag); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) InsertApproval(ctx context.Context, a *model.ProductApprovalEntity) error {
	res, err := s.conn.ExecContext(ctx, insertApprovalQuery, a.ProductID, a.AdminID, a.Decision, a.SalePrice, a.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// CreateCategory yields ErrConflict when the name is taken.
func (s *SQL) CreateCategory(ctx context.Context, name string) (*model.CategoryEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertCategoryQuery, name)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.CategoryEntity{ID: uint64(id), Name: name}, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	out := make([]model.CategoryEntity, 0)
	if err := sqlx.SelectContext(ctx, s.conn, &out, listCategoriesQuery); err != nil {
		return nil, err
	}
	return out, nil
}
