package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	stockrepo "github.com/muhammadheryan/marketplace/repository/stock"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CatalogApp interface {
	ListProducts(ctx context.Context, page, perPage int, categoryID uint64) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64, caller model.Caller) (*model.ProductEntity, error)
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryEntity, error)

	CreateProduct(ctx context.Context, sellerID uint64, req *model.ProductRequest) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, sellerID, productID uint64, req *model.ProductRequest) (*model.ProductEntity, error)
	ListSellerProducts(ctx context.Context, sellerID uint64, page, perPage int) (*model.ProductListResponse, error)
	UpdateStock(ctx context.Context, sellerID, productID uint64, quantity int64) (*model.ProductEntity, error)
	SetActive(ctx context.Context, sellerID, productID uint64, active bool) (*model.ProductEntity, error)

	ListPendingProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	ApproveProduct(ctx context.Context, adminID, productID uint64, salePrice decimal.Decimal) (*model.ProductEntity, error)
	RejectProduct(ctx context.Context, adminID, productID uint64, reason string) (*model.ProductEntity, error)
}

type catalogAppImpl struct {
	txRepo      txrepo.TxRepository
	productRepo productrepo.ProductRepository
	stockRepo   stockrepo.StockRepository
	notifier    notificationapp.Notifier
}

func NewCatalogApp(txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository, stockRepo stockrepo.StockRepository, notifier notificationapp.Notifier) CatalogApp {
	return &catalogAppImpl{
		txRepo:      txRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		notifier:    notifier,
	}
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, page, perPage int, categoryID uint64) (*model.ProductListResponse, error) {
	return s.list(ctx, "[ListProducts]", &model.ProductFilter{
		CategoryID: categoryID,
		Status:     constant.ProductStatusApproved,
		OnlyActive: true,
		Page:       page,
		PerPage:    perPage,
	})
}

func (s *catalogAppImpl) ListSellerProducts(ctx context.Context, sellerID uint64, page, perPage int) (*model.ProductListResponse, error) {
	return s.list(ctx, "[ListSellerProducts]", &model.ProductFilter{SellerID: sellerID, Page: page, PerPage: perPage})
}

func (s *catalogAppImpl) ListPendingProducts(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	return s.list(ctx, "[ListPendingProducts]", &model.ProductFilter{Status: constant.ProductStatusPending, Page: page, PerPage: perPage})
}

func (s *catalogAppImpl) list(ctx context.Context, op string, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	filter.Page, filter.PerPage = pagination.Normalize(filter.Page, filter.PerPage)

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error(op+" error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// GetProduct hides products that are not approved from everyone but their seller and admins.
func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64, caller model.Caller) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if product.Status != constant.ProductStatusApproved &&
		caller.UserID != product.SellerID &&
		!constant.HasRole(caller.Roles, constant.RoleAdmin) {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error productRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *catalogAppImpl) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryEntity, error) {
	category, err := s.productRepo.CreateCategory(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, internal("[CreateCategory]", err)
	}
	return category, nil
}

func (s *catalogAppImpl) CreateProduct(ctx context.Context, sellerID uint64, req *model.ProductRequest) (*model.ProductEntity, error) {
	if !req.PurchasePrice.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product := &model.ProductEntity{
		SellerID:         sellerID,
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Description:      req.Description,
		PurchasePrice:    req.PurchasePrice,
		Status:           constant.ProductStatusPending,
		IsActive:         false,
		StockQuantity:    req.StockQuantity,
		MinOrderQuantity: req.MinOrderQuantity,
		Unit:             req.Unit,
		Tags:             normalizeTags(req.Tags),
	}

	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.productRepo.WithTx(tx)
		if _, err := repo.Create(ctx, product); err != nil {
			return err
		}
		return repo.ReplaceTags(ctx, product.ID, product.Tags)
	})
	if err != nil {
		return nil, internal("[CreateProduct]", err)
	}
	return product, nil
}

// UpdateProduct sends an approved product back to review when its purchase price changes.
func (s *catalogAppImpl) UpdateProduct(ctx context.Context, sellerID, productID uint64, req *model.ProductRequest) (*model.ProductEntity, error) {
	if !req.PurchasePrice.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var product *model.ProductEntity
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.productRepo.WithTx(tx)
		var err error
		if product, err = s.ownedForUpdate(ctx, repo, sellerID, productID); err != nil {
			return err
		}

		if product.Status == constant.ProductStatusApproved && !product.PurchasePrice.Equal(req.PurchasePrice) {
			product.Status = constant.ProductStatusPending
			product.SalePrice = decimal.NullDecimal{}
			product.IsActive = false
		}
		product.CategoryID = req.CategoryID
		product.Name = req.Name
		product.Description = req.Description
		product.PurchasePrice = req.PurchasePrice
		product.MinOrderQuantity = req.MinOrderQuantity
		product.Unit = req.Unit
		product.Tags = normalizeTags(req.Tags)

		if err := repo.Update(ctx, product); err != nil {
			return err
		}
		return repo.ReplaceTags(ctx, product.ID, product.Tags)
	})
	if err != nil {
		return nil, internal("[UpdateProduct]", err)
	}
	return product, nil
}

// UpdateStock locks only the stock column's row; an unchanged quantity is not rewritten.
func (s *catalogAppImpl) UpdateStock(ctx context.Context, sellerID, productID uint64, quantity int64) (*model.ProductEntity, error) {
	if quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var product *model.ProductEntity
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		// seller_id never changes, so ownership needs no lock
		if product, err = s.productRepo.WithTx(tx).GetByID(ctx, productID); err != nil {
			return err
		}
		if product == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if product.SellerID != sellerID {
			return errors.SetCustomError(constant.ErrForbidden)
		}

		stock := s.stockRepo.WithTx(tx)
		current, err := stock.GetStockForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		product.StockQuantity = quantity
		if current == quantity {
			return nil
		}
		return stock.SetStock(ctx, productID, quantity)
	})
	if err != nil {
		return nil, internal("[UpdateStock]", err)
	}
	return product, nil
}

func (s *catalogAppImpl) SetActive(ctx context.Context, sellerID, productID uint64, active bool) (*model.ProductEntity, error) {
	var product *model.ProductEntity
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.productRepo.WithTx(tx)
		var err error
		if product, err = s.ownedForUpdate(ctx, repo, sellerID, productID); err != nil {
			return err
		}
		if active && product.Status != constant.ProductStatusApproved {
			return errors.SetCustomError(constant.ErrInvalidProductStatus)
		}
		if err := repo.SetActive(ctx, productID, active); err != nil {
			return err
		}
		product.IsActive = active
		return nil
	})
	if err != nil {
		return nil, internal("[SetActive]", err)
	}
	return product, nil
}

func (s *catalogAppImpl) ApproveProduct(ctx context.Context, adminID, productID uint64, salePrice decimal.Decimal) (*model.ProductEntity, error) {
	if !salePrice.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	price := decimal.NewNullDecimal(salePrice)
	product, err := s.decide(ctx, productID, &model.ProductApprovalEntity{
		ProductID: productID,
		AdminID:   adminID,
		Decision:  constant.ApprovalDecisionApproved,
		SalePrice: price,
	}, func(p *model.ProductEntity) {
		p.Status = constant.ProductStatusApproved
		p.SalePrice = price
		p.IsActive = true
	})
	if err != nil {
		return nil, internal("[ApproveProduct]", err)
	}

	s.notifier.Notify(ctx, product.SellerID, constant.EventProductApproved,
		fmt.Sprintf("Your product %q was approved with sale price %s", product.Name, salePrice.StringFixed(2)))
	return product, nil
}

func (s *catalogAppImpl) RejectProduct(ctx context.Context, adminID, productID uint64, reason string) (*model.ProductEntity, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.decide(ctx, productID, &model.ProductApprovalEntity{
		ProductID: productID,
		AdminID:   adminID,
		Decision:  constant.ApprovalDecisionRejected,
		Reason:    reason,
	}, func(p *model.ProductEntity) {
		p.Status = constant.ProductStatusRejected
		p.SalePrice = decimal.NullDecimal{}
		p.IsActive = false
	})
	if err != nil {
		return nil, internal("[RejectProduct]", err)
	}

	s.notifier.Notify(ctx, product.SellerID, constant.EventProductRejected,
		fmt.Sprintf("Your product %q was rejected: %s", product.Name, reason))
	return product, nil
}

// decide applies a single admin decision to a pending product and records it.
func (s *catalogAppImpl) decide(ctx context.Context, productID uint64, approval *model.ProductApprovalEntity, apply func(p *model.ProductEntity)) (*model.ProductEntity, error) {
	var product *model.ProductEntity
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.productRepo.WithTx(tx)
		var err error
		if product, err = repo.GetByIDForUpdate(ctx, productID); err != nil {
			return err
		}
		if product == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if product.Status != constant.ProductStatusPending {
			return errors.SetCustomError(constant.ErrInvalidProductStatus)
		}

		apply(product)
		if err := repo.UpdateStatus(ctx, productID, product.Status, product.SalePrice, product.IsActive); err != nil {
			return err
		}
		return repo.InsertApproval(ctx, approval)
	})
	return product, err
}

func (s *catalogAppImpl) ownedForUpdate(ctx context.Context, repo productrepo.ProductRepository, sellerID, productID uint64) (*model.ProductEntity, error) {
	product, err := repo.GetByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if product.SellerID != sellerID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return product, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// internal passes domain errors through and hides everything else behind ErrInternal.
func internal(op string, err error) error {
	if ce, ok := errors.AsCustomError(err); ok {
		return ce
	}
	logger.Error(op+" unexpected error", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
