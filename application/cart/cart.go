package cart

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	cartrepo "github.com/muhammadheryan/marketplace/repository/cart"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	GetCart(ctx context.Context, buyerID uint64) (*model.CartResponse, error)
	AddItem(ctx context.Context, buyerID uint64, req *model.AddCartItemRequest) (*model.CartResponse, error)
	UpdateItem(ctx context.Context, buyerID, productID uint64, quantity int64) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, buyerID, productID uint64) (*model.CartResponse, error)
	ClearCart(ctx context.Context, buyerID uint64) error
}

type cartAppImpl struct {
	txRepo      txrepo.TxRepository
	cartRepo    cartrepo.CartRepository
	productRepo productrepo.ProductRepository
}

func NewCartApp(txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, productRepo productrepo.ProductRepository) CartApp {
	return &cartAppImpl{
		txRepo:      txRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartAppImpl) GetCart(ctx context.Context, buyerID uint64) (*model.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, buyerID)
	if err != nil {
		logger.Error("[GetCart] error cartRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.view(ctx, "[GetCart]", cart)
}

// AddItem merges into an existing line. The unit price is captured on first add only.
func (s *cartAppImpl) AddItem(ctx context.Context, buyerID uint64, req *model.AddCartItemRequest) (*model.CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.mutate(ctx, buyerID, func(repo cartrepo.CartRepository, cart *model.CartEntity) error {
		item, err := repo.GetItem(ctx, cart.ID, req.ProductID)
		if err != nil {
			return err
		}

		quantity := req.Quantity
		if item != nil {
			quantity += item.Quantity
		}
		product, err := s.purchasable(ctx, req.ProductID, quantity)
		if err != nil {
			return err
		}

		if item != nil {
			return repo.UpdateItemQuantity(ctx, item.ID, quantity)
		}
		return repo.InsertItem(ctx, &model.CartItemEntity{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.SalePrice.Decimal,
		})
	})
	if err != nil {
		return nil, internal("[AddItem]", err)
	}
	return s.view(ctx, "[AddItem]", cart)
}

func (s *cartAppImpl) UpdateItem(ctx context.Context, buyerID, productID uint64, quantity int64) (*model.CartResponse, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.mutate(ctx, buyerID, func(repo cartrepo.CartRepository, cart *model.CartEntity) error {
		item, err := repo.GetItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if _, err := s.purchasable(ctx, productID, quantity); err != nil {
			return err
		}
		return repo.UpdateItemQuantity(ctx, item.ID, quantity)
	})
	if err != nil {
		return nil, internal("[UpdateItem]", err)
	}
	return s.view(ctx, "[UpdateItem]", cart)
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, buyerID, productID uint64) (*model.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, buyerID)
	if err != nil {
		logger.Error("[RemoveItem] error cartRepo.GetOrCreate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	deleted, err := s.cartRepo.DeleteItem(ctx, cart.ID, productID)
	if err != nil {
		logger.Error("[RemoveItem] error cartRepo.DeleteItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.view(ctx, "[RemoveItem]", cart)
}

func (s *cartAppImpl) ClearCart(ctx context.Context, buyerID uint64) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, buyerID)
	if err != nil {
		logger.Error("[ClearCart] error cartRepo.GetOrCreate", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		logger.Error("[ClearCart] error cartRepo.ClearItems", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// mutate runs fn with the buyer's cart row locked so concurrent adds cannot lose quantity.
func (s *cartAppImpl) mutate(ctx context.Context, buyerID uint64, fn func(repo cartrepo.CartRepository, cart *model.CartEntity) error) (*model.CartEntity, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	err = s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.cartRepo.WithTx(tx)
		if _, err := repo.GetByBuyerForUpdate(ctx, buyerID); err != nil {
			return err
		}
		return fn(repo, cart)
	})
	return cart, err
}

func (s *cartAppImpl) purchasable(ctx context.Context, productID uint64, quantity int64) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !product.Purchasable() {
		return nil, errors.SetCustomError(constant.ErrProductUnavailable)
	}
	if quantity < product.MinOrderQuantity {
		return nil, errors.SetCustomError(constant.ErrBelowMinimumOrder)
	}
	if quantity > product.StockQuantity {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return product, nil
}

func (s *cartAppImpl) view(ctx context.Context, op string, cart *model.CartEntity) (*model.CartResponse, error) {
	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		logger.Error(op+" error cartRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	lines := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.CartLine{CartItemDetail: item, Subtotal: item.LineTotal()})
	}
	return &model.CartResponse{
		ID:      cart.ID,
		BuyerID: cart.BuyerID,
		Items:   lines,
		Total:   cartrepo.Total(items),
	}, nil
}

func internal(op string, err error) error {
	if ce, ok := errors.AsCustomError(err); ok {
		return ce
	}
	logger.Error(op+" unexpected error", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
