package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appcart "github.com/muhammadheryan/marketplace/application/cart"
	"github.com/muhammadheryan/marketplace/constant"
	cartmocks "github.com/muhammadheryan/marketplace/mocks/repository/cart"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo      *txmocks.TxRepository
	cartRepo    *cartmocks.CartRepository
	productRepo *productmocks.ProductRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		cartRepo:    cartmocks.NewCartRepository(t),
		productRepo: productmocks.NewProductRepository(t),
	}
}

func (f fields) app() appcart.CartApp {
	return appcart.NewCartApp(f.txRepo, f.cartRepo, f.productRepo)
}

var buyerCart = &model.CartEntity{ID: 5, BuyerID: 3}

// expectLockedCart wires the lazy cart lookup and the locked transaction around a mutation.
func (f fields) expectLockedCart() {
	f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
	f.txRepo.
		On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error { return fn(&sqlx.Tx{}) }).
		Once()
	f.cartRepo.On("WithTx", mock.Anything).Return(f.cartRepo).Once()
	f.cartRepo.On("GetByBuyerForUpdate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, errCode, ce.Type())
}

func product() *model.ProductEntity {
	return &model.ProductEntity{
		ID:               7,
		SellerID:         2,
		Name:             "Arabica Beans",
		SalePrice:        decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
		Status:           constant.ProductStatusApproved,
		IsActive:         true,
		StockQuantity:    5,
		MinOrderQuantity: 2,
	}
}

func TestCartApp_GetCart(t *testing.T) {
	f := newFields(t)
	f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
	f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return([]model.CartItemDetail{
		{ID: 1, ProductID: 7, SellerID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		{ID: 2, ProductID: 8, SellerID: 4, Quantity: 1, UnitPrice: decimal.RequireFromString("20.00")},
	}, nil).Once()

	got, err := f.app().GetCart(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.True(t, got.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, uint64(3), got.BuyerID)
}

func TestCartApp_GetCart_EmptyAfterCheckout(t *testing.T) {
	f := newFields(t)
	f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
	f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return(nil, nil).Once()

	got, err := f.app().GetCart(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.True(t, got.Total.IsZero())
}

func TestCartApp_AddItem(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		mockCall func(f fields)
		wantErr  constant.ErrorType
	}{
		{
			name:     "success: new line captures sale price",
			quantity: 2,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.On("GetItem", mock.Anything, uint64(5), uint64(7)).Return(nil, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(product(), nil).Once()
				f.cartRepo.
					On("InsertItem", mock.Anything, mock.MatchedBy(func(i *model.CartItemEntity) bool {
						return i.CartID == 5 && i.Quantity == 2 && i.UnitPrice.Equal(decimal.NewFromInt(10))
					})).
					Return(nil).
					Once()
				f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return([]model.CartItemDetail{}, nil).Once()
			},
		},
		{
			name:     "success: existing line is merged",
			quantity: 1,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.
					On("GetItem", mock.Anything, uint64(5), uint64(7)).
					Return(&model.CartItemEntity{ID: 9, CartID: 5, ProductID: 7, Quantity: 3}, nil).
					Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(product(), nil).Once()
				f.cartRepo.On("UpdateItemQuantity", mock.Anything, uint64(9), int64(4)).Return(nil).Once()
				f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return([]model.CartItemDetail{}, nil).Once()
			},
		},
		{
			name:     "error: merged quantity exceeds stock",
			quantity: 3,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.
					On("GetItem", mock.Anything, uint64(5), uint64(7)).
					Return(&model.CartItemEntity{ID: 9, Quantity: 3}, nil).
					Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(product(), nil).Once()
			},
			wantErr: constant.ErrInsufficientStock,
		},
		{
			name:     "error: below minimum order",
			quantity: 1,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.On("GetItem", mock.Anything, uint64(5), uint64(7)).Return(nil, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(product(), nil).Once()
			},
			wantErr: constant.ErrBelowMinimumOrder,
		},
		{
			name:     "error: inactive product",
			quantity: 2,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.On("GetItem", mock.Anything, uint64(5), uint64(7)).Return(nil, nil).Once()
				p := product()
				p.IsActive = false
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(p, nil).Once()
			},
			wantErr: constant.ErrProductUnavailable,
		},
		{
			name:     "error: unknown product",
			quantity: 2,
			mockCall: func(f fields) {
				f.expectLockedCart()
				f.cartRepo.On("GetItem", mock.Anything, uint64(5), uint64(7)).Return(nil, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: constant.ErrNotFound,
		},
		{
			name:     "error: zero quantity",
			quantity: 0,
			mockCall: func(f fields) {},
			wantErr:  constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().AddItem(context.Background(), 3, &model.AddCartItemRequest{ProductID: 7, Quantity: tt.quantity})
			if tt.wantErr != constant.Successful {
				assertErrCode(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(5), got.ID)
		})
	}
}

func TestCartApp_UpdateItem(t *testing.T) {
	t.Run("success: quantity replaced without refreshing price", func(t *testing.T) {
		f := newFields(t)
		f.expectLockedCart()
		f.cartRepo.
			On("GetItem", mock.Anything, uint64(5), uint64(7)).
			Return(&model.CartItemEntity{ID: 9, Quantity: 2, UnitPrice: decimal.NewFromInt(8)}, nil).
			Once()
		f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(product(), nil).Once()
		f.cartRepo.On("UpdateItemQuantity", mock.Anything, uint64(9), int64(5)).Return(nil).Once()
		f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return([]model.CartItemDetail{
			{ID: 9, ProductID: 7, Quantity: 5, UnitPrice: decimal.NewFromInt(8)},
		}, nil).Once()

		got, err := f.app().UpdateItem(context.Background(), 3, 7, 5)
		require.NoError(t, err)
		assert.True(t, got.Total.Equal(decimal.NewFromInt(40)))
	})

	t.Run("error: item not in cart", func(t *testing.T) {
		f := newFields(t)
		f.expectLockedCart()
		f.cartRepo.On("GetItem", mock.Anything, uint64(5), uint64(7)).Return(nil, nil).Once()

		_, err := f.app().UpdateItem(context.Background(), 3, 7, 5)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestCartApp_RemoveItem(t *testing.T) {
	t.Run("error: absent item", func(t *testing.T) {
		f := newFields(t)
		f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
		f.cartRepo.On("DeleteItem", mock.Anything, uint64(5), uint64(7)).Return(false, nil).Once()

		_, err := f.app().RemoveItem(context.Background(), 3, 7)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
		f.cartRepo.On("DeleteItem", mock.Anything, uint64(5), uint64(7)).Return(true, nil).Once()
		f.cartRepo.On("ListItems", mock.Anything, uint64(5)).Return([]model.CartItemDetail{}, nil).Once()

		got, err := f.app().RemoveItem(context.Background(), 3, 7)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
	})
}

func TestCartApp_ClearCart(t *testing.T) {
	f := newFields(t)
	f.cartRepo.On("GetOrCreate", mock.Anything, uint64(3)).Return(buyerCart, nil).Once()
	f.cartRepo.On("ClearItems", mock.Anything, uint64(5)).Return(errors.New("db down")).Once()

	err := f.app().ClearCart(context.Background(), 3)
	assertErrCode(t, err, constant.ErrInternal)
}
