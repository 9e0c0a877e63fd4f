package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appcatalog "github.com/muhammadheryan/marketplace/application/catalog"
	"github.com/muhammadheryan/marketplace/constant"
	notificationmocks "github.com/muhammadheryan/marketplace/mocks/application/notification"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	stockmocks "github.com/muhammadheryan/marketplace/mocks/repository/stock"
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
	productRepo *productmocks.ProductRepository
	stockRepo   *stockmocks.StockRepository
	notifier    *notificationmocks.Notifier
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		productRepo: productmocks.NewProductRepository(t),
		stockRepo:   stockmocks.NewStockRepository(t),
		notifier:    notificationmocks.NewNotifier(t),
	}
}

func (f fields) app() appcatalog.CatalogApp {
	return appcatalog.NewCatalogApp(f.txRepo, f.productRepo, f.stockRepo, f.notifier)
}

func (f fields) expectTx() {
	f.txRepo.
		On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error { return fn(&sqlx.Tx{}) }).
		Once()
	f.productRepo.On("WithTx", mock.Anything).Return(f.productRepo).Maybe()
	f.stockRepo.On("WithTx", mock.Anything).Return(f.stockRepo).Maybe()
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, errCode, ce.Type())
}

func approvedProduct() *model.ProductEntity {
	return &model.ProductEntity{
		ID:               7,
		SellerID:         2,
		Name:             "Arabica Beans",
		PurchasePrice:    decimal.RequireFromString("8.00"),
		SalePrice:        decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
		Status:           constant.ProductStatusApproved,
		IsActive:         true,
		StockQuantity:    20,
		MinOrderQuantity: 1,
		Unit:             "kg",
	}
}

func pendingProduct() *model.ProductEntity {
	p := approvedProduct()
	p.Status = constant.ProductStatusPending
	p.SalePrice = decimal.NullDecimal{}
	p.IsActive = false
	return p
}

func TestCatalogApp_ListProducts(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		mockCall func(f fields)
		want     *model.ProductListResponse
		wantErr  constant.ErrorType
	}{
		{
			name:    "success: only approved and active products with normalized paging",
			page:    0,
			perPage: 500,
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything, &model.ProductFilter{
						CategoryID: 3,
						Status:     constant.ProductStatusApproved,
						OnlyActive: true,
						Page:       constant.DefaultPage,
						PerPage:    constant.MaxPerPage,
					}).
					Return([]model.ProductEntity{*approvedProduct()}, int64(1), nil).
					Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductEntity{*approvedProduct()},
				TotalCount: 1,
				Page:       constant.DefaultPage,
				PerPage:    constant.MaxPerPage,
			},
		},
		{
			name:    "error: repository failure",
			page:    1,
			perPage: 10,
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("db down")).
					Once()
			},
			wantErr: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ListProducts(context.Background(), tt.page, tt.perPage, 3)
			if tt.wantErr != constant.Successful {
				assertErrCode(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogApp_GetProduct(t *testing.T) {
	tests := []struct {
		name    string
		product *model.ProductEntity
		caller  model.Caller
		wantErr constant.ErrorType
	}{
		{
			name:    "success: approved product is public",
			product: approvedProduct(),
		},
		{
			name:    "success: seller sees own pending product",
			product: pendingProduct(),
			caller:  model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
		},
		{
			name:    "success: admin sees pending product",
			product: pendingProduct(),
			caller:  model.Caller{UserID: 1, Roles: []string{constant.RoleAdmin}},
		},
		{
			name:    "error: pending product hidden from buyers",
			product: pendingProduct(),
			caller:  model.Caller{UserID: 9, Roles: []string{constant.RoleBuyer}},
			wantErr: constant.ErrNotFound,
		},
		{
			name:    "error: missing product",
			wantErr: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(tt.product, nil).Once()

			got, err := f.app().GetProduct(context.Background(), 7, tt.caller)
			if tt.wantErr != constant.Successful {
				assertErrCode(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.product, got)
		})
	}
}

func TestCatalogApp_CreateProduct(t *testing.T) {
	t.Run("success: product starts pending and inactive", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.
			On("Create", mock.Anything, mock.AnythingOfType("*model.ProductEntity")).
			Return(func(ctx context.Context, p *model.ProductEntity) (*model.ProductEntity, error) {
				p.ID = 11
				return p, nil
			}).
			Once()
		f.productRepo.On("ReplaceTags", mock.Anything, uint64(11), []string{"coffee", "beans"}).Return(nil).Once()

		got, err := f.app().CreateProduct(context.Background(), 2, &model.ProductRequest{
			Name:             "Robusta",
			PurchasePrice:    decimal.RequireFromString("5.50"),
			StockQuantity:    12,
			MinOrderQuantity: 2,
			Unit:             "kg",
			Tags:             []string{" Coffee", "beans", "coffee", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(11), got.ID)
		assert.Equal(t, uint64(2), got.SellerID)
		assert.Equal(t, constant.ProductStatusPending, got.Status)
		assert.False(t, got.IsActive)
		assert.False(t, got.SalePrice.Valid)
	})

	t.Run("error: non positive purchase price", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().CreateProduct(context.Background(), 2, &model.ProductRequest{Name: "x", PurchasePrice: decimal.Zero})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: unknown category passes through", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.
			On("Create", mock.Anything, mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrInvalidRequest)).
			Once()

		_, err := f.app().CreateProduct(context.Background(), 2, &model.ProductRequest{Name: "x", PurchasePrice: decimal.NewFromInt(1)})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestCatalogApp_UpdateProduct(t *testing.T) {
	t.Run("success: purchase price change sends approved product back to review", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()
		f.productRepo.
			On("Update", mock.Anything, mock.MatchedBy(func(p *model.ProductEntity) bool {
				return p.Status == constant.ProductStatusPending && !p.IsActive && !p.SalePrice.Valid
			})).
			Return(nil).
			Once()
		f.productRepo.On("ReplaceTags", mock.Anything, uint64(7), []string{}).Return(nil).Once()

		got, err := f.app().UpdateProduct(context.Background(), 2, 7, &model.ProductRequest{
			Name:             "Arabica Beans",
			PurchasePrice:    decimal.RequireFromString("9.00"),
			MinOrderQuantity: 1,
			Unit:             "kg",
		})
		require.NoError(t, err)
		assert.Equal(t, constant.ProductStatusPending, got.Status)
		assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("9.00")))
	})

	t.Run("success: unchanged purchase price keeps approval", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()
		f.productRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		f.productRepo.On("ReplaceTags", mock.Anything, uint64(7), mock.Anything).Return(nil).Once()

		got, err := f.app().UpdateProduct(context.Background(), 2, 7, &model.ProductRequest{
			Name:          "Arabica Beans 1kg",
			PurchasePrice: decimal.RequireFromString("8.00"),
			Unit:          "kg",
		})
		require.NoError(t, err)
		assert.Equal(t, constant.ProductStatusApproved, got.Status)
		assert.True(t, got.IsActive)
		assert.Equal(t, "Arabica Beans 1kg", got.Name)
	})

	t.Run("error: another seller's product", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()

		_, err := f.app().UpdateProduct(context.Background(), 99, 7, &model.ProductRequest{PurchasePrice: decimal.NewFromInt(1)})
		assertErrCode(t, err, constant.ErrForbidden)
	})
}

func TestCatalogApp_UpdateStock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()
		f.stockRepo.On("GetStockForUpdate", mock.Anything, uint64(7)).Return(int64(10), nil).Once()
		f.stockRepo.On("SetStock", mock.Anything, uint64(7), int64(3)).Return(nil).Once()

		got, err := f.app().UpdateStock(context.Background(), 2, 7, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.StockQuantity)
	})

	t.Run("success: unchanged quantity is not rewritten", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()
		f.stockRepo.On("GetStockForUpdate", mock.Anything, uint64(7)).Return(int64(3), nil).Once()

		got, err := f.app().UpdateStock(context.Background(), 2, 7, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.StockQuantity)
		f.stockRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error: negative quantity", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().UpdateStock(context.Background(), 2, 7, -1)
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: missing product", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(nil, nil).Once()

		_, err := f.app().UpdateStock(context.Background(), 2, 7, 3)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: another seller's product", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByID", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()

		_, err := f.app().UpdateStock(context.Background(), 9, 7, 3)
		assertErrCode(t, err, constant.ErrForbidden)
		f.stockRepo.AssertNotCalled(t, "GetStockForUpdate", mock.Anything, mock.Anything)
	})
}

func TestCatalogApp_SetActive(t *testing.T) {
	t.Run("error: pending product cannot be activated", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(pendingProduct(), nil).Once()

		_, err := f.app().SetActive(context.Background(), 2, 7, true)
		assertErrCode(t, err, constant.ErrInvalidProductStatus)
	})

	t.Run("success: deactivate approved product", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()
		f.productRepo.On("SetActive", mock.Anything, uint64(7), false).Return(nil).Once()

		got, err := f.app().SetActive(context.Background(), 2, 7, false)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})
}

func TestCatalogApp_ApproveProduct(t *testing.T) {
	salePrice := decimal.RequireFromString("12.50")

	t.Run("success: approves, records decision and notifies seller", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(pendingProduct(), nil).Once()
		f.productRepo.
			On("UpdateStatus", mock.Anything, uint64(7), constant.ProductStatusApproved, decimal.NewNullDecimal(salePrice), true).
			Return(nil).
			Once()
		f.productRepo.
			On("InsertApproval", mock.Anything, mock.MatchedBy(func(a *model.ProductApprovalEntity) bool {
				return a.AdminID == 1 && a.Decision == constant.ApprovalDecisionApproved && a.SalePrice.Decimal.Equal(salePrice)
			})).
			Return(nil).
			Once()
		f.notifier.On("Notify", mock.Anything, uint64(2), constant.EventProductApproved, mock.AnythingOfType("string")).Return().Once()

		got, err := f.app().ApproveProduct(context.Background(), 1, 7, salePrice)
		require.NoError(t, err)
		assert.Equal(t, constant.ProductStatusApproved, got.Status)
		assert.True(t, got.IsActive)
		assert.True(t, got.Purchasable())
	})

	t.Run("error: sale price must be positive", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().ApproveProduct(context.Background(), 1, 7, decimal.Zero)
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})

	t.Run("error: already approved", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(approvedProduct(), nil).Once()

		_, err := f.app().ApproveProduct(context.Background(), 1, 7, salePrice)
		assertErrCode(t, err, constant.ErrInvalidProductStatus)
	})

	t.Run("error: database failure is internal", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(nil, errors.New("deadlock")).Once()

		_, err := f.app().ApproveProduct(context.Background(), 1, 7, salePrice)
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestCatalogApp_RejectProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.expectTx()
		f.productRepo.On("GetByIDForUpdate", mock.Anything, uint64(7)).Return(pendingProduct(), nil).Once()
		f.productRepo.
			On("UpdateStatus", mock.Anything, uint64(7), constant.ProductStatusRejected, decimal.NullDecimal{}, false).
			Return(nil).
			Once()
		f.productRepo.On("InsertApproval", mock.Anything, mock.Anything).Return(nil).Once()
		f.notifier.On("Notify", mock.Anything, uint64(2), constant.EventProductRejected, mock.Anything).Return().Once()

		got, err := f.app().RejectProduct(context.Background(), 1, 7, "blurry photos")
		require.NoError(t, err)
		assert.Equal(t, constant.ProductStatusRejected, got.Status)
	})

	t.Run("error: empty reason", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().RejectProduct(context.Background(), 1, 7, "  ")
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestCatalogApp_CreateCategory(t *testing.T) {
	f := newFields(t)
	f.productRepo.
		On("CreateCategory", mock.Anything, "Coffee").
		Return(nil, cerr.SetCustomError(constant.ErrConflict)).
		Once()

	_, err := f.app().CreateCategory(context.Background(), &model.CreateCategoryRequest{Name: " Coffee "})
	assertErrCode(t, err, constant.ErrConflict)
}
