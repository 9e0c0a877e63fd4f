package invoice_test

import (
	"context"
	"errors"
	"testing"

	appinvoice "github.com/muhammadheryan/marketplace/application/invoice"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	notificationmocks "github.com/muhammadheryan/marketplace/mocks/application/notification"
	deliverymocks "github.com/muhammadheryan/marketplace/mocks/repository/delivery"
	invoicemocks "github.com/muhammadheryan/marketplace/mocks/repository/invoice"
	ordermocks "github.com/muhammadheryan/marketplace/mocks/repository/order"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	invoiceRepo  *invoicemocks.InvoiceRepository
	deliveryRepo *deliverymocks.DeliveryRepository
	orderRepo    *ordermocks.OrderRepository
	notifier     *notificationmocks.Notifier
}

func newFields(t *testing.T) fields {
	f := fields{
		txRepo:       txmocks.NewTxRepository(t),
		invoiceRepo:  invoicemocks.NewInvoiceRepository(t),
		deliveryRepo: deliverymocks.NewDeliveryRepository(t),
		orderRepo:    ordermocks.NewOrderRepository(t),
		notifier:     notificationmocks.NewNotifier(t),
	}
	f.invoiceRepo.On("WithTx", mock.Anything).Return(f.invoiceRepo).Maybe()
	f.orderRepo.On("WithTx", mock.Anything).Return(f.orderRepo).Maybe()
	return f
}

// expectTx runs the unit of work inline.
func (f fields) expectTx() {
	f.txRepo.
		On("WithTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(*sqlx.Tx) error) error { return fn(&sqlx.Tx{}) }).
		Once()
}

func (f fields) app() appinvoice.InvoiceApp {
	return appinvoice.NewInvoiceApp(f.txRepo, f.invoiceRepo, f.deliveryRepo, f.orderRepo, f.notifier)
}

func pendingOrder() *model.OrderEntity {
	return &model.OrderEntity{ID: 100, BuyerID: 3, Status: constant.OrderStatusPending}
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	assert.Equal(t, errCode, ce.Type())
}

// orderInvoices belong to order 100 bought by user 3 from sellers 1 and 2.
func orderInvoices() []model.InvoiceEntity {
	return []model.InvoiceEntity{
		{ID: 201, OrderID: 100, BuyerID: 3, SellerID: 1, TotalAmount: decimal.NewFromInt(20), Status: constant.InvoiceStatusPending},
		{ID: 202, OrderID: 100, BuyerID: 3, SellerID: 2, TotalAmount: decimal.NewFromInt(20), Status: constant.InvoiceStatusPending},
	}
}

func TestInvoiceApp_GetInvoicesByOrderID(t *testing.T) {
	tests := []struct {
		name     string
		caller   model.Caller
		mockCall func(f fields)
		wantIDs  []uint64
	}{
		{
			name:   "buyer sees every invoice of the order",
			caller: model.Caller{UserID: 3, Roles: []string{constant.RoleBuyer}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("ListItems", mock.Anything, []uint64{201, 202}).Return([]model.InvoiceItemEntity{}, nil).Once()
			},
			wantIDs: []uint64{201, 202},
		},
		{
			name:   "seller sees only their invoice",
			caller: model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("ListItems", mock.Anything, []uint64{202}).Return([]model.InvoiceItemEntity{}, nil).Once()
			},
			wantIDs: []uint64{202},
		},
		{
			name:   "admin sees everything",
			caller: model.Caller{UserID: 99, Roles: []string{constant.RoleAdmin}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("ListItems", mock.Anything, []uint64{201, 202}).Return([]model.InvoiceItemEntity{}, nil).Once()
			},
			wantIDs: []uint64{201, 202},
		},
		{
			name:     "stranger gets an empty list",
			caller:   model.Caller{UserID: 50, Roles: []string{constant.RoleBuyer}},
			mockCall: func(f fields) {},
			wantIDs:  []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.invoiceRepo.On("FindByOrder", mock.Anything, uint64(100)).Return(orderInvoices(), nil).Once()
			tt.mockCall(f)

			got, err := f.app().GetInvoicesByOrderID(context.Background(), 100, tt.caller)
			require.NoError(t, err)
			require.NotNil(t, got)

			ids := make([]uint64, 0, len(got))
			for _, inv := range got {
				ids = append(ids, inv.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestInvoiceApp_GetMyInvoices(t *testing.T) {
	t.Run("buyer invoices carry delivery codes", func(t *testing.T) {
		f := newFields(t)
		f.invoiceRepo.On("FindByBuyer", mock.Anything, uint64(3)).Return(orderInvoices(), nil).Once()
		f.invoiceRepo.On("ListItems", mock.Anything, []uint64{201, 202}).Return([]model.InvoiceItemEntity{
			{ID: 1, InvoiceID: 201, ProductID: 8, Quantity: 1},
		}, nil).Once()
		f.deliveryRepo.On("FindByBuyerInvoices", mock.Anything, []uint64{201, 202}).Return([]model.DeliveryConfirmationEntity{
			{BuyerInvoiceID: 201, SellerInvoiceID: 201, DeliveryCode: "123456"},
		}, nil).Once()

		got, err := f.app().GetMyInvoices(context.Background(), model.Caller{UserID: 3, Roles: []string{constant.RoleBuyer}})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "123456", got[0].DeliveryCode)
		assert.Empty(t, got[1].DeliveryCode)
		assert.Len(t, got[0].Items, 1)
	})

	t.Run("seller invoices have no codes", func(t *testing.T) {
		f := newFields(t)
		f.invoiceRepo.On("FindBySeller", mock.Anything, uint64(2)).Return(orderInvoices()[1:], nil).Once()
		f.invoiceRepo.On("ListItems", mock.Anything, []uint64{202}).Return([]model.InvoiceItemEntity{}, nil).Once()

		got, err := f.app().GetMyInvoices(context.Background(), model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].DeliveryCode)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFields(t)
		f.invoiceRepo.On("FindByBuyer", mock.Anything, uint64(3)).Return(nil, errors.New("db down")).Once()

		_, err := f.app().GetMyInvoices(context.Background(), model.Caller{UserID: 3})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestInvoiceApp_MarkInvoiceAsPaid(t *testing.T) {
	tests := []struct {
		name     string
		caller   model.Caller
		mockCall func(f fields)
		wantErr  constant.ErrorType
	}{
		{
			name:   "success: invoice seller, another invoice still open",
			caller: model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(&orderInvoices()[1], nil).Once()
				f.expectTx()
				f.orderRepo.On("GetByIDForUpdate", mock.Anything, uint64(100)).Return(pendingOrder(), nil).Once()
				f.invoiceRepo.On("UpdateStatus", mock.Anything, []uint64{202}, constant.InvoiceStatusPaid).Return(nil).Once()
				f.invoiceRepo.On("FindByOrder", mock.Anything, uint64(100)).Return(orderInvoices(), nil).Once()
				f.notifier.On("Notify", mock.Anything, uint64(3), constant.EventInvoicePaid, mock.Anything).Return().Once()
			},
		},
		{
			name:   "success: last open invoice delivers the order",
			caller: model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				invoices := orderInvoices()
				invoices[0].Status = constant.InvoiceStatusPaid
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(&orderInvoices()[1], nil).Once()
				f.expectTx()
				f.orderRepo.On("GetByIDForUpdate", mock.Anything, uint64(100)).Return(pendingOrder(), nil).Once()
				f.invoiceRepo.On("UpdateStatus", mock.Anything, []uint64{202}, constant.InvoiceStatusPaid).Return(nil).Once()
				f.invoiceRepo.On("FindByOrder", mock.Anything, uint64(100)).Return(invoices, nil).Once()
				f.orderRepo.On("UpdateStatus", mock.Anything, uint64(100), constant.OrderStatusDelivered).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, uint64(3), constant.EventInvoicePaid, mock.Anything).Return().Once()
			},
		},
		{
			name:   "success: admin on a cancelled order leaves the order alone",
			caller: model.Caller{UserID: 99, Roles: []string{constant.RoleAdmin}},
			mockCall: func(f fields) {
				order := pendingOrder()
				order.Status = constant.OrderStatusCancelled
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(&orderInvoices()[1], nil).Once()
				f.expectTx()
				f.orderRepo.On("GetByIDForUpdate", mock.Anything, uint64(100)).Return(order, nil).Once()
				f.invoiceRepo.On("UpdateStatus", mock.Anything, []uint64{202}, constant.InvoiceStatusPaid).Return(nil).Once()
				f.notifier.On("Notify", mock.Anything, uint64(3), constant.EventInvoicePaid, mock.Anything).Return().Once()
			},
		},
		{
			name:   "error: database failure",
			caller: model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(&orderInvoices()[1], nil).Once()
				f.expectTx()
				f.orderRepo.On("GetByIDForUpdate", mock.Anything, uint64(100)).Return(nil, errors.New("lock wait timeout")).Once()
			},
			wantErr: constant.ErrInternal,
		},
		{
			name:   "error: another seller",
			caller: model.Caller{UserID: 1, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(&orderInvoices()[1], nil).Once()
			},
			wantErr: constant.ErrForbidden,
		},
		{
			name:   "error: missing invoice",
			caller: model.Caller{UserID: 2, Roles: []string{constant.RoleSeller}},
			mockCall: func(f fields) {
				f.invoiceRepo.On("GetByID", mock.Anything, uint64(202)).Return(nil, nil).Once()
			},
			wantErr: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().MarkInvoiceAsPaid(context.Background(), 202, tt.caller)
			if tt.wantErr != constant.Successful {
				assertErrCode(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.InvoiceStatusPaid, got.Status)
		})
	}
}
