package invoice

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	deliveryapp "github.com/muhammadheryan/marketplace/application/delivery"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	deliveryrepo "github.com/muhammadheryan/marketplace/repository/delivery"
	invoicerepo "github.com/muhammadheryan/marketplace/repository/invoice"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type InvoiceApp interface {
	GetInvoicesByOrderID(ctx context.Context, orderID uint64, caller model.Caller) ([]model.InvoiceDetail, error)
	GetMyInvoices(ctx context.Context, caller model.Caller) ([]model.InvoiceDetail, error)
	MarkInvoiceAsPaid(ctx context.Context, invoiceID uint64, caller model.Caller) (*model.InvoiceEntity, error)
}

type invoiceAppImpl struct {
	txRepo       txrepo.TxRepository
	invoiceRepo  invoicerepo.InvoiceRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	orderRepo    orderrepo.OrderRepository
	notifier     notificationapp.Notifier
}

func NewInvoiceApp(txRepo txrepo.TxRepository, invoiceRepo invoicerepo.InvoiceRepository, deliveryRepo deliveryrepo.DeliveryRepository,
	orderRepo orderrepo.OrderRepository, notifier notificationapp.Notifier) InvoiceApp {
	return &invoiceAppImpl{
		txRepo:       txRepo,
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
	}
}

// GetInvoicesByOrderID returns only the invoices the caller takes part in. Admins see all of them.
func (s *invoiceAppImpl) GetInvoicesByOrderID(ctx context.Context, orderID uint64, caller model.Caller) ([]model.InvoiceDetail, error) {
	invoices, err := s.invoiceRepo.FindByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetInvoicesByOrderID] error invoiceRepo.FindByOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	isAdmin := constant.HasRole(caller.Roles, constant.RoleAdmin)
	visible := make([]model.InvoiceEntity, 0, len(invoices))
	for _, inv := range invoices {
		if isAdmin || inv.BuyerID == caller.UserID || inv.SellerID == caller.UserID {
			visible = append(visible, inv)
		}
	}
	if len(visible) == 0 {
		return []model.InvoiceDetail{}, nil
	}

	return s.withItems(ctx, "[GetInvoicesByOrderID]", visible)
}

// GetMyInvoices lists a seller's sales, or a buyer's purchases with their delivery codes.
func (s *invoiceAppImpl) GetMyInvoices(ctx context.Context, caller model.Caller) ([]model.InvoiceDetail, error) {
	if constant.HasRole(caller.Roles, constant.RoleSeller) {
		invoices, err := s.invoiceRepo.FindBySeller(ctx, caller.UserID)
		if err != nil {
			logger.Error("[GetMyInvoices] error invoiceRepo.FindBySeller", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return s.withItems(ctx, "[GetMyInvoices]", invoices)
	}

	invoices, err := s.invoiceRepo.FindByBuyer(ctx, caller.UserID)
	if err != nil {
		logger.Error("[GetMyInvoices] error invoiceRepo.FindByBuyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	details, err := s.withItems(ctx, "[GetMyInvoices]", invoices)
	if err != nil || len(details) == 0 {
		return details, err
	}

	confirmations, err := s.deliveryRepo.FindByBuyerInvoices(ctx, invoicerepo.IDs(invoices))
	if err != nil {
		logger.Error("[GetMyInvoices] error deliveryRepo.FindByBuyerInvoices", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	codes := make(map[uint64]string, len(confirmations))
	for _, dc := range confirmations {
		codes[dc.BuyerInvoiceID] = dc.DeliveryCode
	}
	for i := range details {
		details[i].DeliveryCode = codes[details[i].ID]
	}
	return details, nil
}

// MarkInvoiceAsPaid overwrites the status unconditionally, so repeating it is harmless.
// Paying the last open invoice delivers the order, under the same order lock ConfirmDelivery takes.
func (s *invoiceAppImpl) MarkInvoiceAsPaid(ctx context.Context, invoiceID uint64, caller model.Caller) (*model.InvoiceEntity, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		logger.Error("[MarkInvoiceAsPaid] error invoiceRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if inv.SellerID != caller.UserID && !constant.HasRole(caller.Roles, constant.RoleAdmin) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	err = s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		invoices := s.invoiceRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		order, err := orders.GetByIDForUpdate(ctx, inv.OrderID)
		if err != nil {
			return err
		}
		if err := invoices.UpdateStatus(ctx, []uint64{invoiceID}, constant.InvoiceStatusPaid); err != nil {
			return err
		}
		return deliveryapp.CompleteOrder(ctx, invoices, orders, order, invoiceID)
	})
	if err != nil {
		logger.Error("[MarkInvoiceAsPaid] error settling invoice", zap.Uint64("invoice_id", invoiceID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	inv.Status = constant.InvoiceStatusPaid

	s.notifier.Notify(ctx, inv.BuyerID, constant.EventInvoicePaid, fmt.Sprintf("Invoice #%d was marked as paid", inv.ID))
	return inv, nil
}

func (s *invoiceAppImpl) withItems(ctx context.Context, op string, invoices []model.InvoiceEntity) ([]model.InvoiceDetail, error) {
	items, err := s.invoiceRepo.ListItems(ctx, invoicerepo.IDs(invoices))
	if err != nil {
		logger.Error(op+" error invoiceRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return invoicerepo.Details(invoices, items), nil
}
