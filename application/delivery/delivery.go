package delivery

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	deliveryrepo "github.com/muhammadheryan/marketplace/repository/delivery"
	invoicerepo "github.com/muhammadheryan/marketplace/repository/invoice"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"go.uber.org/zap"
)

type DeliveryApp interface {
	ConfirmDelivery(ctx context.Context, sellerID uint64, req *model.ConfirmDeliveryRequest) (*model.DeliveryConfirmationEntity, error)
}

type deliveryAppImpl struct {
	txRepo       txrepo.TxRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	invoiceRepo  invoicerepo.InvoiceRepository
	orderRepo    orderrepo.OrderRepository
	notifier     notificationapp.Notifier
	metrics      *metrics.Metrics
}

func NewDeliveryApp(txRepo txrepo.TxRepository, deliveryRepo deliveryrepo.DeliveryRepository, invoiceRepo invoicerepo.InvoiceRepository,
	orderRepo orderrepo.OrderRepository, notifier notificationapp.Notifier, m *metrics.Metrics) DeliveryApp {
	return &deliveryAppImpl{
		txRepo:       txRepo,
		deliveryRepo: deliveryRepo,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
		metrics:      m,
	}
}

// ConfirmDelivery moves a PENDING confirmation to CONFIRMED and settles its invoices.
// The order row is locked before the confirmation row, the same order CancelOrder takes,
// so confirmations of one order and its cancellation run one after another.
func (s *deliveryAppImpl) ConfirmDelivery(ctx context.Context, sellerID uint64, req *model.ConfirmDeliveryRequest) (*model.DeliveryConfirmationEntity, error) {
	var (
		confirmation *model.DeliveryConfirmationEntity
		invoice      *model.InvoiceEntity
	)
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		deliveries := s.deliveryRepo.WithTx(tx)
		invoices := s.invoiceRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		var (
			order *model.OrderEntity
			err   error
		)
		// an invoice never changes order, so a plain read is enough to find the row to lock
		if invoice, err = invoices.GetByID(ctx, req.SellerInvoiceID); err != nil {
			return err
		}
		if invoice != nil {
			if order, err = orders.GetByIDForUpdate(ctx, invoice.OrderID); err != nil {
				return err
			}
		}
		if confirmation, err = deliveries.FindByCodeForUpdate(ctx, req.DeliveryCode, req.SellerInvoiceID); err != nil {
			return err
		}

		if confirmation == nil || invoice == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if invoice.SellerID != sellerID {
			return errors.SetCustomError(constant.ErrForbidden)
		}
		if confirmation.Status != constant.DeliveryStatusPending {
			return errors.SetCustomError(constant.ErrDeliveryAlreadyProcessed)
		}
		if order == nil || order.Status == constant.OrderStatusCancelled {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}

		if err := deliveries.UpdateStatus(ctx, confirmation.ID, constant.DeliveryStatusConfirmed); err != nil {
			return err
		}
		confirmation.Status = constant.DeliveryStatusConfirmed

		settled := []uint64{confirmation.SellerInvoiceID}
		if confirmation.BuyerInvoiceID != confirmation.SellerInvoiceID {
			settled = append(settled, confirmation.BuyerInvoiceID)
		}
		if err := invoices.UpdateStatus(ctx, settled, constant.InvoiceStatusPaid); err != nil {
			return err
		}

		return CompleteOrder(ctx, invoices, orders, order, settled...)
	})
	if err != nil {
		if ce, ok := errors.AsCustomError(err); ok {
			return nil, ce
		}
		logger.Error("[ConfirmDelivery] unexpected error", zap.Uint64("seller_invoice_id", req.SellerInvoiceID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.metrics.DeliveryConfirmed()
	s.notifier.Notify(ctx, invoice.BuyerID, constant.EventDeliveryConfirmed,
		fmt.Sprintf("Delivery for invoice #%d was confirmed", invoice.ID))
	return confirmation, nil
}

// CompleteOrder marks a locked order delivered once every one of its invoices is paid.
// Cancelled and already delivered orders are left alone.
func CompleteOrder(ctx context.Context, invoices invoicerepo.InvoiceRepository, orders orderrepo.OrderRepository,
	order *model.OrderEntity, settled ...uint64) error {
	if order == nil || order.Status == constant.OrderStatusCancelled || order.Status == constant.OrderStatusDelivered {
		return nil
	}
	all, err := invoices.FindByOrder(ctx, order.ID)
	if err != nil {
		return err
	}
	if !invoicerepo.AllPaid(all, settled...) {
		return nil
	}
	order.Status = constant.OrderStatusDelivered
	return orders.UpdateStatus(ctx, order.ID, constant.OrderStatusDelivered)
}
