package order

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	cartrepo "github.com/muhammadheryan/marketplace/repository/cart"
	deliveryrepo "github.com/muhammadheryan/marketplace/repository/delivery"
	invoicerepo "github.com/muhammadheryan/marketplace/repository/invoice"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	stockrepo "github.com/muhammadheryan/marketplace/repository/stock"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"github.com/muhammadheryan/marketplace/utils/random"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, buyerID uint64) (*model.OrderDetail, error)
	GetOrder(ctx context.Context, orderID uint64, caller model.Caller) (*model.OrderDetail, error)
	ListMyOrders(ctx context.Context, buyerID uint64) ([]model.OrderEntity, error)
	CancelOrder(ctx context.Context, orderID, buyerID uint64) (*model.OrderEntity, error)
}

type orderAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	cartRepo     cartrepo.CartRepository
	stockRepo    stockrepo.StockRepository
	orderRepo    orderrepo.OrderRepository
	invoiceRepo  invoicerepo.InvoiceRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	notifier     notificationapp.Notifier
	metrics      *metrics.Metrics
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, cartRepo cartrepo.CartRepository, stockRepo stockrepo.StockRepository,
	orderRepo orderrepo.OrderRepository, invoiceRepo invoicerepo.InvoiceRepository, deliveryRepo deliveryrepo.DeliveryRepository,
	notifier notificationapp.Notifier, m *metrics.Metrics) OrderApp {
	return &orderAppImpl{
		config:       config,
		txRepo:       txRepo,
		cartRepo:     cartRepo,
		stockRepo:    stockRepo,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		notifier:     notifier,
		metrics:      m,
	}
}

// CreateOrder checks out the buyer's cart into one order with one invoice per seller.
// The whole checkout commits or nothing does.
func (s *orderAppImpl) CreateOrder(ctx context.Context, buyerID uint64) (*model.OrderDetail, error) {
	var detail *model.OrderDetail
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		carts := s.cartRepo.WithTx(tx)
		cart, err := carts.GetByBuyerForUpdate(ctx, buyerID)
		if err != nil {
			return err
		}
		if cart == nil {
			return errors.SetCustomError(constant.ErrEmptyCart)
		}
		items, err := carts.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errors.SetCustomError(constant.ErrEmptyCart)
		}

		order := &model.OrderEntity{
			BuyerID: buyerID,
			Status:  constant.OrderStatusPending,
			Total:   cartrepo.Total(items),
		}
		if err := s.orderRepo.WithTx(tx).Insert(ctx, order); err != nil {
			return err
		}

		stock := s.stockRepo.WithTx(tx)
		for _, item := range byProduct(items) {
			if err := stock.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		invoices := s.invoiceRepo.WithTx(tx)
		deliveries := s.deliveryRepo.WithTx(tx)
		detail = &model.OrderDetail{OrderEntity: *order}
		for _, group := range groupBySeller(items) {
			inv, err := s.createInvoice(ctx, invoices, deliveries, order, group)
			if err != nil {
				return err
			}
			detail.Invoices = append(detail.Invoices, *inv)
		}

		return carts.ClearItems(ctx, cart.ID)
	})
	if err != nil {
		return nil, internal("[CreateOrder]", err)
	}

	s.metrics.OrderCreated(len(detail.Invoices))
	for _, inv := range detail.Invoices {
		s.notifier.Notify(ctx, inv.SellerID, constant.EventOrderReceived,
			fmt.Sprintf("Order #%d: invoice #%d for %s", detail.ID, inv.ID, inv.TotalAmount.StringFixed(2)))
	}
	return detail, nil
}

// byProduct returns the lines in ascending product id order, so concurrent checkouts
// lock product rows in the same order.
func byProduct(items []model.CartItemDetail) []model.CartItemDetail {
	sorted := make([]model.CartItemDetail, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
	return sorted
}

type sellerGroup struct {
	sellerID uint64
	items    []model.CartItemDetail
}

// groupBySeller partitions cart lines by seller in ascending seller id order.
func groupBySeller(items []model.CartItemDetail) []sellerGroup {
	index := make(map[uint64]int)
	var groups []sellerGroup
	for _, item := range items {
		i, ok := index[item.SellerID]
		if !ok {
			i = len(groups)
			index[item.SellerID] = i
			groups = append(groups, sellerGroup{sellerID: item.SellerID})
		}
		groups[i].items = append(groups[i].items, item)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].sellerID < groups[j].sellerID })
	return groups
}

func (s *orderAppImpl) createInvoice(ctx context.Context, invoices invoicerepo.InvoiceRepository, deliveries deliveryrepo.DeliveryRepository,
	order *model.OrderEntity, group sellerGroup) (*model.InvoiceDetail, error) {
	lines := make([]model.InvoiceItemEntity, 0, len(group.items))
	total := decimal.Zero
	for _, item := range group.items {
		lineTotal := item.LineTotal()
		total = total.Add(lineTotal)
		lines = append(lines, model.InvoiceItemEntity{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: lineTotal,
		})
	}

	inv := &model.InvoiceEntity{
		OrderID:     order.ID,
		BuyerID:     order.BuyerID,
		SellerID:    group.sellerID,
		TotalAmount: total,
		Status:      constant.InvoiceStatusPending,
	}
	if err := invoices.Insert(ctx, inv); err != nil {
		return nil, err
	}
	if err := invoices.InsertItems(ctx, inv.ID, lines); err != nil {
		return nil, err
	}

	code, err := random.NumericCode(s.codeLength())
	if err != nil {
		return nil, err
	}
	// the buyer and the seller share one invoice, so both sides of the confirmation point at it
	if err := deliveries.Insert(ctx, &model.DeliveryConfirmationEntity{
		BuyerInvoiceID:  inv.ID,
		SellerInvoiceID: inv.ID,
		DeliveryCode:    code,
		Status:          constant.DeliveryStatusPending,
	}); err != nil {
		return nil, err
	}

	// the code reaches the buyer only through their invoice listing
	return &model.InvoiceDetail{InvoiceEntity: *inv, Items: lines}, nil
}

func (s *orderAppImpl) codeLength() int {
	if s.config == nil || s.config.Delivery.CodeLength <= 0 || s.config.Delivery.CodeLength > constant.MaxDeliveryCodeLength {
		return constant.DefaultDeliveryCodeLength
	}
	return s.config.Delivery.CodeLength
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64, caller model.Caller) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] error orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if order.BuyerID != caller.UserID && !constant.HasRole(caller.Roles, constant.RoleAdmin) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	invoices, err := s.invoiceRepo.FindByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] error invoiceRepo.FindByOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	items, err := s.invoiceRepo.ListItems(ctx, invoicerepo.IDs(invoices))
	if err != nil {
		logger.Error("[GetOrder] error invoiceRepo.ListItems", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderDetail{OrderEntity: *order, Invoices: invoicerepo.Details(invoices, items)}, nil
}

func (s *orderAppImpl) ListMyOrders(ctx context.Context, buyerID uint64) ([]model.OrderEntity, error) {
	orders, err := s.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		logger.Error("[ListMyOrders] error orderRepo.ListByBuyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

// CancelOrder is allowed while nothing in the order has moved past pending. Stock is put back.
func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID, buyerID uint64) (*model.OrderEntity, error) {
	var (
		order    *model.OrderEntity
		invoices []model.InvoiceEntity
	)
	err := s.txRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		orders := s.orderRepo.WithTx(tx)
		var err error
		if order, err = orders.GetByIDForUpdate(ctx, orderID); err != nil {
			return err
		}
		if order == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if order.BuyerID != buyerID {
			return errors.SetCustomError(constant.ErrForbidden)
		}
		if order.Status != constant.OrderStatusPending {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}

		invoiceTx := s.invoiceRepo.WithTx(tx)
		if invoices, err = invoiceTx.FindByOrder(ctx, orderID); err != nil {
			return err
		}
		for _, inv := range invoices {
			if inv.Status != constant.InvoiceStatusPending {
				return errors.SetCustomError(constant.ErrInvalidOrderStatus)
			}
		}

		ids := invoicerepo.IDs(invoices)
		items, err := invoiceTx.ListItems(ctx, ids)
		if err != nil {
			return err
		}
		stock := s.stockRepo.WithTx(tx)
		for _, item := range items {
			if err := stock.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := invoiceTx.UpdateStatus(ctx, ids, constant.InvoiceStatusCancelled); err != nil {
			return err
		}
		if err := s.deliveryRepo.WithTx(tx).CancelPendingByInvoices(ctx, ids); err != nil {
			return err
		}
		order.Status = constant.OrderStatusCancelled
		return orders.UpdateStatus(ctx, orderID, constant.OrderStatusCancelled)
	})
	if err != nil {
		return nil, internal("[CancelOrder]", err)
	}

	for _, inv := range invoices {
		s.notifier.Notify(ctx, inv.SellerID, constant.EventOrderCancelled,
			fmt.Sprintf("Order #%d was cancelled by the buyer; invoice #%d is void", orderID, inv.ID))
	}
	return order, nil
}

func internal(op string, err error) error {
	if ce, ok := errors.AsCustomError(err); ok {
		return ce
	}
	logger.Error(op+" unexpected error", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
