package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
)

// CreateOrder handler
// @Summary Checkout the cart
// @Description Creates one order and one invoice per seller from the cart contents
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.OrderDetail
// @Failure 400 {object} ErrorResponse
// @Router /orders/create [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.OrderApp.CreateOrder(r.Context(), buyerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListMyOrders handler
// @Summary Own orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.OrderEntity
// @Router /orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.OrderApp.ListMyOrders(r.Context(), buyerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order detail with invoices
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{orderId} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	caller, _ := utilsContext.GetCaller(r.Context())

	res, err := s.OrderApp.GetOrder(r.Context(), orderID, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel a pending order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} model.OrderEntity
// @Failure 409 {object} ErrorResponse
// @Router /orders/{orderId}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.OrderApp.CancelOrder(r.Context(), orderID, buyerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetInvoicesByOrderID handler
// @Summary Invoices of an order visible to the caller
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {array} model.InvoiceDetail
// @Router /invoices/order/{orderId} [get]
func (s *RestHandler) GetInvoicesByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	caller, _ := utilsContext.GetCaller(r.Context())

	res, err := s.InvoiceApp.GetInvoicesByOrderID(r.Context(), orderID, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetMyInvoices handler
// @Summary Own invoices
// @Description Sellers get their sales; buyers get their purchases with delivery codes
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.InvoiceDetail
// @Router /invoices/my-invoices [get]
func (s *RestHandler) GetMyInvoices(w http.ResponseWriter, r *http.Request) {
	caller, _ := utilsContext.GetCaller(r.Context())

	res, err := s.InvoiceApp.GetMyInvoices(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkInvoiceAsPaid handler
// @Summary Mark an invoice paid
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param invoiceId path int true "Invoice ID"
// @Success 200 {object} model.InvoiceEntity
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoiceId}/pay [patch]
func (s *RestHandler) MarkInvoiceAsPaid(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}
	caller, _ := utilsContext.GetCaller(r.Context())

	res, err := s.InvoiceApp.MarkInvoiceAsPaid(r.Context(), invoiceID, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmDelivery handler
// @Summary Confirm delivery with the buyer's code
// @Tags Delivery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ConfirmDeliveryRequest true "Code and seller invoice"
// @Success 200 {object} model.DeliveryConfirmationEntity
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /delivery-confirmations/confirm [post]
func (s *RestHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmDeliveryRequest
	if !decode(w, r, &req) {
		return
	}
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.DeliveryApp.ConfirmDelivery(r.Context(), sellerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
