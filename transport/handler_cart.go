package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
)

// GetCart handler
// @Summary Current cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CartApp.GetCart(r.Context(), buyerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add a product to the cart
// @Description Adding a product already in the cart increases its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddCartItemRequest true "Item"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if !decode(w, r, &req) {
		return
	}
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CartApp.AddItem(r.Context(), buyerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Change a cart line quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	var req model.UpdateCartItemRequest
	if !decode(w, r, &req) {
		return
	}
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CartApp.UpdateItem(r.Context(), buyerID, productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items/{productId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	buyerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CartApp.RemoveItem(r.Context(), buyerID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Success 204
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := utilsContext.GetUserID(r.Context())

	if err := s.CartApp.ClearCart(r.Context(), buyerID); err != nil {
		writeError(w, err)
		return
	}
	writeNoContent(w)
}
