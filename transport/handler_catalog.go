package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// ListProducts handler
// @Summary Browse products
// @Description Approved and active products only
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Param category_id query int false "Category filter"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListProducts(r.Context(), queryInt(r, "page"), queryInt(r, "per_page"), queryUint(r, "category_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	caller, _ := utilsContext.GetCaller(r.Context())

	res, err := s.CatalogApp.GetProduct(r.Context(), id, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateCategoryRequest true "Category"
// @Success 201 {object} model.CategoryEntity
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.CatalogApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// CreateProduct handler
// @Summary Submit a product for review
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product"
// @Success 201 {object} model.ProductEntity
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if !decode(w, r, &req) {
		return
	}
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.CreateProduct(r.Context(), sellerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Edit own product
// @Description Changing the purchase price of an approved product sends it back to review
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} model.ProductEntity
// @Failure 403 {object} ErrorResponse
// @Router /products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.ProductRequest
	if !decode(w, r, &req) {
		return
	}
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.UpdateProduct(r.Context(), sellerID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateStock handler
// @Summary Set stock quantity
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.UpdateStockRequest true "Stock"
// @Success 200 {object} model.ProductEntity
// @Router /products/{id}/stock [patch]
func (s *RestHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.UpdateStockRequest
	if !decode(w, r, &req) {
		return
	}
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.UpdateStock(r.Context(), sellerID, id, *req.StockQuantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SetActive handler
// @Summary Activate or deactivate own product
// @Tags Seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.SetActiveRequest true "Flag"
// @Success 200 {object} model.ProductEntity
// @Failure 409 {object} ErrorResponse
// @Router /products/{id}/active [patch]
func (s *RestHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.SetActiveRequest
	if !decode(w, r, &req) {
		return
	}
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.SetActive(r.Context(), sellerID, id, *req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListSellerProducts handler
// @Summary Own products in every status
// @Tags Seller
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Router /seller/products [get]
func (s *RestHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.ListSellerProducts(r.Context(), sellerID, queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPendingProducts handler
// @Summary Review queue
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Router /admin/products/pending [get]
func (s *RestHandler) ListPendingProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListPendingProducts(r.Context(), queryInt(r, "page"), queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveProduct handler
// @Summary Approve a pending product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.ApproveProductRequest true "Sale price"
// @Success 200 {object} model.ProductEntity
// @Failure 409 {object} ErrorResponse
// @Router /admin/products/{id}/approve [post]
func (s *RestHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.ApproveProductRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.SalePrice.IsPositive() {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	adminID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.ApproveProduct(r.Context(), adminID, id, req.SalePrice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectProduct handler
// @Summary Reject a pending product
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.RejectProductRequest true "Reason"
// @Success 200 {object} model.ProductEntity
// @Failure 409 {object} ErrorResponse
// @Router /admin/products/{id}/reject [post]
func (s *RestHandler) RejectProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.RejectProductRequest
	if !decode(w, r, &req) {
		return
	}
	adminID, _ := utilsContext.GetUserID(r.Context())

	res, err := s.CatalogApp.RejectProduct(r.Context(), adminID, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
