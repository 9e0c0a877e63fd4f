package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	catalogapp "github.com/muhammadheryan/marketplace/application/catalog"
	deliveryapp "github.com/muhammadheryan/marketplace/application/delivery"
	invoiceapp "github.com/muhammadheryan/marketplace/application/invoice"
	notificationapp "github.com/muhammadheryan/marketplace/application/notification"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type RestHandler struct {
	UserApp         userapp.UserApp
	CatalogApp      catalogapp.CatalogApp
	CartApp         cartapp.CartApp
	OrderApp        orderapp.OrderApp
	InvoiceApp      invoiceapp.InvoiceApp
	DeliveryApp     deliveryapp.DeliveryApp
	NotificationApp notificationapp.NotificationApp
	HealthChecks    map[string]HealthCheck
}

type Options struct {
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// ops
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	if opts.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// identity
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/auth/otp/request", rh.RequestOTP).Methods(http.MethodPost)
	mux.HandleFunc("/auth/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/logout", RequireAuth(rh.Logout)).Methods(http.MethodPost)
	mux.HandleFunc("/me", RequireAuth(rh.GetProfile)).Methods(http.MethodGet)
	mux.HandleFunc("/me/profile", RequireAuth(rh.UpdateProfile)).Methods(http.MethodPut)
	mux.HandleFunc("/admin/users/{userId}/roles", RequirePermission(constant.PermRoleManage, rh.AssignRole)).Methods(http.MethodPost)
	mux.HandleFunc("/admin/users/{userId}/roles/{role}", RequirePermission(constant.PermRoleManage, rh.RevokeRole)).Methods(http.MethodDelete)

	// catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/categories", RequirePermission(constant.PermCategoryManage, rh.CreateCategory)).Methods(http.MethodPost)
	mux.HandleFunc("/products", RequirePermission(constant.PermProductManage, rh.CreateProduct)).Methods(http.MethodPost)
	mux.HandleFunc("/products/{id}", RequirePermission(constant.PermProductManage, rh.UpdateProduct)).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id}/stock", RequirePermission(constant.PermProductManage, rh.UpdateStock)).Methods(http.MethodPatch)
	mux.HandleFunc("/products/{id}/active", RequirePermission(constant.PermProductManage, rh.SetActive)).Methods(http.MethodPatch)
	mux.HandleFunc("/seller/products", RequirePermission(constant.PermProductManage, rh.ListSellerProducts)).Methods(http.MethodGet)
	mux.HandleFunc("/admin/products/pending", RequirePermission(constant.PermProductApprove, rh.ListPendingProducts)).Methods(http.MethodGet)
	mux.HandleFunc("/admin/products/{id}/approve", RequirePermission(constant.PermProductApprove, rh.ApproveProduct)).Methods(http.MethodPost)
	mux.HandleFunc("/admin/products/{id}/reject", RequirePermission(constant.PermProductApprove, rh.RejectProduct)).Methods(http.MethodPost)

	// cart
	mux.HandleFunc("/cart", RequirePermission(constant.PermCartManage, rh.GetCart)).Methods(http.MethodGet)
	mux.HandleFunc("/cart", RequirePermission(constant.PermCartManage, rh.ClearCart)).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/items", RequirePermission(constant.PermCartManage, rh.AddCartItem)).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{productId}", RequirePermission(constant.PermCartManage, rh.UpdateCartItem)).Methods(http.MethodPatch)
	mux.HandleFunc("/cart/items/{productId}", RequirePermission(constant.PermCartManage, rh.RemoveCartItem)).Methods(http.MethodDelete)

	// orders, invoices, delivery
	mux.HandleFunc("/orders/create", RequirePermission(constant.PermOrderCreate, rh.CreateOrder)).Methods(http.MethodPost)
	mux.HandleFunc("/orders", RequirePermission(constant.PermOrderRead, rh.ListMyOrders)).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderId}", RequirePermission(constant.PermOrderRead, rh.GetOrder)).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderId}/cancel", RequirePermission(constant.PermOrderCreate, rh.CancelOrder)).Methods(http.MethodPost)
	mux.HandleFunc("/invoices/order/{orderId}", RequirePermission(constant.PermInvoiceRead, rh.GetInvoicesByOrderID)).Methods(http.MethodGet)
	mux.HandleFunc("/invoices/my-invoices", RequirePermission(constant.PermInvoiceRead, rh.GetMyInvoices)).Methods(http.MethodGet)
	mux.HandleFunc("/invoices/{invoiceId}/pay", RequirePermission(constant.PermInvoicePay, rh.MarkInvoiceAsPaid)).Methods(http.MethodPatch)
	mux.HandleFunc("/delivery-confirmations/confirm", RequirePermission(constant.PermDeliveryConfirm, rh.ConfirmDelivery)).Methods(http.MethodPost)

	// notifications
	mux.HandleFunc("/notifications", RequirePermission(constant.PermNotificationRead, rh.ListNotifications)).Methods(http.MethodGet)
	mux.HandleFunc("/notifications/{id}/read", RequirePermission(constant.PermNotificationRead, rh.MarkNotificationRead)).Methods(http.MethodPatch)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/notifications", rh.CreateNotification).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware(opts.Metrics))
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}
