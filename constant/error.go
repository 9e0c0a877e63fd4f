package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrConflict
	ErrEmptyCart
	ErrInsufficientStock
	ErrProductUnavailable
	ErrBelowMinimumOrder
	ErrInvalidOrderStatus
	ErrInvalidProductStatus
	ErrDeliveryAlreadyProcessed
	ErrRoleAlreadyAssigned
	ErrInvalidOTP
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                  "success",
	ErrInternal:                 "error internal",
	ErrNotFound:                 "data not found",
	ErrInvalidRequest:           "invalid request",
	ErrUnauthorize:              "unauthorize request",
	ErrCredentialExists:         "email or phone already exists",
	ErrInvalidPassword:          "password invalid",
	ErrForbidden:                "access denied",
	ErrConflict:                 "resource already exists",
	ErrEmptyCart:                "cart is empty",
	ErrInsufficientStock:        "insufficient stock",
	ErrProductUnavailable:       "product is not available",
	ErrBelowMinimumOrder:        "quantity is below minimum order",
	ErrInvalidOrderStatus:       "order status does not allow this action",
	ErrInvalidProductStatus:     "product status does not allow this action",
	ErrDeliveryAlreadyProcessed: "delivery confirmation already processed",
	ErrRoleAlreadyAssigned:      "role already assigned",
	ErrInvalidOTP:               "otp invalid or expired",
	ErrTooManyRequests:          "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                  http.StatusOK,
	ErrInternal:                 http.StatusInternalServerError,
	ErrNotFound:                 http.StatusNotFound,
	ErrInvalidRequest:           http.StatusBadRequest,
	ErrUnauthorize:              http.StatusUnauthorized,
	ErrCredentialExists:         http.StatusBadRequest,
	ErrInvalidPassword:          http.StatusBadRequest,
	ErrForbidden:                http.StatusForbidden,
	ErrConflict:                 http.StatusConflict,
	ErrEmptyCart:                http.StatusBadRequest,
	ErrInsufficientStock:        http.StatusBadRequest,
	ErrProductUnavailable:       http.StatusBadRequest,
	ErrBelowMinimumOrder:        http.StatusBadRequest,
	ErrInvalidOrderStatus:       http.StatusConflict,
	ErrInvalidProductStatus:     http.StatusConflict,
	ErrDeliveryAlreadyProcessed: http.StatusConflict,
	ErrRoleAlreadyAssigned:      http.StatusConflict,
	ErrInvalidOTP:               http.StatusBadRequest,
	ErrTooManyRequests:          http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                  "0000",
	ErrInternal:                 "0001",
	ErrNotFound:                 "0002",
	ErrInvalidRequest:           "0003",
	ErrUnauthorize:              "0004",
	ErrCredentialExists:         "0005",
	ErrInvalidPassword:          "0006",
	ErrForbidden:                "0007",
	ErrConflict:                 "0008",
	ErrEmptyCart:                "0009",
	ErrInsufficientStock:        "0010",
	ErrProductUnavailable:       "0011",
	ErrBelowMinimumOrder:        "0012",
	ErrInvalidOrderStatus:       "0013",
	ErrInvalidProductStatus:     "0014",
	ErrDeliveryAlreadyProcessed: "0015",
	ErrRoleAlreadyAssigned:      "0016",
	ErrInvalidOTP:               "0017",
	ErrTooManyRequests:          "0018",
}
