package constant

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusShipped   InvoiceStatus = "shipped"
	InvoiceStatusDelivered InvoiceStatus = "delivered"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// DeliveryStatus is terminal once CONFIRMED or CANCELLED.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusConfirmed DeliveryStatus = "CONFIRMED"
	DeliveryStatusCancelled DeliveryStatus = "CANCELLED"
)

const (
	DefaultDeliveryCodeLength = 6
	// MaxDeliveryCodeLength is the width of delivery_confirmation.delivery_code.
	MaxDeliveryCodeLength = 12
)
