package constant

type NotificationEvent string

const (
	EventProductApproved   NotificationEvent = "product_approved"
	EventProductRejected   NotificationEvent = "product_rejected"
	EventOrderReceived     NotificationEvent = "order_received"
	EventOrderCancelled    NotificationEvent = "order_cancelled"
	EventDeliveryConfirmed NotificationEvent = "delivery_confirmed"
	EventInvoicePaid       NotificationEvent = "invoice_paid"
)

var NotificationTitle = map[NotificationEvent]string{
	EventProductApproved:   "Product approved",
	EventProductRejected:   "Product rejected",
	EventOrderReceived:     "New order received",
	EventOrderCancelled:    "Order cancelled",
	EventDeliveryConfirmed: "Delivery confirmed",
	EventInvoicePaid:       "Invoice paid",
}

const (
	EventsExchange         = "marketplace_events"
	NotificationQueue      = "notification_queue"
	NotificationRoutingKey = "notification.*"
	OTPQueue               = "otp_delivery_queue"
	OTPRoutingKey          = "otp.send"
)
