package model

import "time"

// OrderStatus is the moderation state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderVerified  OrderStatus = "verified"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus validates a status string against the known set
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPending, OrderVerified, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// DefaultPaymentMethod is recorded on every order; payment confirmation is
// manual, via an admin status transition.
const DefaultPaymentMethod = "NAGAD"

// Order is a purchase of a single game. UserID is empty for anonymous
// purchases. TransactionID is the externally supplied payment reference and
// must be globally unique, so the same payment cannot be replayed.
// Status transitions are admin-only and unconstrained.
type Order struct {
	ID            ID
	UserID        ID // empty when placed anonymously
	GameID        ID
	TransactionID string
	PaymentMethod string
	DeliveryEmail string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
