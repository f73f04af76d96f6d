package order

import (
	"context"
	"log/slog"

	"github.com/gamestorehq/gamestore/internal/dependencies/clock"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// ListLimit caps admin order listings
const ListLimit = 100

// DeliveryMessage is returned to the customer after a successful order
const DeliveryMessage = "Order placed. Delivery within 2 hours after verification."

// Service manages the order workflow: customer placement and admin
// moderation. Referential integrity against the catalog is checked here at
// placement time; the store itself enforces no cross-collection keys.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new order Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// PlaceOrder records a purchase of a game. userID is empty for anonymous
// purchases. The game must exist, and the transaction ID must never have
// been used before; the store enforces that atomically.
func (s *Service) PlaceOrder(ctx context.Context, userID, gameID model.ID, transactionID, deliveryEmail string) (*model.Order, error) {
	if _, err := s.storage.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	o := &model.Order{
		ID:            model.NewID(),
		UserID:        userID,
		GameID:        gameID,
		TransactionID: transactionID,
		PaymentMethod: model.DefaultPaymentMethod,
		DeliveryEmail: deliveryEmail,
		Status:        model.OrderPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.storage.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		slog.String("order_id", string(o.ID)),
		slog.String("game_id", string(gameID)),
		slog.Bool("anonymous", userID == ""),
	)
	return o, nil
}

// OrdersForUser returns every order placed by a user
func (s *Service) OrdersForUser(ctx context.Context, userID model.ID) ([]*model.Order, error) {
	return s.storage.ListOrdersByUser(ctx, userID)
}

// ListOrders returns orders for admin review, optionally filtered by
// status, capped at ListLimit
func (s *Service) ListOrders(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error) {
	if limit <= 0 || limit > ListLimit {
		limit = ListLimit
	}
	return s.storage.ListOrders(ctx, status, limit)
}

// SetStatus moves an order to a new moderation status. Any status is
// reachable from any other.
func (s *Service) SetStatus(ctx context.Context, id model.ID, status string) error {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	if err := s.storage.UpdateOrderStatus(ctx, id, parsed, s.clock.Now()); err != nil {
		return err
	}

	s.logger.Info("order status updated",
		slog.String("order_id", string(id)),
		slog.String("status", string(parsed)),
	)
	return nil
}
