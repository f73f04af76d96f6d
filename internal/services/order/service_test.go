package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gamestorehq/gamestore/internal/dependencies/mocks"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage/memory"
	"github.com/gamestorehq/gamestore/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context

	game *model.Game
	user model.ID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	s.game = &model.Game{
		ID:       model.NewID(),
		Title:    "Elden Ring",
		Platform: "PS5",
		Price:    59.99,
		InStock:  true,
	}
	s.Require().NoError(s.storage.CreateGame(s.ctx, s.game))
	s.user = model.NewID()
}

// PlaceOrder tests

func (s *ServiceSuite) TestPlaceOrderSucceeds() {
	o, err := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")
	s.Require().NoError(err)

	s.NotEmpty(o.ID)
	s.Equal(s.user, o.UserID)
	s.Equal(s.game.ID, o.GameID)
	s.Equal("TXN-001", o.TransactionID)
	s.Equal(model.DefaultPaymentMethod, o.PaymentMethod)
	s.Equal(model.OrderPending, o.Status)
	s.Equal(s.clock.Now(), o.CreatedAt)
}

func (s *ServiceSuite) TestPlaceOrderIsPersisted() {
	placed, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")

	got, err := s.storage.GetOrder(s.ctx, placed.ID)
	s.Require().NoError(err)
	s.Equal(placed.TransactionID, got.TransactionID)
}

func (s *ServiceSuite) TestPlaceOrderAnonymously() {
	o, err := s.service.PlaceOrder(s.ctx, "", s.game.ID, "TXN-001", "guest@example.com")
	s.Require().NoError(err)
	s.Empty(o.UserID)
}

func (s *ServiceSuite) TestPlaceOrderFailsForUnknownGame() {
	_, err := s.service.PlaceOrder(s.ctx, s.user, model.NewID(), "TXN-001", "alice@example.com")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestPlaceOrderRejectsReplayedTransaction() {
	_, err := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")
	s.Require().NoError(err)

	// Same transaction ID, different user and email
	_, err = s.service.PlaceOrder(s.ctx, model.NewID(), s.game.ID, "TXN-001", "mallory@example.com")
	s.ErrorIs(err, model.ErrDuplicateTransaction)
}

// OrdersForUser tests

func (s *ServiceSuite) TestOrdersForUserReturnsOnlyOwnOrders() {
	mine, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")
	_, _ = s.service.PlaceOrder(s.ctx, model.NewID(), s.game.ID, "TXN-002", "bob@example.com")
	_, _ = s.service.PlaceOrder(s.ctx, "", s.game.ID, "TXN-003", "guest@example.com")

	orders, err := s.service.OrdersForUser(s.ctx, s.user)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(mine.ID, orders[0].ID)
}

func (s *ServiceSuite) TestOrdersForUserEmptyForUnknownUser() {
	orders, err := s.service.OrdersForUser(s.ctx, model.NewID())
	s.Require().NoError(err)
	s.Empty(orders)
}

// ListOrders tests

func (s *ServiceSuite) TestListOrdersReturnsAll() {
	_, _ = s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")
	_, _ = s.service.PlaceOrder(s.ctx, "", s.game.ID, "TXN-002", "guest@example.com")

	orders, err := s.service.ListOrders(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Len(orders, 2)
}

func (s *ServiceSuite) TestListOrdersFiltersByStatus() {
	placed, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")
	_, _ = s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-002", "alice@example.com")

	s.Require().NoError(s.service.SetStatus(s.ctx, placed.ID, "verified"))

	orders, err := s.service.ListOrders(s.ctx, model.OrderVerified, 0)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(placed.ID, orders[0].ID)

	orders, err = s.service.ListOrders(s.ctx, model.OrderPending, 0)
	s.Require().NoError(err)
	s.Len(orders, 1)
}

func (s *ServiceSuite) TestListOrdersCapsLimit() {
	for i := 0; i < ListLimit+5; i++ {
		_, err := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, fmt.Sprintf("TXN-%03d", i), "alice@example.com")
		s.Require().NoError(err)
	}

	orders, err := s.service.ListOrders(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Len(orders, ListLimit)
}

// SetStatus tests

func (s *ServiceSuite) TestSetStatusUpdatesOrder() {
	placed, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")

	s.clock.Advance(time.Hour)
	s.Require().NoError(s.service.SetStatus(s.ctx, placed.ID, "delivered"))

	got, err := s.storage.GetOrder(s.ctx, placed.ID)
	s.Require().NoError(err)
	s.Equal(model.OrderDelivered, got.Status)
	s.Equal(s.clock.Now(), got.UpdatedAt)
	s.Equal(placed.CreatedAt, got.CreatedAt)
}

func (s *ServiceSuite) TestSetStatusAllowsAnyTransition() {
	placed, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")

	// No transition graph: delivered back to pending is allowed
	s.Require().NoError(s.service.SetStatus(s.ctx, placed.ID, "delivered"))
	s.Require().NoError(s.service.SetStatus(s.ctx, placed.ID, "pending"))

	got, _ := s.storage.GetOrder(s.ctx, placed.ID)
	s.Equal(model.OrderPending, got.Status)
}

func (s *ServiceSuite) TestSetStatusRejectsUnknownStatus() {
	placed, _ := s.service.PlaceOrder(s.ctx, s.user, s.game.ID, "TXN-001", "alice@example.com")

	err := s.service.SetStatus(s.ctx, placed.ID, "shipped")
	s.ErrorIs(err, model.ErrInvalidStatus)

	// Order untouched
	got, _ := s.storage.GetOrder(s.ctx, placed.ID)
	s.Equal(model.OrderPending, got.Status)
}

func (s *ServiceSuite) TestSetStatusFailsForUnknownOrder() {
	err := s.service.SetStatus(s.ctx, model.NewID(), "verified")
	s.ErrorIs(err, model.ErrOrderNotFound)
}
