package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) newUser(email string) *model.User {
	return &model.User{
		ID:           model.NewID(),
		Name:         "Alice",
		Email:        email,
		PasswordHash: "hash",
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    s.now,
	}
}

func (s *StorageSuite) newGame(title string) *model.Game {
	return &model.Game{
		ID:        model.NewID(),
		Title:     title,
		Platform:  "PC",
		Price:     29.99,
		InStock:   true,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
}

func (s *StorageSuite) newOrder(txn string, userID model.ID) *model.Order {
	return &model.Order{
		ID:            model.NewID(),
		UserID:        userID,
		GameID:        model.NewID(),
		TransactionID: txn,
		PaymentMethod: model.DefaultPaymentMethod,
		DeliveryEmail: "alice@example.com",
		Status:        model.OrderPending,
		CreatedAt:     s.now,
		UpdatedAt:     s.now,
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := s.newUser("alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, got.Email)

	got, err = s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
}

func (s *StorageSuite) TestGetUserFailsWhenMissing() {
	_, err := s.storage.GetUser(s.ctx, model.NewID())
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateEmail() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice@example.com")))
	s.ErrorIs(s.storage.CreateUser(s.ctx, s.newUser("alice@example.com")), model.ErrEmailTaken)
}

func (s *StorageSuite) TestCreateUserDuplicateEmailUnderConcurrency() {
	// Two racing registrations for the same email: exactly one wins
	const attempts = 50

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.storage.CreateUser(s.ctx, s.newUser("race@example.com"))
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, model.ErrEmailTaken):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, successes)
	s.Equal(attempts-1, conflicts)
}

func (s *StorageSuite) TestUserIsCopiedOnReadAndWrite() {
	user := s.newUser("alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	// Mutating the caller's copy must not leak into the store
	user.Name = "Mallory"

	got, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("Alice", got.Name)

	// Nor must mutating a read result
	got.Name = "Mallory"
	again, _ := s.storage.GetUser(s.ctx, user.ID)
	s.Equal("Alice", again.Name)
}

// Session tests

func (s *StorageSuite) TestCreateAndGetSession() {
	session := &model.Session{
		Token:     "token-1",
		UserID:    model.NewID(),
		ExpiresAt: s.now.Add(time.Hour).Unix(),
	}
	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	got, err := s.storage.GetSessionByToken(s.ctx, "token-1")
	s.Require().NoError(err)
	s.Equal(session.UserID, got.UserID)
	s.Equal(session.ExpiresAt, got.ExpiresAt)
}

func (s *StorageSuite) TestGetSessionFailsWhenMissing() {
	_, err := s.storage.GetSessionByToken(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteExpiredSessions() {
	expired := &model.Session{Token: "expired", UserID: model.NewID(), ExpiresAt: s.now.Unix()}
	live := &model.Session{Token: "live", UserID: model.NewID(), ExpiresAt: s.now.Add(time.Hour).Unix()}
	s.Require().NoError(s.storage.CreateSession(s.ctx, expired))
	s.Require().NoError(s.storage.CreateSession(s.ctx, live))

	s.Require().NoError(s.storage.DeleteExpiredSessions(s.ctx, s.now.Add(time.Minute).Unix()))

	_, err := s.storage.GetSessionByToken(s.ctx, "expired")
	s.ErrorIs(err, model.ErrSessionNotFound)
	_, err = s.storage.GetSessionByToken(s.ctx, "live")
	s.NoError(err)
}

func (s *StorageSuite) TestDeleteExpiredSessionsKeepsSessionAtExactExpiry() {
	session := &model.Session{Token: "edge", UserID: model.NewID(), ExpiresAt: s.now.Unix()}
	s.Require().NoError(s.storage.CreateSession(s.ctx, session))

	// now == ExpiresAt is not yet expired
	s.Require().NoError(s.storage.DeleteExpiredSessions(s.ctx, s.now.Unix()))

	_, err := s.storage.GetSessionByToken(s.ctx, "edge")
	s.NoError(err)
}

// Game tests

func (s *StorageSuite) TestCreateAndGetGame() {
	game := s.newGame("Elden Ring")
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Elden Ring", got.Title)
}

func (s *StorageSuite) TestUpdateGameAppliesPatchFields() {
	game := s.newGame("Elden Ring")
	s.Require().NoError(s.storage.CreateGame(s.ctx, game))

	price := 19.99
	inStock := false
	later := s.now.Add(time.Hour)
	err := s.storage.UpdateGame(s.ctx, game.ID, model.GamePatch{Price: &price, InStock: &inStock}, later)
	s.Require().NoError(err)

	got, _ := s.storage.GetGame(s.ctx, game.ID)
	s.Equal(19.99, got.Price)
	s.False(got.InStock)
	s.Equal("Elden Ring", got.Title)
	s.Equal(later, got.UpdatedAt)
}

func (s *StorageSuite) TestUpdateGameFailsWhenMissing() {
	title := "Anything"
	err := s.storage.UpdateGame(s.ctx, model.NewID(), model.GamePatch{Title: &title}, s.now)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGameRemovesFromListing() {
	first := s.newGame("Alpha")
	second := s.newGame("Beta")
	s.Require().NoError(s.storage.CreateGame(s.ctx, first))
	s.Require().NoError(s.storage.CreateGame(s.ctx, second))

	s.Require().NoError(s.storage.DeleteGame(s.ctx, first.ID))

	games, err := s.storage.ListGames(s.ctx, storage.GameFilter{})
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(second.ID, games[0].ID)

	s.ErrorIs(s.storage.DeleteGame(s.ctx, first.ID), model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesFilterCombination() {
	g1 := s.newGame("Elden Ring")
	g1.Platform = "PS5"
	g1.Category = "RPG"
	g2 := s.newGame("Elden Ring")
	g2.Platform = "PC"
	g2.Category = "RPG"
	s.Require().NoError(s.storage.CreateGame(s.ctx, g1))
	s.Require().NoError(s.storage.CreateGame(s.ctx, g2))

	games, err := s.storage.ListGames(s.ctx, storage.GameFilter{Search: "elden", Platform: "PC", Category: "rpg"})
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(g2.ID, games[0].ID)
}

// Order tests

func (s *StorageSuite) TestCreateAndGetOrder() {
	order := s.newOrder("TXN-001", model.NewID())
	s.Require().NoError(s.storage.CreateOrder(s.ctx, order))

	got, err := s.storage.GetOrder(s.ctx, order.ID)
	s.Require().NoError(err)
	s.Equal("TXN-001", got.TransactionID)
}

func (s *StorageSuite) TestCreateOrderRejectsDuplicateTransaction() {
	s.Require().NoError(s.storage.CreateOrder(s.ctx, s.newOrder("TXN-001", model.NewID())))
	err := s.storage.CreateOrder(s.ctx, s.newOrder("TXN-001", model.NewID()))
	s.ErrorIs(err, model.ErrDuplicateTransaction)
}

func (s *StorageSuite) TestCreateOrderDuplicateTransactionUnderConcurrency() {
	const attempts = 50

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.storage.CreateOrder(s.ctx, s.newOrder("TXN-RACE", model.NewID()))
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
		} else {
			s.Require().ErrorIs(err, model.ErrDuplicateTransaction)
		}
	}
	s.Equal(1, successes)
}

func (s *StorageSuite) TestListOrdersByUser() {
	alice := model.NewID()
	bob := model.NewID()
	s.Require().NoError(s.storage.CreateOrder(s.ctx, s.newOrder("TXN-001", alice)))
	s.Require().NoError(s.storage.CreateOrder(s.ctx, s.newOrder("TXN-002", bob)))
	s.Require().NoError(s.storage.CreateOrder(s.ctx, s.newOrder("TXN-003", alice)))

	orders, err := s.storage.ListOrdersByUser(s.ctx, alice)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal("TXN-001", orders[0].TransactionID)
	s.Equal("TXN-003", orders[1].TransactionID)
}

func (s *StorageSuite) TestListOrdersStatusFilterAndLimit() {
	for i := 0; i < 5; i++ {
		order := s.newOrder(fmt.Sprintf("TXN-%03d", i), model.NewID())
		s.Require().NoError(s.storage.CreateOrder(s.ctx, order))
		if i%2 == 0 {
			s.Require().NoError(s.storage.UpdateOrderStatus(s.ctx, order.ID, model.OrderVerified, s.now))
		}
	}

	orders, err := s.storage.ListOrders(s.ctx, model.OrderVerified, 0)
	s.Require().NoError(err)
	s.Len(orders, 3)

	orders, err = s.storage.ListOrders(s.ctx, "", 2)
	s.Require().NoError(err)
	s.Len(orders, 2)
}

func (s *StorageSuite) TestUpdateOrderStatus() {
	order := s.newOrder("TXN-001", model.NewID())
	s.Require().NoError(s.storage.CreateOrder(s.ctx, order))

	later := s.now.Add(time.Hour)
	s.Require().NoError(s.storage.UpdateOrderStatus(s.ctx, order.ID, model.OrderDelivered, later))

	got, _ := s.storage.GetOrder(s.ctx, order.ID)
	s.Equal(model.OrderDelivered, got.Status)
	s.Equal(later, got.UpdatedAt)
}

func (s *StorageSuite) TestUpdateOrderStatusFailsWhenMissing() {
	err := s.storage.UpdateOrderStatus(s.ctx, model.NewID(), model.OrderVerified, s.now)
	s.ErrorIs(err, model.ErrOrderNotFound)
}
