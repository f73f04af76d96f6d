package storage

import (
	"context"
	"time"

	"github.com/gamestorehq/gamestore/internal/model"
)

// GameFilter narrows a catalog listing. Zero values mean "no filter".
type GameFilter struct {
	Search   string // case-insensitive substring over title and description
	Platform string // case-insensitive exact match
	Category string // case-insensitive substring
	Limit    int
}

// Storage defines the interface for data persistence.
//
// Uniqueness of user emails and of order transaction IDs is enforced here,
// atomically, rather than by caller-side check-then-insert: two concurrent
// CreateUser calls with the same email must yield exactly one success and
// one model.ErrEmailTaken, and likewise CreateOrder with a duplicate
// transaction ID must yield model.ErrDuplicateTransaction.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.ID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Session operations
	CreateSession(ctx context.Context, session *model.Session) error
	GetSessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteExpiredSessions(ctx context.Context, now int64) error

	// Game operations
	CreateGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.ID) (*model.Game, error)
	UpdateGame(ctx context.Context, id model.ID, patch model.GamePatch, updatedAt time.Time) error
	DeleteGame(ctx context.Context, id model.ID) error
	ListGames(ctx context.Context, filter GameFilter) ([]*model.Game, error)

	// Order operations
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, id model.ID) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID model.ID) ([]*model.Order, error)
	ListOrders(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id model.ID, status model.OrderStatus, updatedAt time.Time) error
}
