package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entities are stored as JSON documents under namespaced keys. The unique
// indexes on email and transaction ID are enforced with SETNX, so concurrent
// duplicate writes cannot both succeed.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	// Claim the email index first; SETNX makes the uniqueness check atomic
	ok, err := s.client.SetNX(ctx, emailIndexKey(user.Email), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrEmailTaken
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.ID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.ID(idStr))
}

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Expire the key when the session expires; the authenticator still
	// checks ExpiresAt itself, so a lingering key is harmless
	ttl := time.Until(time.Unix(session.ExpiresAt, 0))
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, sessionKey(session.Token), data, ttl).Err()
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteExpiredSessions is a no-op: session keys carry a native TTL
func (s *Storage) DeleteExpiredSessions(ctx context.Context, now int64) error {
	return nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, 0)
	pipe.RPush(ctx, gamesIndexKey(), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.ID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) UpdateGame(ctx context.Context, id model.ID, patch model.GamePatch, updatedAt time.Time) error {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		return err
	}

	patch.Apply(game)
	game.UpdatedAt = updatedAt

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(id), data, 0).Err()
}

func (s *Storage) DeleteGame(ctx context.Context, id model.ID) error {
	deleted, err := s.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrGameNotFound
	}
	return s.client.LRem(ctx, gamesIndexKey(), 0, string(id)).Err()
}

func (s *Storage) ListGames(ctx context.Context, filter storage.GameFilter) ([]*model.Game, error) {
	ids, err := s.client.LRange(ctx, gamesIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(ids))
	for _, id := range ids {
		game, err := s.GetGame(ctx, model.ID(id))
		if err != nil {
			if errors.Is(err, model.ErrGameNotFound) {
				continue
			}
			return nil, err
		}
		if !matchesGame(game, filter) {
			continue
		}
		games = append(games, game)
		if filter.Limit > 0 && len(games) >= filter.Limit {
			break
		}
	}
	return games, nil
}

func matchesGame(g *model.Game, f storage.GameFilter) bool {
	if f.Platform != "" && !strings.EqualFold(g.Platform, f.Platform) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(g.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(g.Title), needle) &&
			!strings.Contains(strings.ToLower(g.Description), needle) {
			return false
		}
	}
	return true
}

// Order operations

func (s *Storage) CreateOrder(ctx context.Context, order *model.Order) error {
	// Claim the transaction index first so the same payment reference can
	// never be used twice, even under concurrent submissions
	ok, err := s.client.SetNX(ctx, txnIndexKey(order.TransactionID), string(order.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrDuplicateTransaction
	}

	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, orderKey(order.ID), data, 0)
	pipe.RPush(ctx, ordersIndexKey(), string(order.ID))
	if order.UserID != "" {
		pipe.RPush(ctx, ordersByUserIndexKey(order.UserID), string(order.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetOrder(ctx context.Context, id model.ID) (*model.Order, error) {
	data, err := s.client.Get(ctx, orderKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Storage) ListOrdersByUser(ctx context.Context, userID model.ID) ([]*model.Order, error) {
	ids, err := s.client.LRange(ctx, ordersByUserIndexKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return s.collectOrders(ctx, ids, "", 0)
}

func (s *Storage) ListOrders(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error) {
	ids, err := s.client.LRange(ctx, ordersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return s.collectOrders(ctx, ids, status, limit)
}

func (s *Storage) collectOrders(ctx context.Context, ids []string, status model.OrderStatus, limit int) ([]*model.Order, error) {
	orders := make([]*model.Order, 0, len(ids))
	for _, id := range ids {
		order, err := s.GetOrder(ctx, model.ID(id))
		if err != nil {
			if errors.Is(err, model.ErrOrderNotFound) {
				continue
			}
			return nil, err
		}
		if status != "" && order.Status != status {
			continue
		}
		orders = append(orders, order)
		if limit > 0 && len(orders) >= limit {
			break
		}
	}
	return orders, nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id model.ID, status model.OrderStatus, updatedAt time.Time) error {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	order.Status = status
	order.UpdatedAt = updatedAt

	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, orderKey(id), data, 0).Err()
}
