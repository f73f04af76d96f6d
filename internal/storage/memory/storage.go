package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// The write lock is held across check-and-insert, so the unique indexes on
// email and transaction ID cannot race.
type Storage struct {
	mu sync.RWMutex

	users      map[model.ID]*model.User
	emailIndex map[string]model.ID
	sessions   map[string]*model.Session
	games      map[model.ID]*model.Game
	gameOrder  []model.ID
	orders     map[model.ID]*model.Order
	orderOrder []model.ID
	txnIndex   map[string]model.ID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:      make(map[model.ID]*model.User),
		emailIndex: make(map[string]model.ID),
		sessions:   make(map[string]*model.Session),
		games:      make(map[model.ID]*model.Game),
		orders:     make(map[model.ID]*model.Order),
		txnIndex:   make(map[string]model.ID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emailIndex[user.Email]; taken {
		return model.ErrEmailTaken
	}
	u := *user
	s.users[u.ID] = &u
	s.emailIndex[u.Email] = u.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.ID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// Session operations

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := *session
	s.sessions[sess.Token] = &sess
	return nil
}

func (s *Storage) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	sess := *session
	return &sess, nil
}

func (s *Storage) DeleteExpiredSessions(ctx context.Context, now int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if now > session.ExpiresAt {
			delete(s.sessions, token)
		}
	}
	return nil
}

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := *game
	s.games[g.ID] = &g
	s.gameOrder = append(s.gameOrder, g.ID)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.ID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	g := *game
	return &g, nil
}

func (s *Storage) UpdateGame(ctx context.Context, id model.ID, patch model.GamePatch, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return model.ErrGameNotFound
	}
	patch.Apply(game)
	game.UpdatedAt = updatedAt
	return nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return model.ErrGameNotFound
	}
	delete(s.games, id)
	for i, gid := range s.gameOrder {
		if gid == id {
			s.gameOrder = append(s.gameOrder[:i], s.gameOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context, filter storage.GameFilter) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0)
	for _, id := range s.gameOrder {
		game, ok := s.games[id]
		if !ok || !matchesGame(game, filter) {
			continue
		}
		g := *game
		games = append(games, &g)
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
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, used := s.txnIndex[order.TransactionID]; used {
		return model.ErrDuplicateTransaction
	}
	o := *order
	s.orders[o.ID] = &o
	s.orderOrder = append(s.orderOrder, o.ID)
	s.txnIndex[o.TransactionID] = o.ID
	return nil
}

func (s *Storage) GetOrder(ctx context.Context, id model.ID) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	o := *order
	return &o, nil
}

func (s *Storage) ListOrdersByUser(ctx context.Context, userID model.ID) ([]*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]*model.Order, 0)
	for _, id := range s.orderOrder {
		order, ok := s.orders[id]
		if !ok || order.UserID != userID {
			continue
		}
		o := *order
		orders = append(orders, &o)
	}
	return orders, nil
}

func (s *Storage) ListOrders(ctx context.Context, status model.OrderStatus, limit int) ([]*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]*model.Order, 0)
	for _, id := range s.orderOrder {
		order, ok := s.orders[id]
		if !ok {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		o := *order
		orders = append(orders, &o)
		if limit > 0 && len(orders) >= limit {
			break
		}
	}
	return orders, nil
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id model.ID, status model.OrderStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return model.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	return nil
}
