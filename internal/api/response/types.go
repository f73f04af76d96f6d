package response

import (
	"time"

	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/services/auth"
)

// TokenResponse is the response for registration and login
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenResponseFromSession creates a TokenResponse from an issued session
func TokenResponseFromSession(s *auth.Session) TokenResponse {
	return TokenResponse{
		Token: s.Token,
		Role:  string(s.User.Role),
		Name:  s.User.Name,
		Email: s.User.Email,
	}
}

// User represents a user in API responses. The password hash is never
// part of this shape.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Game represents a catalog entry in API responses
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Platform    string    `json:"platform"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images"`
	Category    string    `json:"category,omitempty"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	images := g.Images
	if images == nil {
		images = []string{}
	}
	return Game{
		ID:          string(g.ID),
		Title:       g.Title,
		Platform:    g.Platform,
		Price:       g.Price,
		Description: g.Description,
		Images:      images,
		Category:    g.Category,
		InStock:     g.InStock,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// CreatedResponse carries the ID of a newly created entity
type CreatedResponse struct {
	ID string `json:"id"`
}

// UpdatedResponse reports whether an update was applied
type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

// DeletedResponse reports a successful deletion
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// Order represents an order in API responses
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id,omitempty"`
	GameID        string    `json:"game_id"`
	TransactionID string    `json:"transaction_id"`
	PaymentMethod string    `json:"payment_method"`
	DeliveryEmail string    `json:"delivery_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrderFromModel converts a model.Order to a response Order
func OrderFromModel(o *model.Order) Order {
	return Order{
		ID:            string(o.ID),
		UserID:        string(o.UserID),
		GameID:        string(o.GameID),
		TransactionID: o.TransactionID,
		PaymentMethod: o.PaymentMethod,
		DeliveryEmail: o.DeliveryEmail,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrdersFromModel converts a slice of orders
func OrdersFromModel(orders []*model.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = OrderFromModel(o)
	}
	return out
}

// OrderPlacedResponse is returned after a successful order placement
type OrderPlacedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
