package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for adding a catalog entry
type CreateGameRequest struct {
	Title       string   `json:"title"`
	Platform    string   `json:"platform"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
}

// UpdateGameRequest is the request body for a partial game update.
// Absent fields are left unchanged.
type UpdateGameRequest struct {
	Title       *string   `json:"title,omitempty"`
	Platform    *string   `json:"platform,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Category    *string   `json:"category,omitempty"`
	InStock     *bool     `json:"in_stock,omitempty"`
}

// CreateOrderRequest is the request body for placing an order
type CreateOrderRequest struct {
	GameID        string `json:"game_id"`
	TransactionID string `json:"transaction_id"`
	DeliveryEmail string `json:"delivery_email"`
}

// UpdateOrderStatusRequest is the request body for moving an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
