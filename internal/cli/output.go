package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case TokenResult:
		o.printTokenResult(v)
	case UserResult:
		o.printUserResult(v)
	case GameResult:
		o.printGameResult(v)
	case []GameResult:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printGameResult(v[i])
		}
	case OrderResult:
		o.printOrderResult(v)
	case []OrderResult:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printOrderResult(v[i])
		}
	case OrderPlacedResult:
		fmt.Printf("Order ID: %s\n%s\n", v.ID, v.Message)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printTokenResult(t TokenResult) {
	fmt.Printf("Logged in as %s <%s> (role: %s)\n", t.Name, t.Email, t.Role)
	fmt.Printf("Token: %s\n", t.Token)
}

func (o *Output) printUserResult(u UserResult) {
	fmt.Printf("ID:     %s\n", u.ID)
	fmt.Printf("Name:   %s\n", u.Name)
	fmt.Printf("Email:  %s\n", u.Email)
	fmt.Printf("Role:   %s\n", u.Role)
	fmt.Printf("Active: %t\n", u.IsActive)
}

func (o *Output) printGameResult(g GameResult) {
	fmt.Printf("ID:       %s\n", g.ID)
	fmt.Printf("Title:    %s\n", g.Title)
	fmt.Printf("Platform: %s\n", g.Platform)
	fmt.Printf("Price:    %.2f\n", g.Price)
	if g.Category != "" {
		fmt.Printf("Category: %s\n", g.Category)
	}
	fmt.Printf("In stock: %t\n", g.InStock)
}

func (o *Output) printOrderResult(v OrderResult) {
	fmt.Printf("ID:      %s\n", v.ID)
	fmt.Printf("Game:    %s\n", v.GameID)
	fmt.Printf("Txn:     %s\n", v.TransactionID)
	fmt.Printf("Email:   %s\n", v.DeliveryEmail)
	fmt.Printf("Status:  %s\n", v.Status)
}

// TokenResult is the response for register/login
type TokenResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResult matches the /me response
type UserResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// GameResult matches the catalog responses
type GameResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Platform    string   `json:"platform"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Category    string   `json:"category,omitempty"`
	InStock     bool     `json:"in_stock"`
}

// CreatedResult matches create responses
type CreatedResult struct {
	ID string `json:"id"`
}

// UpdatedResult matches update responses
type UpdatedResult struct {
	Updated bool `json:"updated"`
}

// DeletedResult matches delete responses
type DeletedResult struct {
	Deleted bool `json:"deleted"`
}

// OrderResult matches the order responses
type OrderResult struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id,omitempty"`
	GameID        string `json:"game_id"`
	TransactionID string `json:"transaction_id"`
	PaymentMethod string `json:"payment_method"`
	DeliveryEmail string `json:"delivery_email"`
	Status        string `json:"status"`
}

// OrderPlacedResult matches the order placement response
type OrderPlacedResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// HealthResult matches the health response
type HealthResult struct {
	Status string `json:"status"`
}
