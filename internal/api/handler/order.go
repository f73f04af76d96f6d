package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gamestorehq/gamestore/internal/api/middleware"
	"github.com/gamestorehq/gamestore/internal/api/request"
	"github.com/gamestorehq/gamestore/internal/api/response"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/services/order"
)

// OrderHandler handles order placement and moderation endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create handles POST /orders. Runs under optional auth: identity is
// attached when present, anonymous purchases are allowed.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	gameID, err := model.ParseID(req.GameID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.TransactionID == "" {
		WriteError(w, NewInvalidRequestError("transaction_id is required"))
		return
	}
	if !validEmail(req.DeliveryEmail) {
		WriteError(w, NewInvalidRequestError("a valid delivery_email is required"))
		return
	}

	var userID model.ID
	if user := middleware.GetUser(r.Context()); user != nil {
		userID = user.ID
	}

	placed, err := h.orderService.PlaceOrder(r.Context(), userID, gameID, req.TransactionID, req.DeliveryEmail)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.OrderPlacedResponse{
		ID:      string(placed.ID),
		Message: order.DeliveryMessage,
	})
}

// Mine handles GET /orders/mine
func (h *OrderHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	orders, err := h.orderService.OrdersForUser(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OrdersFromModel(orders))
}

// AdminList handles GET /admin/orders
func (h *OrderHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	var status model.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := model.ParseOrderStatus(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		status = parsed
	}

	orders, err := h.orderService.ListOrders(r.Context(), status, 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.OrdersFromModel(orders))
}

// UpdateStatus handles POST /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.orderService.SetStatus(r.Context(), id, req.Status); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UpdatedResponse{Updated: true})
}
