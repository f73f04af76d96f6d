package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamestorehq/gamestore/internal/api/request"
	"github.com/gamestorehq/gamestore/internal/api/response"
	"github.com/gamestorehq/gamestore/internal/model"
	"github.com/gamestorehq/gamestore/internal/services/catalog"
	"github.com/gamestorehq/gamestore/internal/storage"
)

// GameHandler handles catalog endpoints
type GameHandler struct {
	catalogService *catalog.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(catalogService *catalog.Service) *GameHandler {
	return &GameHandler{
		catalogService: catalogService,
	}
}

// List handles GET /games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := storage.GameFilter{
		Search:   q.Get("search"),
		Platform: q.Get("platform"),
		Category: q.Get("category"),
	}

	games, err := h.catalogService.ListGames(r.Context(), filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Get handles GET /games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.catalogService.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Create handles POST /admin/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Title == "" {
		WriteError(w, NewInvalidRequestError("title is required"))
		return
	}
	if req.Platform == "" {
		WriteError(w, NewInvalidRequestError("platform is required"))
		return
	}
	if req.Price < 0 {
		WriteError(w, NewInvalidRequestError("price must not be negative"))
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	game, err := h.catalogService.CreateGame(r.Context(), model.Game{
		Title:       req.Title,
		Platform:    req.Platform,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
		Category:    req.Category,
		InStock:     inStock,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreatedResponse{ID: string(game.ID)})
}

// Update handles PUT /admin/games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Price != nil && *req.Price < 0 {
		WriteError(w, NewInvalidRequestError("price must not be negative"))
		return
	}

	updated, err := h.catalogService.UpdateGame(r.Context(), id, model.GamePatch{
		Title:       req.Title,
		Platform:    req.Platform,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
		Category:    req.Category,
		InStock:     req.InStock,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UpdatedResponse{Updated: updated})
}

// Delete handles DELETE /admin/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogService.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeletedResponse{Deleted: true})
}

// pathID extracts and validates the {id} path variable
func pathID(r *http.Request) (model.ID, error) {
	return model.ParseID(mux.Vars(r)["id"])
}
