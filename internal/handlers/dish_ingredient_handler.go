package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/restaurant-api/internal/models"
	"github.com/Lixing-Zhang/restaurant-api/internal/repository"
	"github.com/go-chi/chi/v5"
)

// DishIDParam is the route parameter holding the dish id
const DishIDParam = "platillo_id"

// DishIngredientHandler serves the ingredients nested under a dish
type DishIngredientHandler struct {
	repo repository.DishIngredientRepository
	log  *slog.Logger
}

// NewDishIngredientHandler creates a new dish ingredient handler
func NewDishIngredientHandler(repo repository.DishIngredientRepository, log *slog.Logger) *DishIngredientHandler {
	return &DishIngredientHandler{
		repo: repo,
		log:  log,
	}
}

// ListIngredients handles GET /platillos/{platillo_id}/ingredientes.
// An unknown dish is not checked for and yields an empty array.
func (h *DishIngredientHandler) ListIngredients() http.HandlerFunc {
	return wrap(h.log, DishIngredientMessages.List, h.listIngredients)
}

// LinkIngredient handles POST /platillos/{platillo_id}/ingredientes
func (h *DishIngredientHandler) LinkIngredient() http.HandlerFunc {
	return wrap(h.log, DishIngredientMessages.Create, h.linkIngredient)
}

func (h *DishIngredientHandler) listIngredients(w http.ResponseWriter, r *http.Request) error {
	dishID, err := repository.ParseID(chi.URLParam(r, DishIDParam))
	if err != nil {
		return fmt.Errorf("dish id: %w", err)
	}

	ingredients, err := h.repo.ListIngredients(r.Context(), dishID)
	if err != nil {
		return err
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}

	WriteJSON(w, http.StatusOK, ingredients, h.log)
	return nil
}

func (h *DishIngredientHandler) linkIngredient(w http.ResponseWriter, r *http.Request) error {
	dishID, err := repository.ParseID(chi.URLParam(r, DishIDParam))
	if err != nil {
		return fmt.Errorf("dish id: %w", err)
	}

	body, err := decodeFields(r)
	if err != nil {
		return err
	}

	link, err := h.repo.Link(r.Context(), repository.Fields{
		"platillo_id":    dishID,
		"ingrediente_id": body["ingrediente_id"],
	})
	if err != nil {
		return err
	}

	WriteJSON(w, http.StatusCreated, link, h.log)
	return nil
}
