package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lixing-Zhang/restaurant-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// DishIngredientRepository manages the dish to ingredient link table
type DishIngredientRepository interface {
	ListIngredients(ctx context.Context, dishID int64) ([]models.Ingredient, error)
	Link(ctx context.Context, fields Fields) (models.DishIngredient, error)
}

const listDishIngredientsSQL = `SELECT i.id, i.nombre, i.descripcion
FROM ingredientes i
JOIN platillos_ingredientes pi ON i.id = pi.ingrediente_id
WHERE pi.platillo_id = $1`

// PostgresDishIngredients implements DishIngredientRepository on PostgreSQL
type PostgresDishIngredients struct {
	db    Querier
	links *PostgresTable[models.DishIngredient]
}

// NewPostgresDishIngredients creates the link repository
func NewPostgresDishIngredients(db Querier) *PostgresDishIngredients {
	return &PostgresDishIngredients{
		db:    db,
		links: NewPostgresTable(db, DishIngredientTable),
	}
}

// ListIngredients returns the ingredients linked to dishID. An unknown
// dish yields an empty slice.
func (r *PostgresDishIngredients) ListIngredients(ctx context.Context, dishID int64) ([]models.Ingredient, error) {
	rows, err := r.db.Query(ctx, listDishIngredientsSQL, dishID)
	if err != nil {
		return nil, fmt.Errorf("query ingredients of dish %d: %w", dishID, err)
	}

	ingredients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Ingredient])
	if err != nil {
		return nil, fmt.Errorf("scan ingredients of dish %d: %w", dishID, err)
	}
	return ingredients, nil
}

// Link inserts one link row. Existence of either side is left to the schema.
func (r *PostgresDishIngredients) Link(ctx context.Context, fields Fields) (models.DishIngredient, error) {
	return r.links.Create(ctx, fields)
}

// MemoryDishIngredients implements DishIngredientRepository over an
// in-memory ingredient table
type MemoryDishIngredients struct {
	ingredients *MemoryTable[models.Ingredient]
	mu          sync.RWMutex
	links       []models.DishIngredient
}

// NewMemoryDishIngredients creates the link repository joined against ingredients
func NewMemoryDishIngredients(ingredients *MemoryTable[models.Ingredient]) *MemoryDishIngredients {
	return &MemoryDishIngredients{
		ingredients: ingredients,
		links:       make([]models.DishIngredient, 0),
	}
}

// ListIngredients joins the links of dishID with the ingredient table.
// Like the SQL join, a link repeated twice yields the ingredient twice and
// a link to a missing ingredient yields nothing.
func (r *MemoryDishIngredients) ListIngredients(ctx context.Context, dishID int64) ([]models.Ingredient, error) {
	all, err := r.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Ingredient, len(all))
	for _, ingredient := range all {
		byID[ingredient.ID] = ingredient
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Ingredient, 0)
	for _, link := range r.links {
		if link.DishID != dishID || link.IngredientID == nil {
			continue
		}
		if ingredient, ok := byID[int64(*link.IngredientID)]; ok {
			result = append(result, ingredient)
		}
	}
	return result, nil
}

// Link stores the link row built from fields
func (r *MemoryDishIngredients) Link(ctx context.Context, fields Fields) (models.DishIngredient, error) {
	if err := ctx.Err(); err != nil {
		return models.DishIngredient{}, err
	}

	link, err := DishIngredientTable.decode(fields)
	if err != nil {
		return models.DishIngredient{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.links = append(r.links, link)
	return link, nil
}
