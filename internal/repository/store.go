package repository

import (
	"context"

	"github.com/Lixing-Zhang/restaurant-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles the repositories of every resource exposed by the API
type Store struct {
	Categories      Repository[models.Category]
	Dishes          Repository[models.Dish]
	Ingredients     Repository[models.Ingredient]
	DishIngredients DishIngredientRepository
	Customers       Repository[models.Customer]
	Orders          Repository[models.Order]
	Payments        Repository[models.Payment]

	ping func(ctx context.Context) error
}

// NewPostgresStore wires every repository to the shared connection pool
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Categories:      NewPostgresTable(pool, CategoryTable),
		Dishes:          NewPostgresTable(pool, DishTable),
		Ingredients:     NewPostgresTable(pool, IngredientTable),
		DishIngredients: NewPostgresDishIngredients(pool),
		Customers:       NewPostgresTable(pool, CustomerTable),
		Orders:          NewPostgresTable(pool, OrderTable),
		Payments:        NewPostgresTable(pool, PaymentTable),
		ping:            pool.Ping,
	}
}

// NewMemoryStore creates a store with empty in-memory tables
func NewMemoryStore() *Store {
	ingredients := NewMemoryTable(IngredientTable)

	return &Store{
		Categories:      NewMemoryTable(CategoryTable),
		Dishes:          NewMemoryTable(DishTable),
		Ingredients:     ingredients,
		DishIngredients: NewMemoryDishIngredients(ingredients),
		Customers:       NewMemoryTable(CustomerTable),
		Orders:          NewMemoryTable(OrderTable),
		Payments:        NewMemoryTable(PaymentTable),
	}
}

// Ping reports whether the backing database is reachable.
// The in-memory store is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
