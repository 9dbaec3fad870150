package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTable_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTable(CategoryTable)

	first, err := repo.Create(ctx, Fields{"id": json.Number("99"), "nombre": "Bebidas", "descripcion": "Drinks"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, Fields{"nombre": "Postres"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Bebidas", *first.Name)
	assert.Equal(t, "Drinks", *first.Description)
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, second.Description)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{first, second}, all)
}

func TestMemoryTable_ListEmptyIsNotNil(t *testing.T) {
	repo := NewMemoryTable(PaymentTable)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMemoryTable_DuplicatesAreKept(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTable(CustomerTable)
	customer := Fields{"nombre": "Ana", "telefono": "555-0101"}

	_, err := repo.Create(ctx, customer)
	require.NoError(t, err)
	_, err = repo.Create(ctx, customer)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)
}

func TestMemoryTable_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryTable(IngredientTable)

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Create(ctx, Fields{"nombre": "Sal"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryTable_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTable(OrderTable)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, Fields{"estado": "pendiente"})
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)

	seen := make(map[int64]bool)
	for _, o := range all {
		assert.False(t, seen[o.ID], "duplicate id %d", o.ID)
		seen[o.ID] = true
	}
}

func TestMemoryDishIngredients(t *testing.T) {
	ctx := context.Background()
	ingredients := NewMemoryTable(IngredientTable)
	links := NewMemoryDishIngredients(ingredients)

	tomato, err := ingredients.Create(ctx, Fields{"nombre": "Tomate"})
	require.NoError(t, err)
	cheese, err := ingredients.Create(ctx, Fields{"nombre": "Queso"})
	require.NoError(t, err)

	_, err = links.Link(ctx, Fields{"platillo_id": int64(1), "ingrediente_id": tomato.ID})
	require.NoError(t, err)
	_, err = links.Link(ctx, Fields{"platillo_id": int64(1), "ingrediente_id": cheese.ID})
	require.NoError(t, err)
	_, err = links.Link(ctx, Fields{"platillo_id": int64(2), "ingrediente_id": cheese.ID})
	require.NoError(t, err)

	t.Run("linked ingredients", func(t *testing.T) {
		got, err := links.ListIngredients(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []models.Ingredient{tomato, cheese}, got)
	})

	t.Run("unknown dish is empty", func(t *testing.T) {
		got, err := links.ListIngredients(ctx, 404)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("link to missing ingredient is stored but not joined", func(t *testing.T) {
		link, err := links.Link(ctx, Fields{"platillo_id": int64(3), "ingrediente_id": json.Number("777")})
		require.NoError(t, err)
		assert.Equal(t, int64(3), link.DishID)

		got, err := links.ListIngredients(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("duplicate link repeats the ingredient", func(t *testing.T) {
		_, err := links.Link(ctx, Fields{"platillo_id": int64(2), "ingrediente_id": cheese.ID})
		require.NoError(t, err)

		got, err := links.ListIngredients(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []models.Ingredient{cheese, cheese}, got)
	})
}

func TestMemoryTable_ColumnValuesAsText(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryTable(OrderTable)
	payments := NewMemoryTable(PaymentTable)

	order, err := orders.Create(ctx, Fields{"cliente_id": "1", "platillo_id": json.Number("2"), "cantidad": "3"})
	require.NoError(t, err)
	assert.Equal(t, models.Int(1), *order.CustomerID)
	assert.Equal(t, models.Int(2), *order.DishID)
	assert.Equal(t, models.Int(3), *order.Quantity)
	assert.Nil(t, order.Status)

	payment, err := payments.Create(ctx, Fields{"monto": "25.00", "fecha_pago": "2024-06-15T10:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "25.00", payment.Amount.String())
	assert.Equal(t, "2024-06-15", payment.PaymentDate.Time.Format("2006-01-02"))

	_, err = orders.Create(ctx, Fields{"cantidad": "dos"})
	assert.Error(t, err)
}

func TestMemoryStore_Ping(t *testing.T) {
	assert.NoError(t, NewMemoryStore().Ping(context.Background()))
}
