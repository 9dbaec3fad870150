package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/restaurant-api/internal/models"
	"github.com/Lixing-Zhang/restaurant-api/internal/repository"
	"github.com/go-chi/chi/v5"
)

var errStoreDown = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

type failingRepo[T any] struct{}

func (failingRepo[T]) List(ctx context.Context) ([]T, error) { return nil, errStoreDown }

func (failingRepo[T]) Create(ctx context.Context, fields repository.Fields) (T, error) {
	var zero T
	return zero, errStoreDown
}

type failingLinks struct{}

func (failingLinks) ListIngredients(ctx context.Context, dishID int64) ([]models.Ingredient, error) {
	return nil, errStoreDown
}

func (failingLinks) Link(ctx context.Context, fields repository.Fields) (models.DishIngredient, error) {
	return models.DishIngredient{}, errStoreDown
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// serve runs a single request through a chi router so URL params resolve
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
