// Package router maps every (method, path) pair of the API to its handler.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/restaurant-api/internal/handlers"
	"github.com/Lixing-Zhang/restaurant-api/internal/middleware"
	"github.com/Lixing-Zhang/restaurant-api/internal/repository"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options tunes the middleware chain
type Options struct {
	// RequestTimeout cancels the request context after the given duration.
	// Zero disables it.
	RequestTimeout time.Duration
}

// New builds the HTTP router over store
func New(store *repository.Store, log *slog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// HEAD is answered by the GET route of the same path
	r.Use(chimiddleware.GetHead)

	notFound := handlers.NotFound(log)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.NewHealthHandler(store, log).ServeHTTP)

	mountResource(r, "/categorias", handlers.NewResourceHandler(store.Categories, handlers.CategoryMessages, log))
	mountResource(r, "/platillos", handlers.NewResourceHandler(store.Dishes, handlers.DishMessages, log))
	mountResource(r, "/ingredientes", handlers.NewResourceHandler(store.Ingredients, handlers.IngredientMessages, log))
	mountResource(r, "/clientes", handlers.NewResourceHandler(store.Customers, handlers.CustomerMessages, log))
	mountResource(r, "/ordenes", handlers.NewResourceHandler(store.Orders, handlers.OrderMessages, log))
	mountResource(r, "/pagos", handlers.NewResourceHandler(store.Payments, handlers.PaymentMessages, log))

	dishIngredients := handlers.NewDishIngredientHandler(store.DishIngredients, log)
	r.Get("/platillos/{"+handlers.DishIDParam+"}/ingredientes", dishIngredients.ListIngredients())
	r.Post("/platillos/{"+handlers.DishIDParam+"}/ingredientes", dishIngredients.LinkIngredient())

	return r
}

func mountResource[T any](r chi.Router, path string, h *handlers.ResourceHandler[T]) {
	r.Get(path, h.List())
	r.Post(path, h.Create())
}
