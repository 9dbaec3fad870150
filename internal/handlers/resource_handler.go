package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/restaurant-api/internal/repository"
)

// ResourceHandler serves list and create for one resource type
type ResourceHandler[T any] struct {
	repo     repository.Repository[T]
	messages Messages
	log      *slog.Logger
}

// NewResourceHandler creates a handler for the resource stored in repo
func NewResourceHandler[T any](repo repository.Repository[T], messages Messages, log *slog.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		repo:     repo,
		messages: messages,
		log:      log,
	}
}

// List handles GET on the collection and always answers with an array
func (h *ResourceHandler[T]) List() http.HandlerFunc {
	return wrap(h.log, h.messages.List, h.list)
}

// Create handles POST on the collection and answers 201 with the stored row
func (h *ResourceHandler[T]) Create() http.HandlerFunc {
	return wrap(h.log, h.messages.Create, h.create)
}

func (h *ResourceHandler[T]) list(w http.ResponseWriter, r *http.Request) error {
	records, err := h.repo.List(r.Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}

	WriteJSON(w, http.StatusOK, records, h.log)
	return nil
}

func (h *ResourceHandler[T]) create(w http.ResponseWriter, r *http.Request) error {
	fields, err := decodeFields(r)
	if err != nil {
		return err
	}

	created, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		return err
	}

	WriteJSON(w, http.StatusCreated, created, h.log)
	return nil
}

// decodeFields reads the request body as a JSON object. Values are kept as
// sent and typed by the store.
func decodeFields(r *http.Request) (repository.Fields, error) {
	var fields repository.Fields

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}
	return fields, nil
}
