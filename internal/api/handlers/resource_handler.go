// Package handlers exposes the resource services over HTTP. One generic
// handler serves every resource kind; routing decides which service it
// fronts.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/avicente/blogstack-be/internal/resource"
)

// ResourceHandler handles HTTP requests for one record kind.
type ResourceHandler[C, U, V any] struct {
	name     string // singular kind name used in messages and logs
	service  resource.Provider[C, U, V]
	location func(V) string // builds the Location header for a created view
}

// NewResourceHandler creates a ResourceHandler for one record kind.
func NewResourceHandler[C, U, V any](name string, service resource.Provider[C, U, V], location func(V) string) *ResourceHandler[C, U, V] {
	return &ResourceHandler[C, U, V]{name: name, service: service, location: location}
}

// GetAll handles the request to list all records.
func (h *ResourceHandler[C, U, V]) GetAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msgf("Failed to retrieve %ss", h.name)
		http.Error(w, fmt.Sprintf("An error occurred while retrieving %ss.", h.name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// Get handles the request to fetch a single record by its ID.
func (h *ResourceHandler[C, U, V]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	view, found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64(h.name+"_id", id).Msgf("Failed to get %s by ID", h.name)
		http.Error(w, fmt.Sprintf("An error occurred while retrieving the %s.", h.name), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, fmt.Sprintf("%s not found", title(h.name)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Create handles the request to create a new record.
func (h *ResourceHandler[C, U, V]) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	view, err := h.service.Create(r.Context(), req)
	if err != nil {
		var validation *resource.ValidationError
		var conflict *resource.ConflictError
		switch {
		case errors.Is(err, resource.ErrMissingPayload):
			http.Error(w, fmt.Sprintf("%s data cannot be null.", title(h.name)), http.StatusBadRequest)
		case errors.As(err, &validation):
			http.Error(w, validation.Error(), http.StatusBadRequest)
		case errors.As(err, &conflict):
			http.Error(w, conflict.Error(), http.StatusConflict)
		default:
			log.Error().Err(err).Msgf("Failed to create %s", h.name)
			http.Error(w, fmt.Sprintf("An error occurred while creating the %s.", h.name), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", h.location(view))
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

// Update handles the request to partially update an existing record.
func (h *ResourceHandler[C, U, V]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req U
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("%s data cannot be null.", title(h.name)), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		log.Error().Err(err).Int64(h.name+"_id", id).Msgf("Failed to update %s", h.name)
		http.Error(w, fmt.Sprintf("An error occurred while updating the %s.", h.name), http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, fmt.Sprintf("%s not found", title(h.name)), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles the request to remove a record.
func (h *ResourceHandler[C, U, V]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Int64(h.name+"_id", id).Msgf("Failed to delete %s", h.name)
		http.Error(w, fmt.Sprintf("An error occurred while deleting the %s.", h.name), http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, fmt.Sprintf("%s not found", title(h.name)), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads the create payload; an unreadable or empty body is reported
// as a missing payload before the service is involved.
func (h *ResourceHandler[C, U, V]) decode(w http.ResponseWriter, r *http.Request) (*C, bool) {
	var req C
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("%s data cannot be null.", title(h.name)), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *ResourceHandler[C, U, V]) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func title(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
