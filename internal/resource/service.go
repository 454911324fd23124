// Package resource implements the generic record-management service shared by
// every resource kind: list, fetch-by-id, create with validation, partial
// update with a retain-on-empty merge, and delete, against an injected
// storage collaborator.
package resource

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is the storage collaborator for one record kind. Insert assigns the
// record's identity. GetByID reports absence through its bool, never through
// an error.
type Store[R any] interface {
	List(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id int64) (R, bool, error)
	Insert(ctx context.Context, rec *R) error
	Update(ctx context.Context, rec R) error
	Delete(ctx context.Context, id int64) error
}

// Provider is the operation surface a Service exposes to transport code.
type Provider[C, U, V any] interface {
	List(ctx context.Context) ([]V, error)
	GetByID(ctx context.Context, id int64) (V, bool, error)
	Create(ctx context.Context, req *C) (V, error)
	Update(ctx context.Context, id int64, req *U) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UniqueRule ties a storage constraint identifier to the wire-level field it
// protects and the message reported when the constraint rejects a write.
type UniqueRule struct {
	Token   string // substring the storage error carries, e.g. "users.email"
	Field   string // wire name, e.g. "email"
	Message string // e.g. "Email already in use"
}

// Definition configures a Service for one record kind.
type Definition[R, C, U, V any] struct {
	// Name is the singular kind name used in wrapped errors, e.g. "post".
	Name string
	// Required lists the create-request fields that must be present and
	// non-blank, in the order they are reported to clients.
	Required []Rule[C]
	// New builds a fresh record from a validated create request. Identity is
	// left for the store to assign; both timestamps are set to now.
	New func(req *C, now time.Time) (R, error)
	// Merge applies the partial-update policy to an existing record and
	// refreshes its updatedAt.
	Merge func(rec *R, req *U, now time.Time)
	// View maps a record to its outbound projection.
	View func(rec R) V
	// Unique declares the constraints a failed insert is matched against.
	Unique []UniqueRule
}

// Service implements the five record operations for one kind. It holds no
// cross-call state; every operation stands alone.
type Service[R, C, U, V any] struct {
	store Store[R]
	def   Definition[R, C, U, V]
	now   func() time.Time
}

// NewService creates a Service around a store and a resource definition.
func NewService[R, C, U, V any](store Store[R], def Definition[R, C, U, V]) *Service[R, C, U, V] {
	return &Service[R, C, U, V]{store: store, def: def, now: Now}
}

// List returns views of every stored record, in storage order. Empty storage
// yields an empty slice, never an error.
func (s *Service[R, C, U, V]) List(ctx context.Context) ([]V, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.def.Name, err)
	}
	views := make([]V, 0, len(recs))
	for _, rec := range recs {
		views = append(views, s.def.View(rec))
	}
	return views, nil
}

// GetByID returns the view of one record. Absence is reported through the
// bool, not as an error.
func (s *Service[R, C, U, V]) GetByID(ctx context.Context, id int64) (V, bool, error) {
	var zero V
	rec, ok, err := s.store.GetByID(ctx, id)
	if err != nil {
		return zero, false, fmt.Errorf("get %s %d: %w", s.def.Name, id, err)
	}
	if !ok {
		return zero, false, nil
	}
	return s.def.View(rec), true, nil
}

// Create validates the request, builds a record with both timestamps set to
// the same instant and identity left for the store, and persists it.
// Uniqueness is never pre-checked; a rejected insert is matched against the
// declared constraints and surfaces as a ConflictError, anything else
// propagates wrapped.
func (s *Service[R, C, U, V]) Create(ctx context.Context, req *C) (V, error) {
	var zero V
	if req == nil {
		return zero, ErrMissingPayload
	}
	if err := Validate(req, s.def.Required); err != nil {
		return zero, err
	}
	rec, err := s.def.New(req, s.now())
	if err != nil {
		return zero, fmt.Errorf("build %s: %w", s.def.Name, err)
	}
	if err := s.store.Insert(ctx, &rec); err != nil {
		if conflict := s.translateConflict(err); conflict != nil {
			return zero, conflict
		}
		return zero, fmt.Errorf("insert %s: %w", s.def.Name, err)
	}
	return s.def.View(rec), nil
}

// Update fetches the record, applies the merge policy and persists the
// result. A missing record returns (false, nil) before any write. Update has
// no validation failure mode.
//
// The fetch and the write are two storage round trips with no coordination
// against concurrent writers of the same record.
func (s *Service[R, C, U, V]) Update(ctx context.Context, id int64, req *U) (bool, error) {
	if req == nil {
		return false, ErrMissingPayload
	}
	rec, ok, err := s.store.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get %s %d: %w", s.def.Name, id, err)
	}
	if !ok {
		return false, nil
	}
	s.def.Merge(&rec, req, s.now())
	if err := s.store.Update(ctx, rec); err != nil {
		return false, fmt.Errorf("update %s %d: %w", s.def.Name, id, err)
	}
	return true, nil
}

// Delete removes the record. A missing record returns (false, nil) with no
// write. Deletion is physical.
func (s *Service[R, C, U, V]) Delete(ctx context.Context, id int64) (bool, error) {
	_, ok, err := s.store.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get %s %d: %w", s.def.Name, id, err)
	}
	if !ok {
		return false, nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete %s %d: %w", s.def.Name, id, err)
	}
	return true, nil
}

func (s *Service[R, C, U, V]) translateConflict(err error) *ConflictError {
	msg := err.Error()
	for _, rule := range s.def.Unique {
		if strings.Contains(msg, rule.Token) {
			return &ConflictError{Field: rule.Field, Message: rule.Message}
		}
	}
	return nil
}
