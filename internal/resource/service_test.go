package resource_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avicente/blogstack-be/internal/resource"
)

// note is a minimal record kind exercising every hook of the generic service.
type note struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type createNote struct {
	Title string
	Body  string
}

type updateNote struct {
	Title *string
	Body  *string
}

type noteView struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt string
	UpdatedAt string
}

type mockNoteStore struct {
	mock.Mock
}

func (m *mockNoteStore) List(ctx context.Context) ([]note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]note), args.Error(1)
}

func (m *mockNoteStore) GetByID(ctx context.Context, id int64) (note, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(note), args.Bool(1), args.Error(2)
}

func (m *mockNoteStore) Insert(ctx context.Context, rec *note) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockNoteStore) Update(ctx context.Context, rec note) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockNoteStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newNoteService(store resource.Store[note]) *resource.Service[note, createNote, updateNote, noteView] {
	def := resource.Definition[note, createNote, updateNote, noteView]{
		Name: "note",
		Required: []resource.Rule[createNote]{
			{Field: "title", Check: resource.NonBlank(func(c *createNote) string { return c.Title })},
			{Field: "body", Check: resource.NonBlank(func(c *createNote) string { return c.Body })},
		},
		New: func(c *createNote, now time.Time) (note, error) {
			return note{Title: c.Title, Body: c.Body, CreatedAt: now, UpdatedAt: now}, nil
		},
		Merge: func(n *note, u *updateNote, now time.Time) {
			resource.MergeString(&n.Title, u.Title)
			resource.MergeString(&n.Body, u.Body)
			n.UpdatedAt = now
		},
		View: func(n note) noteView {
			return noteView{
				ID:        n.ID,
				Title:     n.Title,
				Body:      n.Body,
				CreatedAt: resource.Stamp(n.CreatedAt),
				UpdatedAt: resource.Stamp(n.UpdatedAt),
			}
		},
		Unique: []resource.UniqueRule{
			{Token: "notes.title", Field: "title", Message: "Title already in use"},
		},
	}
	return resource.NewService(store, def)
}

func strPtr(s string) *string { return &s }

func TestService_List_ReturnsViewsInStorageOrder(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	stamp := time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC)
	store.On("List", mock.Anything).Return([]note{
		{ID: 2, Title: "second", Body: "b", CreatedAt: stamp, UpdatedAt: stamp},
		{ID: 1, Title: "first", Body: "a", CreatedAt: stamp, UpdatedAt: stamp},
	}, nil).Once()

	views, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, int64(2), views[0].ID)
	require.Equal(t, int64(1), views[1].ID)
	require.Equal(t, "2024-07-28T10:00:00.0000000Z", views[0].CreatedAt)
	store.AssertExpectations(t)
}

func TestService_List_EmptyStorage(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("List", mock.Anything).Return([]note{}, nil).Once()

	views, err := svc.List(context.Background())

	require.NoError(t, err)
	require.NotNil(t, views)
	require.Empty(t, views)
}

func TestService_List_StorageError(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	storeErr := errors.New("disk on fire")
	store.On("List", mock.Anything).Return(nil, storeErr).Once()

	_, err := svc.List(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, storeErr)
}

func TestService_GetByID_Found(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	stamp := time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC)
	store.On("GetByID", mock.Anything, int64(5)).
		Return(note{ID: 5, Title: "t", Body: "b", CreatedAt: stamp, UpdatedAt: stamp}, true, nil).
		Once()

	view, found, err := svc.GetByID(context.Background(), 5)

	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(5), view.ID)
	require.Equal(t, "t", view.Title)
}

func TestService_GetByID_NotFound(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("GetByID", mock.Anything, int64(404)).Return(note{}, false, nil).Once()

	_, found, err := svc.GetByID(context.Background(), 404)

	require.NoError(t, err)
	require.False(t, found)
}

func TestService_Create_MissingPayload(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	_, err := svc.Create(context.Background(), nil)

	require.ErrorIs(t, err, resource.ErrMissingPayload)
	store.AssertNotCalled(t, "Insert")
}

func TestService_Create_ValidationFailureNamesFirstField(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	_, err := svc.Create(context.Background(), &createNote{})

	var validation *resource.ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "title", validation.Field)
	store.AssertNotCalled(t, "Insert")
}

func TestService_Create_Success(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("Insert", mock.Anything, mock.AnythingOfType("*resource_test.note")).
		Run(func(args mock.Arguments) {
			rec := args.Get(1).(*note)
			rec.ID = 7
		}).
		Return(nil).
		Once()

	view, err := svc.Create(context.Background(), &createNote{Title: "T", Body: "B"})

	require.NoError(t, err)
	require.Equal(t, int64(7), view.ID)
	require.Equal(t, "T", view.Title)
	require.Equal(t, "B", view.Body)
	require.Equal(t, view.CreatedAt, view.UpdatedAt)

	created, err := resource.ParseStamp(view.CreatedAt)
	require.NoError(t, err)
	require.Equal(t, resource.Stamp(created), view.CreatedAt, "creation stamp must round trip")
	store.AssertExpectations(t)
}

func TestService_Create_TranslatesDeclaredConflict(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("Insert", mock.Anything, mock.AnythingOfType("*resource_test.note")).
		Return(errors.New("constraint failed: UNIQUE constraint failed: notes.title (2067)")).
		Once()

	_, err := svc.Create(context.Background(), &createNote{Title: "dup", Body: "b"})

	var conflict *resource.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "title", conflict.Field)
	require.Equal(t, "Title already in use", conflict.Message)
}

func TestService_Create_UnknownStorageFailurePropagates(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	storeErr := errors.New("database is locked")
	store.On("Insert", mock.Anything, mock.AnythingOfType("*resource_test.note")).
		Return(storeErr).
		Once()

	_, err := svc.Create(context.Background(), &createNote{Title: "t", Body: "b"})

	require.ErrorIs(t, err, storeErr)
	var conflict *resource.ConflictError
	require.False(t, errors.As(err, &conflict))
}

func TestService_Update_MissingPayload(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	_, err := svc.Update(context.Background(), 1, nil)

	require.ErrorIs(t, err, resource.ErrMissingPayload)
	store.AssertNotCalled(t, "GetByID")
	store.AssertNotCalled(t, "Update")
}

func TestService_Update_NotFoundPerformsNoWrite(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("GetByID", mock.Anything, int64(404)).Return(note{}, false, nil).Once()

	updated, err := svc.Update(context.Background(), 404, &updateNote{Title: strPtr("x")})

	require.NoError(t, err)
	require.False(t, updated)
	store.AssertNotCalled(t, "Update")
}

func TestService_Update_MergesAndRefreshesUpdatedAt(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	created := time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC)
	existing := note{ID: 1, Title: "old title", Body: "old body", CreatedAt: created, UpdatedAt: created}

	var written note
	store.On("GetByID", mock.Anything, int64(1)).Return(existing, true, nil).Once()
	store.On("Update", mock.Anything, mock.AnythingOfType("resource_test.note")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(note)
		}).
		Return(nil).
		Once()

	updated, err := svc.Update(context.Background(), 1, &updateNote{Title: strPtr("new title"), Body: strPtr("")})

	require.NoError(t, err)
	require.True(t, updated)
	require.Equal(t, "new title", written.Title)
	require.Equal(t, "old body", written.Body, "empty incoming value must retain the stored one")
	require.True(t, written.CreatedAt.Equal(created))
	require.True(t, written.UpdatedAt.After(created))
	store.AssertExpectations(t)
}

func TestService_Update_AbsentFieldsRetainStoredValues(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	created := time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC)
	existing := note{ID: 1, Title: "old title", Body: "old body", CreatedAt: created, UpdatedAt: created}

	var written note
	store.On("GetByID", mock.Anything, int64(1)).Return(existing, true, nil).Once()
	store.On("Update", mock.Anything, mock.AnythingOfType("resource_test.note")).
		Run(func(args mock.Arguments) {
			written = args.Get(1).(note)
		}).
		Return(nil).
		Once()

	updated, err := svc.Update(context.Background(), 1, &updateNote{})

	require.NoError(t, err)
	require.True(t, updated)
	require.Equal(t, "old title", written.Title)
	require.Equal(t, "old body", written.Body)
}

func TestService_Delete_RemovesExistingRecord(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("GetByID", mock.Anything, int64(1)).Return(note{ID: 1}, true, nil).Once()
	store.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	deleted, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	require.True(t, deleted)
	store.AssertExpectations(t)
}

func TestService_Delete_NotFoundPerformsNoWrite(t *testing.T) {
	store := new(mockNoteStore)
	svc := newNoteService(store)

	store.On("GetByID", mock.Anything, int64(404)).Return(note{}, false, nil).Once()

	deleted, err := svc.Delete(context.Background(), 404)

	require.NoError(t, err)
	require.False(t, deleted)
	store.AssertNotCalled(t, "Delete")
}
