package project

import (
	"context"
	"testing"

	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/domain/form"
	"opsboard/internal/domain/project"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, ownerID string, filter project.Filter, sortKey string) ([]project.Project, error) {
	args := m.Called(ctx, ownerID, filter, sortKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, ownerID, id string) (*project.Project, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *mockService) Save(ctx context.Context, ownerID string, draft project.Project) (*project.Project, error) {
	args := m.Called(ctx, ownerID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func newTestHandler(service project.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{})
}

func TestList_Unauthorized(t *testing.T) {
	handler := newTestHandler(new(mockService))

	_, err := handler.list(context.Background(), &listInput{})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestList_PassesFilterAndSort(t *testing.T) {
	service := new(mockService)
	handler := newTestHandler(service)
	ctx := auth.WithUserID(context.Background(), "owner-1")

	filter := project.Filter{Status: "En cours"}
	service.On("List", mock.Anything, "owner-1", filter, "name").
		Return([]project.Project{{ID: "p1"}}, nil)

	output, err := handler.list(ctx, &listInput{Filter: filter, Sort: "name"})

	assert.NoError(t, err)
	assert.Len(t, output.Body, 1)
	service.AssertExpectations(t)
}

func TestGet_NotFound(t *testing.T) {
	service := new(mockService)
	handler := newTestHandler(service)
	ctx := auth.WithUserID(context.Background(), "owner-1")

	service.On("Get", mock.Anything, "owner-1", "missing").
		Return(nil, project.ErrNotFound)

	_, err := handler.get(ctx, &getInput{ID: "missing"})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestCreate_RejectedDraft(t *testing.T) {
	service := new(mockService)
	handler := newTestHandler(service)
	ctx := auth.WithUserID(context.Background(), "owner-1")

	service.On("Save", mock.Anything, "owner-1", mock.Anything).
		Return(nil, &form.DraftError{Fields: []string{"nature"}})

	_, err := handler.create(ctx, &saveInput{Body: project.Project{}})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 422, statusErr.GetStatus())
}

func TestUpdate_PathIDWins(t *testing.T) {
	service := new(mockService)
	handler := newTestHandler(service)
	ctx := auth.WithUserID(context.Background(), "owner-1")

	saved := &project.Project{ID: "p1", Nature: "Renovation"}
	service.On("Save", mock.Anything, "owner-1", mock.MatchedBy(func(p project.Project) bool {
		return p.ID == "p1"
	})).Return(saved, nil)

	output, err := handler.update(ctx, &updateInput{
		ID:   "p1",
		Body: project.Project{ID: "other", Nature: "Renovation"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "p1", output.Body.ID)
	service.AssertExpectations(t)
}
