package notification

import (
	"context"
	"testing"

	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/domain/notification"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, ownerID string) ([]notification.Notification, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *mockService) MarkRead(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockService) MarkAllRead(ctx context.Context, ownerID string) error {
	return m.Called(ctx, ownerID).Error(0)
}

func (m *mockService) Dismiss(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *mockService) Invalidate(ownerID string) {
	m.Called(ownerID)
}

func (m *mockService) InvalidateAll() {
	m.Called()
}

func TestList_Unauthorized(t *testing.T) {
	handler := NewHandler(new(mockService), slog.Default(), huma.Middlewares{})

	_, err := handler.list(context.Background(), nil)

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestMarkRead_UnknownID(t *testing.T) {
	service := new(mockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	ctx := auth.WithUserID(context.Background(), "owner-1")

	service.On("MarkRead", mock.Anything, "owner-1", "ghost").
		Return(notification.ErrNotFound)

	_, err := handler.markRead(ctx, &idInput{ID: "ghost"})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestDismiss_Ok(t *testing.T) {
	service := new(mockService)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})
	ctx := auth.WithUserID(context.Background(), "owner-1")

	service.On("Dismiss", mock.Anything, "owner-1", "n1").Return(nil)

	output, err := handler.dismiss(ctx, &idInput{ID: "n1"})

	assert.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	service.AssertExpectations(t)
}
