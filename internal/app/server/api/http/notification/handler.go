package notification

import (
	"context"
	"errors"

	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/domain/notification"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    notification.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service notification.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.markReadOp(), h.markRead)
	huma.Register(api, h.markAllReadOp(), h.markAllRead)
	huma.Register(api, h.dismissOp(), h.dismiss)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) markRead(ctx context.Context, input *idInput) (*statusOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.MarkRead(ctx, ownerID, input.ID); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return nil, huma.Error404NotFound("notification not found")
		}
		return nil, err
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) markAllRead(ctx context.Context, _ *struct{}) (*statusOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.MarkAllRead(ctx, ownerID); err != nil {
		return nil, err
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) dismiss(ctx context.Context, input *idInput) (*statusOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Dismiss(ctx, ownerID, input.ID); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return nil, huma.Error404NotFound("notification not found")
		}
		return nil, err
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}
