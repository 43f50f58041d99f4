package project

import (
	"context"
	"errors"

	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/domain/form"
	"opsboard/internal/domain/project"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    project.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service project.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	projects, err := h.service.List(ctx, ownerID, input.Filter, input.Sort)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: projects}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Get(ctx, ownerID, input.ID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, huma.Error404NotFound("project not found")
		}
		return nil, err
	}

	return &getOutput{Body: *p}, nil
}

func (h *Handler) create(ctx context.Context, input *saveInput) (*saveOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	draft := input.Body
	draft.ID = ""

	return h.save(ctx, ownerID, draft)
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*saveOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	draft := input.Body
	draft.ID = input.ID

	return h.save(ctx, ownerID, draft)
}

func (h *Handler) save(ctx context.Context, ownerID string, draft project.Project) (*saveOutput, error) {
	saved, err := h.service.Save(ctx, ownerID, draft)
	if err != nil {
		var draftErr *form.DraftError
		if errors.As(err, &draftErr) {
			return nil, huma.Error422UnprocessableEntity(draftErr.Error())
		}
		if errors.Is(err, project.ErrNotFound) {
			return nil, huma.Error404NotFound("project not found")
		}
		return nil, err
	}

	return &saveOutput{Body: *saved}, nil
}

func (h *Handler) delete(ctx context.Context, input *getInput) (*deleteOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, ownerID, input.ID); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, huma.Error404NotFound("project not found")
		}
		return nil, err
	}

	return &deleteOutput{Body: statusResponse{Status: "Ok"}}, nil
}
