package settings

import (
	"context"

	"opsboard/internal/app/server/api/http/middleware/auth"
	"opsboard/internal/app/server/config"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	cfg        *config.Config
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(cfg *config.Config, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		cfg:        cfg,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*getOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	app := h.cfg.App()
	return &getOutput{
		Body: AppSettings{Name: app.Name, Theme: app.Theme},
	}, nil
}

// Empty fields keep their current value, so partial updates are fine.
func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	h.cfg.UpdateApp(config.App{Name: input.Body.Name, Theme: input.Body.Theme})

	app := h.cfg.App()
	h.log.Info("app settings updated", "name", app.Name, "theme", app.Theme)

	return &updateOutput{
		Body: AppSettings{Name: app.Name, Theme: app.Theme},
	}, nil
}
