package settings

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-get",
		Method:      http.MethodGet,
		Path:        "/api/settings",
		Summary:     "Get application settings",
		Tags:        []string{"settings"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-update",
		Method:      http.MethodPut,
		Path:        "/api/settings",
		Summary:     "Update application settings",
		Tags:        []string{"settings"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
