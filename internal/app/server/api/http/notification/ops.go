package notification

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-list",
		Method:      http.MethodGet,
		Path:        "/api/notifications",
		Summary:     "List the caller's current alerts",
		Tags:        []string{"notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) markReadOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-read",
		Method:      http.MethodPost,
		Path:        "/api/notifications/{id}/read",
		Summary:     "Mark an alert as read",
		Tags:        []string{"notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) markAllReadOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-read-all",
		Method:      http.MethodPost,
		Path:        "/api/notifications/read-all",
		Summary:     "Mark every alert as read",
		Tags:        []string{"notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) dismissOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-dismiss",
		Method:      http.MethodDelete,
		Path:        "/api/notifications/{id}",
		Summary:     "Dismiss an alert",
		Tags:        []string{"notifications"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
