package project

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-list",
		Method:      http.MethodGet,
		Path:        "/api/projects",
		Summary:     "List the caller's projects, filtered and sorted",
		Tags:        []string{"projects"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-create",
		Method:      http.MethodPost,
		Path:        "/api/projects",
		Summary:     "Create a project",
		Tags:        []string{"projects"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-get",
		Method:      http.MethodGet,
		Path:        "/api/projects/{id}",
		Summary:     "Get a project",
		Tags:        []string{"projects"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-update",
		Method:      http.MethodPut,
		Path:        "/api/projects/{id}",
		Summary:     "Update a project",
		Tags:        []string{"projects"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-delete",
		Method:      http.MethodDelete,
		Path:        "/api/projects/{id}",
		Summary:     "Delete a project",
		Tags:        []string{"projects"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
