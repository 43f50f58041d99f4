package client

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "clients-list",
		Method:      http.MethodGet,
		Path:        "/api/clients",
		Summary:     "List the caller's clients, filtered and sorted",
		Tags:        []string{"clients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "clients-create",
		Method:      http.MethodPost,
		Path:        "/api/clients",
		Summary:     "Create a client",
		Tags:        []string{"clients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "clients-get",
		Method:      http.MethodGet,
		Path:        "/api/clients/{id}",
		Summary:     "Get a client",
		Tags:        []string{"clients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "clients-update",
		Method:      http.MethodPut,
		Path:        "/api/clients/{id}",
		Summary:     "Update a client",
		Tags:        []string{"clients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "clients-delete",
		Method:      http.MethodDelete,
		Path:        "/api/clients/{id}",
		Summary:     "Delete a client",
		Tags:        []string{"clients"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
