package employee

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-list",
		Method:      http.MethodGet,
		Path:        "/api/employees",
		Summary:     "List the caller's employees, filtered and sorted",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-create",
		Method:      http.MethodPost,
		Path:        "/api/employees",
		Summary:     "Create an employee record",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-get",
		Method:      http.MethodGet,
		Path:        "/api/employees/{id}",
		Summary:     "Get an employee record",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-update",
		Method:      http.MethodPut,
		Path:        "/api/employees/{id}",
		Summary:     "Update an employee record",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "employees-delete",
		Method:      http.MethodDelete,
		Path:        "/api/employees/{id}",
		Summary:     "Delete an employee record",
		Tags:        []string{"employees"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
