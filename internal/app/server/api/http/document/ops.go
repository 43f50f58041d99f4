package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/documents",
		Summary:     "List the caller's documents, filtered and sorted",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-create",
		Method:      http.MethodPost,
		Path:        "/api/documents",
		Summary:     "Create a document entry",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-get",
		Method:      http.MethodGet,
		Path:        "/api/documents/{id}",
		Summary:     "Get a document entry",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-update",
		Method:      http.MethodPut,
		Path:        "/api/documents/{id}",
		Summary:     "Update a document entry",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/documents/{id}",
		Summary:     "Delete a document entry",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listFoldersOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-list",
		Method:      http.MethodGet,
		Path:        "/api/folders",
		Summary:     "List the caller's folders",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createFolderOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-create",
		Method:      http.MethodPost,
		Path:        "/api/folders",
		Summary:     "Create a folder",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteFolderOp() huma.Operation {
	return huma.Operation{
		OperationID: "folders-delete",
		Method:      http.MethodDelete,
		Path:        "/api/folders/{id}",
		Summary:     "Delete a folder",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
