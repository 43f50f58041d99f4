package document

import "opsboard/internal/domain/document"

type listInput struct {
	document.Filter
	Sort string `query:"sort" doc:"Sort key: name, size, type or empty for newest first"`
}

type listOutput struct {
	Body []document.Document
}

type getInput struct {
	ID string `path:"id" doc:"Document id"`
}

type getOutput struct {
	Body document.Document
}

type saveInput struct {
	Body document.Document
}

type updateInput struct {
	ID   string `path:"id" doc:"Document id"`
	Body document.Document
}

type saveOutput struct {
	Body document.Document
}

type deleteOutput struct {
	Body statusResponse
}

type listFoldersOutput struct {
	Body []document.Folder
}

type createFolderInput struct {
	Body document.Folder
}

type createFolderOutput struct {
	Body document.Folder
}

type folderInput struct {
	ID string `path:"id" doc:"Folder id"`
}

type statusResponse struct {
	Status string `json:"status"`
}
