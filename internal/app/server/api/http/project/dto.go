package project

import "opsboard/internal/domain/project"

type listInput struct {
	project.Filter
	Sort string `query:"sort" doc:"Sort key: name, client, progress or empty for newest first"`
}

type listOutput struct {
	Body []project.Project
}

type getInput struct {
	ID string `path:"id" doc:"Project id"`
}

type getOutput struct {
	Body project.Project
}

type saveInput struct {
	Body project.Project
}

type updateInput struct {
	ID   string `path:"id" doc:"Project id"`
	Body project.Project
}

type saveOutput struct {
	Body project.Project
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
