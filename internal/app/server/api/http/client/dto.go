package client

import "opsboard/internal/domain/client"

type listInput struct {
	client.Filter
	Sort string `query:"sort" doc:"Sort key: name, company or empty for newest first"`
}

type listOutput struct {
	Body []client.Client
}

type getInput struct {
	ID string `path:"id" doc:"Client id"`
}

type getOutput struct {
	Body client.Client
}

type saveInput struct {
	Body client.Client
}

type updateInput struct {
	ID   string `path:"id" doc:"Client id"`
	Body client.Client
}

type saveOutput struct {
	Body client.Client
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
