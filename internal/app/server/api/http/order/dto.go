package order

import "opsboard/internal/domain/order"

type listInput struct {
	order.Filter
	Sort string `query:"sort" doc:"Sort key: supplier, amount, delivery or empty for newest first"`
}

type listOutput struct {
	Body []order.Order
}

type getInput struct {
	ID string `path:"id" doc:"Order id"`
}

type getOutput struct {
	Body order.Order
}

type saveInput struct {
	Body order.Order
}

type updateInput struct {
	ID   string `path:"id" doc:"Order id"`
	Body order.Order
}

type saveOutput struct {
	Body order.Order
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
