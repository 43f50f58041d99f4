package employee

import "opsboard/internal/domain/employee"

type listInput struct {
	employee.Filter
	Sort string `query:"sort" doc:"Sort key: name, contractEnd or empty for newest first"`
}

type listOutput struct {
	Body []employee.Employee
}

type getInput struct {
	ID string `path:"id" doc:"Employee id"`
}

type getOutput struct {
	Body employee.Employee
}

type saveInput struct {
	Body employee.Employee
}

type updateInput struct {
	ID   string `path:"id" doc:"Employee id"`
	Body employee.Employee
}

type saveOutput struct {
	Body employee.Employee
}

type deleteOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
