package notification

import "opsboard/internal/domain/notification"

type listOutput struct {
	Body []notification.Notification
}

type idInput struct {
	ID string `path:"id" doc:"Notification id"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
