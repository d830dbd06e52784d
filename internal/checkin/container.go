package checkin

import "github.com/saulo-duarte/menteviva-api/internal/habit"

type CheckinContainer struct {
	Handler *Handler
	Service Service
}

func NewCheckinContainer(repo Repository, habits habit.Service) *CheckinContainer {
	service := NewService(repo)
	handler := NewHandler(service, habits)

	return &CheckinContainer{
		Handler: handler,
		Service: service,
	}
}
