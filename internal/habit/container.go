package habit

import util "github.com/saulo-duarte/menteviva-api/internal/utils"

type HabitContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewHabitContainer(repo Repository, now util.Clock) *HabitContainer {
	service := NewService(repo, now)
	handler := NewHandler(service)

	return &HabitContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
