package user

import "time"

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewUserContainer(repo Repository, tokenTTL time.Duration) *UserContainer {
	service := NewService(repo)
	handler := NewHandler(service, tokenTTL)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
