package habit

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(repo Repository, toggler Toggler) *Container {
	service := NewService(repo)
	handler := NewHandler(service, toggler)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
