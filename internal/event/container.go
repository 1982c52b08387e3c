package event

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(store *recordstore.Store) *Container {
	repo := NewRepository(store)
	service := NewService(repo)

	return &Container{
		Handler: NewHandler(service),
		Service: service,
	}
}
