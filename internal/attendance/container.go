package attendance

import (
	"github.com/saulo-duarte/clubhouse/internal/member"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(store *recordstore.Store, members member.Service) *Container {
	repo := NewRepository(store)
	service := NewService(repo, members)

	return &Container{
		Handler: NewHandler(service),
		Service: service,
	}
}
