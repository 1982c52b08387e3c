package attendance

import (
	"io"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

type Repository interface {
	Create(a *Record) error
	FindAll() ([]Record, error)
	Delete(id string) (bool, error)
	Export(w io.Writer) error
}

type repository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(a *Record) error {
	id, err := r.store.Append(a.toRecord())
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *repository) FindAll() ([]Record, error) {
	records, err := r.store.List()
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *repository) Delete(id string) (bool, error) {
	return r.store.DeleteByID(id)
}

func (r *repository) Export(w io.Writer) error {
	_, err := r.store.WriteTo(w)
	return err
}
