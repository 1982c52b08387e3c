package finance

import (
	"io"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

type Repository interface {
	Create(e *Entry) error
	FindAll() ([]Entry, error)
	Delete(id string) (bool, error)
	Export(w io.Writer) error
}

type repository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(e *Entry) error {
	id, err := r.store.Append(e.toRecord())
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *repository) FindAll() ([]Entry, error) {
	records, err := r.store.List()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, fromRecord(rec))
	}
	return entries, nil
}

func (r *repository) Delete(id string) (bool, error) {
	return r.store.DeleteByID(id)
}

func (r *repository) Export(w io.Writer) error {
	_, err := r.store.WriteTo(w)
	return err
}
