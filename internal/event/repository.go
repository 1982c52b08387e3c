package event

import (
	"io"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

type Repository interface {
	Create(e *Event) error
	FindAll() ([]Event, error)
	FindByID(id string) (*Event, error)
	Update(id string, fields recordstore.Record) (bool, error)
	Delete(id string) (bool, error)
	Export(w io.Writer) error
}

type repository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(e *Event) error {
	id, err := r.store.Append(e.toRecord())
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r *repository) FindAll() ([]Event, error) {
	records, err := r.store.List()
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(records))
	for _, rec := range records {
		events = append(events, fromRecord(rec))
	}
	return events, nil
}

func (r *repository) FindByID(id string) (*Event, error) {
	rec, ok, err := r.store.Get(id)
	if err != nil || !ok {
		return nil, err
	}
	e := fromRecord(rec)
	return &e, nil
}

func (r *repository) Update(id string, fields recordstore.Record) (bool, error) {
	n, err := r.store.UpdateWhere(recordstore.ByID(id), recordstore.SetFields(fields))
	return n > 0, err
}

func (r *repository) Delete(id string) (bool, error) {
	return r.store.DeleteByID(id)
}

func (r *repository) Export(w io.Writer) error {
	_, err := r.store.WriteTo(w)
	return err
}
