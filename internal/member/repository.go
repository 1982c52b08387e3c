package member

import (
	"io"

	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

type Repository interface {
	Create(m *Member) error
	FindAll() ([]Member, error)
	FindByID(id string) (*Member, error)
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

func (r *repository) Create(m *Member) error {
	id, err := r.store.Append(m.toRecord())
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

func (r *repository) FindAll() ([]Member, error) {
	records, err := r.store.List()
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(records))
	for _, rec := range records {
		members = append(members, fromRecord(rec))
	}
	return members, nil
}

func (r *repository) FindByID(id string) (*Member, error) {
	rec, ok, err := r.store.Get(id)
	if err != nil || !ok {
		return nil, err
	}
	m := fromRecord(rec)
	return &m, nil
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
