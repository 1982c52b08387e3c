package goal

import "github.com/saulo-duarte/clubhouse/internal/recordstore"

type Repository interface {
	Create(goal *Goal) error
	FindAll() ([]Goal, error)
	FindByID(id string) (*Goal, error)
	ToggleCompleted(id string) (bool, error)
	Delete(id string) (bool, error)
	DeleteCompleted() (int, error)
}

type repository struct {
	store *recordstore.Store
}

func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(goal *Goal) error {
	id, err := r.store.Append(goal.toRecord())
	if err != nil {
		return err
	}
	goal.ID = id
	return nil
}

func (r *repository) FindAll() ([]Goal, error) {
	records, err := r.store.List()
	if err != nil {
		return nil, err
	}
	goals := make([]Goal, 0, len(records))
	for _, rec := range records {
		goals = append(goals, fromRecord(rec))
	}
	return goals, nil
}

func (r *repository) FindByID(id string) (*Goal, error) {
	rec, ok, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	goal := fromRecord(rec)
	return &goal, nil
}

func (r *repository) ToggleCompleted(id string) (bool, error) {
	n, err := r.store.UpdateWhere(recordstore.ByID(id), func(rec recordstore.Record) {
		rec[colCompleted] = string(CompletedFlag(rec[colCompleted]).Toggle())
	})
	return n > 0, err
}

func (r *repository) Delete(id string) (bool, error) {
	return r.store.DeleteByID(id)
}

func (r *repository) DeleteCompleted() (int, error) {
	return r.store.ClearWhere(recordstore.FieldEquals(colCompleted, string(CompletedTrue)))
}
