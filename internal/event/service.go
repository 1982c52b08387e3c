package event

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	util "github.com/saulo-duarte/clubhouse/internal/utils"
)

var ErrEventNotFound = errors.New("event not found")

type Service interface {
	Create(ctx context.Context, dto CreateEventDTO) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Calendar(ctx context.Context) ([]CalendarEntry, error)
	Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, recordstore.Invalid("name", "is required")
	}
	date := strings.TrimSpace(dto.Date)
	if !util.IsDate(date) {
		return nil, recordstore.Invalid("date", "must be YYYY-MM-DD")
	}
	tm, ok := util.NormalizeTime(dto.Time)
	if !ok {
		return nil, recordstore.Invalid("time", "must be HH:MM")
	}

	e := Event{
		Name:        name,
		Date:        date,
		Time:        tm,
		Location:    strings.TrimSpace(dto.Location),
		Description: strings.TrimSpace(dto.Description),
	}
	if err := s.repo.Create(&e); err != nil {
		log.WithError(err).Error("Failed to store event")
		return nil, err
	}

	log.WithField("event_id", e.ID).Info("Event scheduled")
	return &e, nil
}

func (s *service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *service) Calendar(ctx context.Context) ([]CalendarEntry, error) {
	events, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]CalendarEntry, 0, len(events))
	for _, e := range events {
		entries = append(entries, e.CalendarEntry())
	}
	return entries, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error) {
	log := config.WithContext(ctx).WithField("event_id", id)

	fields := recordstore.Record{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, recordstore.Invalid("name", "is required")
		}
		fields[colName] = name
	}
	if dto.Date != nil {
		date := strings.TrimSpace(*dto.Date)
		if !util.IsDate(date) {
			return nil, recordstore.Invalid("date", "must be YYYY-MM-DD")
		}
		fields[colDate] = date
	}
	if dto.Time != nil {
		tm, ok := util.NormalizeTime(*dto.Time)
		if !ok {
			return nil, recordstore.Invalid("time", "must be HH:MM")
		}
		fields[colTime] = tm
	}
	if dto.Location != nil {
		fields[colLocation] = strings.TrimSpace(*dto.Location)
	}
	if dto.Description != nil {
		fields[colDescription] = strings.TrimSpace(*dto.Description)
	}

	found, err := s.repo.Update(id, fields)
	if err != nil {
		log.WithError(err).Error("Failed to update event")
		return nil, err
	}
	if !found {
		return nil, ErrEventNotFound
	}

	e, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEventNotFound
	}
	log.Info("Event updated")
	return e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("event_id", id)

	removed, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete event")
		return err
	}
	if !removed {
		return ErrEventNotFound
	}
	log.Info("Event deleted")
	return nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	if err := s.repo.Export(w); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to export events")
		return err
	}
	return nil
}
