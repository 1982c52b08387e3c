package finance

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	util "github.com/saulo-duarte/clubhouse/internal/utils"
)

var ErrEntryNotFound = errors.New("financial record not found")

type Service interface {
	Create(ctx context.Context, dto CreateEntryDTO) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Summary(ctx context.Context) (Summary, error)
	Breakdown(ctx context.Context) (Breakdown, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateEntryDTO) (*Entry, error) {
	log := config.WithContext(ctx)

	date := strings.TrimSpace(dto.Date)
	if !util.IsDate(date) {
		return nil, recordstore.Invalid("date", "must be YYYY-MM-DD")
	}
	if !dto.Type.IsValid() {
		return nil, recordstore.Invalid("type", "must be Income or Expense")
	}
	category := strings.TrimSpace(dto.Category)
	if category == "" {
		return nil, recordstore.Invalid("category", "is required")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(dto.Amount))
	if err != nil {
		return nil, recordstore.Invalid("amount", "must be a number")
	}
	if !amount.IsPositive() {
		return nil, recordstore.Invalid("amount", "must be greater than zero")
	}

	e := Entry{
		Date:        date,
		Type:        dto.Type,
		Category:    category,
		Amount:      amount.StringFixed(2),
		Description: strings.TrimSpace(dto.Description),
	}
	if err := s.repo.Create(&e); err != nil {
		log.WithError(err).Error("Failed to store financial record")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"entry_id": e.ID,
		"type":     e.Type,
		"amount":   e.Amount,
	}).Info("Financial record added")
	return &e, nil
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list financial records")
		return nil, err
	}
	return entries, nil
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	b, err := s.Breakdown(ctx)
	return b.Summary, err
}

func (s *service) Breakdown(ctx context.Context) (Breakdown, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return Summarize(nil, config.WithContext(ctx)), err
	}
	return Summarize(entries, config.WithContext(ctx)), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("entry_id", id)

	removed, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete financial record")
		return err
	}
	if !removed {
		return ErrEntryNotFound
	}
	log.Info("Financial record deleted")
	return nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	if err := s.repo.Export(w); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to export finances")
		return err
	}
	return nil
}
