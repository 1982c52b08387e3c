package goal

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	util "github.com/saulo-duarte/clubhouse/internal/utils"
)

var ErrGoalNotFound = errors.New("goal not found")

type Service interface {
	Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error)
	List(ctx context.Context) ([]GoalResponse, error)
	Toggle(ctx context.Context, id string) (*GoalResponse, error)
	Delete(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, recordstore.Invalid("title", "is required")
	}
	dueDate := strings.TrimSpace(dto.DueDate)
	if dueDate != "" && !util.IsDate(dueDate) {
		return nil, recordstore.Invalid("due_date", "must be YYYY-MM-DD")
	}

	goal := Goal{
		Title:       title,
		DueDate:     dueDate,
		Completed:   CompletedFalse,
		CreatedDate: util.Today(),
	}
	if err := s.repo.Create(&goal); err != nil {
		log.WithError(err).Error("Failed to store goal")
		return nil, err
	}

	log.WithField("goal_id", goal.ID).Info("Goal created")
	return toResponse(&goal), nil
}

func (s *service) List(ctx context.Context) ([]GoalResponse, error) {
	goals, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *toResponse(&goals[i]))
	}
	return responses, nil
}

func (s *service) Toggle(ctx context.Context, id string) (*GoalResponse, error) {
	log := config.WithContext(ctx).WithField("goal_id", id)

	found, err := s.repo.ToggleCompleted(id)
	if err != nil {
		log.WithError(err).Error("Failed to toggle goal")
		return nil, err
	}
	if !found {
		return nil, ErrGoalNotFound
	}

	goal, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	log.WithFields(logrus.Fields{"completed": goal.Completed}).Info("Goal toggled")
	return toResponse(goal), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("goal_id", id)

	removed, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}
	if !removed {
		return ErrGoalNotFound
	}

	log.Info("Goal deleted")
	return nil
}

func (s *service) ClearCompleted(ctx context.Context) (int, error) {
	log := config.WithContext(ctx)

	n, err := s.repo.DeleteCompleted()
	if err != nil {
		log.WithError(err).Error("Failed to clear completed goals")
		return 0, err
	}

	log.WithField("removed", n).Info("Completed goals cleared")
	return n, nil
}

func toResponse(goal *Goal) *GoalResponse {
	return &GoalResponse{
		ID:          goal.ID,
		Title:       goal.Title,
		DueDate:     goal.DueDate,
		Completed:   goal.Completed.Bool(),
		CreatedDate: goal.CreatedDate,
	}
}
