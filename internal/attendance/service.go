package attendance

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/member"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	util "github.com/saulo-duarte/clubhouse/internal/utils"
)

var ErrRecordNotFound = errors.New("attendance record not found")

type Service interface {
	Create(ctx context.Context, dto CreateAttendanceDTO) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Page(ctx context.Context) AttendancePageResponse
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo    Repository
	members member.Service
}

func NewService(repo Repository, members member.Service) Service {
	return &service{repo: repo, members: members}
}

func (s *service) Create(ctx context.Context, dto CreateAttendanceDTO) (*Record, error) {
	log := config.WithContext(ctx)

	rec, err := validate(dto)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(rec); err != nil {
		log.WithError(err).Error("Failed to store attendance record")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"attendance_id": rec.ID,
		"member":        rec.MemberName,
		"status":        rec.Status,
	}).Info("Attendance recorded")
	return rec, nil
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list attendance")
		return nil, err
	}
	return records, nil
}

// Page never fails: unreadable stores show up as empty lists.
func (s *service) Page(ctx context.Context) AttendancePageResponse {
	page := AttendancePageResponse{Records: []Record{}, Members: []string{}}

	if records, err := s.List(ctx); err == nil {
		page.Records = records
	}
	if members, err := s.members.List(ctx); err == nil {
		for _, m := range members {
			page.Members = append(page.Members, m.Name)
		}
	}
	return page
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("attendance_id", id)

	removed, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete attendance record")
		return err
	}
	if !removed {
		return ErrRecordNotFound
	}
	log.Info("Attendance record deleted")
	return nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	if err := s.repo.Export(w); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to export attendance")
		return err
	}
	return nil
}

func validate(dto CreateAttendanceDTO) (*Record, error) {
	date := strings.TrimSpace(dto.Date)
	if !util.IsDate(date) {
		return nil, recordstore.Invalid("date", "must be YYYY-MM-DD")
	}
	memberName := strings.TrimSpace(dto.MemberName)
	if memberName == "" {
		return nil, recordstore.Invalid("member_name", "is required")
	}
	sessionName := strings.TrimSpace(dto.SessionName)
	if sessionName == "" {
		return nil, recordstore.Invalid("session_name", "is required")
	}

	hours, err := decimal.NewFromString(strings.TrimSpace(dto.Hours))
	if err != nil {
		return nil, recordstore.Invalid("hours", "must be a number")
	}
	if hours.IsNegative() {
		return nil, recordstore.Invalid("hours", "must not be negative")
	}

	status := dto.Status
	if status == "" {
		status = StatusPresent
	}
	if !status.IsValid() {
		return nil, recordstore.Invalid("status", "must be Present or Absent")
	}

	return &Record{
		Date:        date,
		MemberName:  memberName,
		SessionName: sessionName,
		Hours:       hours.String(),
		Status:      status,
		Notes:       strings.TrimSpace(dto.Notes),
	}, nil
}
