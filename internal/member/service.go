package member

import (
	"context"
	"errors"
	"io"
	"net/mail"
	"strings"

	"github.com/saulo-duarte/clubhouse/internal/config"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
	util "github.com/saulo-duarte/clubhouse/internal/utils"
)

var ErrMemberNotFound = errors.New("member not found")

type Service interface {
	Create(ctx context.Context, dto CreateMemberDTO) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, id string, dto UpdateMemberDTO) (*Member, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateMemberDTO) (*Member, error) {
	log := config.WithContext(ctx)

	name, err := validName(dto.Name)
	if err != nil {
		return nil, err
	}
	email, err := validEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	joinDate := strings.TrimSpace(dto.JoinDate)
	if joinDate == "" {
		joinDate = util.Today()
	} else if !util.IsDate(joinDate) {
		return nil, recordstore.Invalid("join_date", "must be YYYY-MM-DD")
	}

	m := Member{Name: name, Email: email, JoinDate: joinDate}
	if err := s.repo.Create(&m); err != nil {
		log.WithError(err).Error("Failed to store member")
		return nil, err
	}

	log.WithField("member_id", m.ID).Info("Member added")
	return &m, nil
}

func (s *service) List(ctx context.Context) ([]Member, error) {
	members, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list members")
		return nil, err
	}
	return members, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateMemberDTO) (*Member, error) {
	log := config.WithContext(ctx).WithField("member_id", id)

	fields := recordstore.Record{}
	if dto.Name != nil {
		name, err := validName(*dto.Name)
		if err != nil {
			return nil, err
		}
		fields[colName] = name
	}
	if dto.Email != nil {
		email, err := validEmail(*dto.Email)
		if err != nil {
			return nil, err
		}
		fields[colEmail] = email
	}
	if dto.JoinDate != nil {
		joinDate := strings.TrimSpace(*dto.JoinDate)
		if !util.IsDate(joinDate) {
			return nil, recordstore.Invalid("join_date", "must be YYYY-MM-DD")
		}
		fields[colJoinDate] = joinDate
	}

	found, err := s.repo.Update(id, fields)
	if err != nil {
		log.WithError(err).Error("Failed to update member")
		return nil, err
	}
	if !found {
		return nil, ErrMemberNotFound
	}

	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}
	log.Info("Member updated")
	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("member_id", id)

	removed, err := s.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete member")
		return err
	}
	if !removed {
		return ErrMemberNotFound
	}
	log.Info("Member deleted")
	return nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	if err := s.repo.Export(w); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to export members")
		return err
	}
	return nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", recordstore.Invalid("name", "is required")
	}
	return name, nil
}

func validEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", recordstore.Invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", recordstore.Invalid("email", "is not a valid address")
	}
	return email, nil
}
