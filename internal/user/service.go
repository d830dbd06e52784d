package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

var (
	ErrPasswordMismatch       = errors.New("passwords do not match")
	ErrMissingFields          = errors.New("all fields are required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	if dto.Password != dto.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	u := &User{
		FullName:  util.PlainText(dto.FullName),
		CPF:       strings.TrimSpace(dto.CPF),
		BirthDate: dto.BirthDate,
		Whatsapp:  strings.TrimSpace(dto.Whatsapp),
		Email:     strings.TrimSpace(dto.Email),
	}
	if u.FullName == "" || u.CPF == "" || u.BirthDate.IsZero() || u.Whatsapp == "" || u.Email == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.repo.FindByEmail(ctx, u.Email)
	switch {
	case err == nil:
		log.WithField("email", u.Email).Warn("Registration attempt with existing email")
		return nil, ErrEmailAlreadyRegistered
	case !errors.Is(err, ErrUserNotFound):
		log.WithError(err).Error("Failed to look up email")
		return nil, err
	}

	u.ID = uuid.New()
	if err := s.repo.Create(ctx, u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return u, nil
}

func (s *service) Login(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		config.WithContext(ctx).WithError(err).Error("Failed to look up user for login")
		return nil, err
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, dto UpdateProfileDTO) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*dto.AvatarURL)
	}
	if dto.Whatsapp != nil {
		u.Whatsapp = strings.TrimSpace(*dto.Whatsapp)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		log.WithError(err).Error("Failed to update user")
		return nil, err
	}
	return u, nil
}
