package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.CredentialsRequest) error
	Authenticate(req dto.CredentialsRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	cost     int
	// compared against when the username is unknown so both paths pay for one bcrypt check
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) (AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("examportal"), cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}
	return &authService{userRepo: userRepo, cost: cfg.Auth.BcryptCost, dummyHash: dummy}, nil
}

func (s *authService) Register(req dto.CredentialsRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
		}
		return fmt.Errorf("hash password: %w", err)
	}

	user := model.User{Username: req.Username, PasswordHash: string(hash)}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Info().Str("username", req.Username).Msg("Register: username already taken")
			return ErrDuplicateUsername
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return fmt.Errorf("%w: create user: %w", ErrStoreUnavailable, err)
	}

	log.Info().Str("username", req.Username).Uint("userID", user.ID).Msg("User registered")
	return nil
}

func (s *authService) Authenticate(req dto.CredentialsRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
			return ErrInvalidCredentials
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Authenticate: failed to look up user")
		return fmt.Errorf("%w: find user: %w", ErrStoreUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
