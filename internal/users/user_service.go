package users

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/khanghh/evote/internal/repository"
	"github.com/khanghh/evote/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MaxEmailLength    = 100 // characters, matches the email column size
	MaxPasswordLength = 72  // bytes, bcrypt input limit
)

type RegisterUserOptions struct {
	Email    string
	Pesel    string
	Password string
}

type UserService struct {
	userRepo  repository.UserRepository
	hashCost  int
	timeNowFn func() time.Time
}

func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*model.VotingUser, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) RegisterUser(ctx context.Context, opts RegisterUserOptions) (*model.VotingUser, error) {
	if utf8.RuneCountInString(opts.Email) > MaxEmailLength {
		return nil, ErrEmailTooLong
	}
	if len(opts.Password) > MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	existing, err := s.userRepo.FindByEmail(ctx, opts.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	user := model.VotingUser{
		Email:    opts.Email,
		Pesel:    opts.Pesel,
		Password: string(passwordHash),
	}
	// unique index still catches a concurrent registration of the same email
	if err := s.userRepo.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email string, password string) (*model.VotingUser, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.timeNowFn()
	if _, err := s.userRepo.Updates(ctx, user.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return user, nil
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		hashCost:  bcrypt.DefaultCost,
		timeNowFn: time.Now,
	}
}
