package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// UserInput is the identity payload for registering a profile. Auth itself
// lives in an external collaborator; this service only owns the identity row
// the planner joins against.
type UserInput struct {
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Gender      string  `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
}

type UserService interface {
	CreateUser(ctx context.Context, input UserInput) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
}

type userService struct {
	users repos.UserRepo
	log   *logger.Logger
}

func NewUserService(users repos.UserRepo, baseLog *logger.Logger) UserService {
	return &userService{
		users: users,
		log:   baseLog.With("service", "UserService"),
	}
}

func (us *userService) CreateUser(ctx context.Context, input UserInput) (*types.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	user := &types.User{
		ID:       uuid.New(),
		Email:    input.Email,
		FullName: input.FullName,
		Gender:   input.Gender,
	}
	if input.DateOfBirth != nil && *input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid date_of_birth: %w", err)
		}
		user.DateOfBirth = &dob
	}
	if _, err := us.users.Create(ctx, nil, []*types.User{user}); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}
	return user, nil
}

func (us *userService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := us.users.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
