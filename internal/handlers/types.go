package handlers

import (
	"context"

	"github.com/khanghh/evote/internal/users"
	"github.com/khanghh/evote/model"
)

type UserService interface {
	GetUserByID(ctx context.Context, userID uint) (*model.VotingUser, error)
	RegisterUser(ctx context.Context, opts users.RegisterUserOptions) (*model.VotingUser, error)
	Authenticate(ctx context.Context, email string, password string) (*model.VotingUser, error)
}
