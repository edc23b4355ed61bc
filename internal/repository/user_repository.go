package repository

import (
	"context"

	"github.com/khanghh/evote/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.VotingUser) error
	FindByID(ctx context.Context, id uint) (*model.VotingUser, error)
	FindByEmail(ctx context.Context, email string) (*model.VotingUser, error)
	Updates(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, user *model.VotingUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.VotingUser, error) {
	var user model.VotingUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.VotingUser, error) {
	var user model.VotingUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Updates(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	ret := r.db.WithContext(ctx).Model(&model.VotingUser{}).Where("id = ?", id).Updates(columns)
	return ret.RowsAffected, ret.Error
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}
