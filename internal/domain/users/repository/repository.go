package repository

import (
	"context"
	"errors"
	"time"

	"github.com/minhtran/phimhub/internal/domain/users"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user users.User) error {
	return r.db.WithContext(ctx).Create(&user).Error
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByExtID(ctx context.Context, extID string) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("ext_id = ?", extID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateRefreshToken(ctx context.Context, token users.RefreshToken) error {
	return r.db.WithContext(ctx).Create(&token).Error
}

func (r *UserRepository) FindRefreshToken(ctx context.Context, tokenHash string) (*users.RefreshToken, error) {
	var token users.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", tokenHash, time.Now()).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *UserRepository) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&users.RefreshToken{}).Error
}
