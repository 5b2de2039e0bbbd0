package repository

import (
	"Showcase/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserDetailByIds(ctx context.Context, ids []uint64) ([]*model.UserDetail, error)
	CreateUser(ctx context.Context, user *model.User, detail *model.UserDetail) error
	CreateUserDetail(ctx context.Context, detail *model.UserDetail) error
	UpdateUserDetail(ctx context.Context, detail *model.UserDetail) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("UserDetail").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("UserDetail").
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserDetailByIds(ctx context.Context, ids []uint64) ([]*model.UserDetail, error) {
	details := make([]*model.UserDetail, 0)
	result := s.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&details)
	if result.Error != nil {
		return nil, result.Error
	}
	return details, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, detail *model.UserDetail) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		detail.UserID = user.ID
		return tx.Create(detail).Error
	})
}

func (s *UserRepoImpl) CreateUserDetail(ctx context.Context, detail *model.UserDetail) error {
	return s.db.WithContext(ctx).Create(detail).Error
}

func (s *UserRepoImpl) UpdateUserDetail(ctx context.Context, detail *model.UserDetail) error {
	return s.db.WithContext(ctx).
		Model(&model.UserDetail{}).
		Where("user_id = ?", detail.UserID).
		Updates(detail).Error
}
