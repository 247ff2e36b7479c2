package service

import (
	"errors"

	"learnbotx_backend/internal/model"
	"learnbotx_backend/internal/repository"
	"learnbotx_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// ProfileInput holds the user-editable profile fields.
type ProfileInput struct {
	Name   *string
	Level  *string
	Avatar *string
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, in ProfileInput) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Level != nil {
		user.Level = model.UserLevel(*in.Level)
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, url string) (*model.User, error) {
	return s.UpdateProfile(userID, ProfileInput{Avatar: &url})
}

func (s *UserService) GetBadges(userID uint) ([]model.Badge, error) {
	badges, err := s.UserRepo.GetBadges(userID)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []model.Badge{}
	}
	return badges, nil
}
