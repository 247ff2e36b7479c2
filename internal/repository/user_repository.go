package repository

import (
	"time"

	"learnbotx_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{DB: tx}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateStreak persists only the streak columns plus last login.
func (r *UserRepository) UpdateStreak(userID uint, streak model.Streak, lastLogin time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak_current":     streak.Current,
			"streak_longest":     streak.Longest,
			"streak_last_active": streak.LastActive,
			"last_login":         lastLogin,
		}).Error
}

func (r *UserRepository) GetBadges(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("user_id = ?", userID).Order("earned_at ASC").Find(&badges).Error
	return badges, err
}

// AwardBadge inserts a badge once; re-awards are silently ignored.
func (r *UserRepository) AwardBadge(badge *model.Badge) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(badge).Error
}
