package repository

import (
	"learnbotx_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *ProgressRepository) WithTx(tx *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: tx}
}

// FindByUserID loads the full aggregate: steps in unlock order with their
// lesson sets, quizzes in submission order.
func (r *ProgressRepository) FindByUserID(userID uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_id ASC")
		}).
		Preload("Steps.CompletedLessons").
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *ProgressRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

// Save writes the aggregate including modified steps, new lessons and new
// quiz rows.
func (r *ProgressRepository) Save(path *model.LearningPath) error {
	return r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(path).Error
}

// LeaderboardEntry is one row of the XP ranking.
type LeaderboardEntry struct {
	UserID  uint   `json:"userId"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	TotalXP int    `json:"totalXP"`
}

func (r *ProgressRepository) TopByXP(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.DB.Model(&model.LearningPath{}).
		Select("learning_paths.user_id, users.name, users.avatar, learning_paths.total_xp").
		Joins("JOIN users ON users.id = learning_paths.user_id").
		Order("learning_paths.total_xp DESC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}
