package repository

import (
	"learnbotx_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// FindByUser returns all notes, pinned first, most recently updated next.
func (r *NoteRepository) FindByUser(userID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("user_id = ?", userID).
		Order("is_pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) FindByIDAndUser(id string, userID uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) Save(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(note *model.Note) error {
	return r.DB.Delete(note).Error
}
