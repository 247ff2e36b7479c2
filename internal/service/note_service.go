package service

import (
	"errors"

	"learnbotx_backend/internal/model"
	"learnbotx_backend/internal/repository"
	"learnbotx_backend/internal/util"

	"gorm.io/gorm"
)

type NoteService struct {
	NoteRepo *repository.NoteRepository
}

func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo}
}

// NoteInput holds the writable note fields. Pointers distinguish "absent"
// from zero values on update.
type NoteInput struct {
	Title    *string
	Content  *string
	Category *string
	Tags     *[]string
	IsPinned *bool
	Color    *string
}

func (s *NoteService) List(userID uint) ([]model.Note, error) {
	return s.NoteRepo.FindByUser(userID)
}

func (s *NoteService) Create(userID uint, in NoteInput) (*model.Note, error) {
	note := &model.Note{
		UserID:   userID,
		Title:    "Untitled Note",
		Category: "general",
		Color:    "default",
		Tags:     []string{},
	}
	applyNoteInput(note, in)

	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Update(userID uint, id string, in NoteInput) (*model.Note, error) {
	note, err := s.NoteRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}

	applyNoteInput(note, in)

	if err := s.NoteRepo.Save(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(userID uint, id string) error {
	note, err := s.NoteRepo.FindByIDAndUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNoteNotFound
		}
		return err
	}
	return s.NoteRepo.Delete(note)
}

func applyNoteInput(note *model.Note, in NoteInput) {
	if in.Title != nil {
		note.Title = *in.Title
	}
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.Category != nil {
		note.Category = *in.Category
	}
	if in.Tags != nil {
		note.Tags = *in.Tags
	}
	if in.IsPinned != nil {
		note.IsPinned = *in.IsPinned
	}
	if in.Color != nil {
		note.Color = *in.Color
	}
}
