package repository

import (
	"learnbotx_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) FindByIDAndUser(id string, userID uint) (*model.Chat, error) {
	var chat model.Chat
	err := r.DB.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) FindRecentByUser(userID uint, limit int) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.DB.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&chats).Error
	return chats, err
}

func (r *ChatRepository) Create(chat *model.Chat) error {
	return r.DB.Create(chat).Error
}

func (r *ChatRepository) AppendMessage(chat *model.Chat, msg *model.ChatMessage) error {
	msg.ChatID = chat.ID
	if err := r.DB.Create(msg).Error; err != nil {
		return err
	}
	// Touch the parent so history sorts by latest activity.
	return r.DB.Model(chat).Update("updated_at", msg.CreatedAt).Error
}

func (r *ChatRepository) Delete(chat *model.Chat) error {
	if err := r.DB.Where("chat_id = ?", chat.ID).Delete(&model.ChatMessage{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(chat).Error
}
