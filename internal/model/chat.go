package model

// Chat stores an AI conversation. Messages are ordered by creation time and
// replayed in full on every model call.
type Chat struct {
	UUIDBase
	UserID   uint          `gorm:"index;type:bigint unsigned;not null" json:"-"`
	Title    string        `gorm:"size:100" json:"title"`
	Messages []ChatMessage `gorm:"foreignKey:ChatID" json:"messages"`
}

func (Chat) TableName() string {
	return "chats"
}

type ChatMessage struct {
	BaseModel
	ChatID  string `gorm:"size:36;index;not null" json:"-"`
	Role    string `gorm:"size:20;not null" json:"role"`
	Content string `gorm:"type:text;not null" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
