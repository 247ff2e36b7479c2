package model

// swagger:model Note
type Note struct {
	UUIDBase
	UserID   uint     `gorm:"index;type:bigint unsigned;not null" json:"-"`
	Title    string   `gorm:"size:100;not null" json:"title"`
	Content  string   `gorm:"type:text" json:"content"`
	Category string   `gorm:"size:50;default:'general'" json:"category"`
	Tags     []string `gorm:"serializer:json" json:"tags"`
	IsPinned bool     `gorm:"default:false" json:"isPinned"`
	Color    string   `gorm:"size:30;default:'default'" json:"color"`
}

func (Note) TableName() string {
	return "notes"
}
