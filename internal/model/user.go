package model

import (
	"time"
)

type UserLevel string

const (
	Beginner     UserLevel = "beginner"
	Intermediate UserLevel = "intermediate"
	Advanced     UserLevel = "advanced"
)

// Streak tracks consecutive-day activity. Extended/reset on login by the
// gamification engine; never written anywhere else.
type Streak struct {
	Current    int       `gorm:"default:0" json:"current"`
	Longest    int       `gorm:"default:0" json:"longest"`
	LastActive time.Time `json:"lastActive"`
}

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Level     UserLevel `gorm:"type:enum('beginner','intermediate','advanced');default:'beginner'" json:"level"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Streak    Streak    `gorm:"embedded;embeddedPrefix:streak_" json:"streak"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// Badge is earned once per (user, code) on gamification milestones.
type Badge struct {
	BaseModel
	UserID   uint      `gorm:"index:idx_user_badge,unique;type:bigint unsigned;not null" json:"-"`
	Code     string    `gorm:"size:50;index:idx_user_badge,unique;not null" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
}

func (Badge) TableName() string {
	return "badges"
}
