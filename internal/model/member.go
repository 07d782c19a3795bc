package model

import "time"

type Member struct {
	ID        uint64 `gorm:"primaryKey"`
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:100;not null"`
	Username  string `gorm:"uniqueIndex;size:255;not null"` // 用户名即邮箱
	Hash      string `gorm:"size:255;not null"`
	MemStatus bool   `gorm:"not null;default:false"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName 展示用姓名
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
