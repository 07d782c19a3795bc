package model

import "time"

type Message struct {
	ID        uint64    `gorm:"primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	Text      string    `gorm:"type:text;not null"`
	MemberID  uint64    `gorm:"not null;index"`
	Member    Member    `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"index"`
}

// MessageView 留言列表展示行（作者姓名来自 members 联表）
type MessageView struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	AuthorFirst string    `json:"author_first"`
	AuthorLast  string    `json:"author_last"`
	CreatedAt   time.Time `json:"created_at"`
}

func (v MessageView) Author() string {
	return v.AuthorFirst + " " + v.AuthorLast
}
