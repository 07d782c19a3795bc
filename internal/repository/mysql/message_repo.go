package mysql

import (
	"clubhouse/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func (r *MessageRepository) Create(message *model.Message) error {
	return r.DB.Create(message).Error
}

// ListAll 全量留言列表，按创建时间升序，联表取作者姓名
func (r *MessageRepository) ListAll() ([]model.MessageView, error) {
	var list []model.MessageView
	err := r.DB.Model(&model.Message{}).
		Select("messages.id, messages.title, messages.text, messages.created_at, " +
			"members.first_name AS author_first, members.last_name AS author_last").
		Joins("JOIN members ON members.id = messages.member_id").
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&list).Error
	return list, err
}

func (r *MessageRepository) FindByID(id uint64) (*model.Message, error) {
	var message model.Message
	err := r.DB.First(&message, id).Error
	return &message, err
}

// Delete 幂等硬删除
func (r *MessageRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Message{}, id).Error
}
