package service

import (
	"errors"
	"strings"

	"clubhouse/internal/model"
	"clubhouse/internal/pkg"
	"clubhouse/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrMissingFields = errors.New("title and text are required")

type MessageService struct {
	repo       *mysql.MessageRepository
	memberRepo *mysql.MemberRepository
	audit      *pkg.AuditProducer
}

func NewMessageService(audit *pkg.AuditProducer) *MessageService {
	return &MessageService{
		repo:       &mysql.MessageRepository{DB: mysql.DB},
		memberRepo: &mysql.MemberRepository{DB: mysql.DB},
		audit:      audit,
	}
}

// Create 标题和正文必填；作者ID按用户名解析，时间戳由存储侧落库时分配
func (s *MessageService) Create(username, title, text string) (uint64, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(text) == "" {
		return 0, ErrMissingFields
	}

	member, err := s.memberRepo.FindByUsername(username)
	if err != nil {
		return 0, err
	}

	message := &model.Message{
		Title:    title,
		Text:     text,
		MemberID: member.ID,
	}
	if err := s.repo.Create(message); err != nil {
		return 0, err
	}

	s.audit.Emit(pkg.EventMsgCreated, username, message.ID)
	return message.ID, nil
}

// Delete 管理员权限由边界校验；目标已不存在视为幂等成功，不再发审计事件
func (s *MessageService) Delete(username string, messageID uint64) error {
	if _, err := s.repo.FindByID(messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(messageID); err != nil {
		return err
	}
	s.audit.Emit(pkg.EventMsgDeleted, username, messageID)
	return nil
}
