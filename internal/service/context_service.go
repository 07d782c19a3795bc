package service

import (
	"clubhouse/internal/model"
	"clubhouse/internal/repository/mysql"
)

// UserContext 每次渲染前重新装配的视图模型；故意每次回源查询，换取状态不失真
type UserContext struct {
	Messages  []model.MessageView
	SignedUp  bool
	HasJoined bool
	IsAdmin   bool
}

type ContextService struct {
	memberRepo  *mysql.MemberRepository
	messageRepo *mysql.MessageRepository
}

func NewContextService() *ContextService {
	return &ContextService{
		memberRepo:  &mysql.MemberRepository{DB: mysql.DB},
		messageRepo: &mysql.MessageRepository{DB: mysql.DB},
	}
}

// Build 留言全量拉取（不按身份过滤），三个标记按用户名独立查询；
// username为空或查不到时标记全为false
func (s *ContextService) Build(username string) (*UserContext, error) {
	messages, err := s.messageRepo.ListAll()
	if err != nil {
		return nil, err
	}

	ctx := &UserContext{Messages: messages}
	if username == "" {
		return ctx, nil
	}

	if ctx.SignedUp, err = s.memberRepo.Exists(username); err != nil {
		return nil, err
	}
	if ctx.HasJoined, err = s.memberRepo.HasMembership(username); err != nil {
		return nil, err
	}
	if ctx.IsAdmin, err = s.memberRepo.IsAdmin(username); err != nil {
		return nil, err
	}
	return ctx, nil
}
