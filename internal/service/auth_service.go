package service

import (
	"errors"

	"clubhouse/internal/model"
	"clubhouse/internal/pkg"
	"clubhouse/internal/repository/mysql"
	"clubhouse/internal/repository/redis"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNotAMember     = errors.New("you must join the club before logging in")
	ErrBadCredentials = errors.New("incorrect password")
)

type AuthService struct {
	repo     *mysql.MemberRepository
	rSession *redis.SessionRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		repo:     &mysql.MemberRepository{DB: mysql.DB},
		rSession: &redis.SessionRepository{},
	}
}

// Authenticate 仅已入会账号可登录；返回前清空口令哈希
func (s *AuthService) Authenticate(username, password string) (*model.Member, error) {
	member, err := s.repo.FindByStatus(username, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAMember
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(member.Hash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	member.Hash = ""
	return member, nil
}

// OpenSession 生成会话ID写入redis，返回签名后的cookie值
func (s *AuthService) OpenSession(username string) (string, error) {
	sid := uuid.NewString()
	if err := s.rSession.AddSession(sid, username); err != nil {
		return "", err
	}
	return pkg.SignSession(sid)
}

// ResolveSession 还原会话：验签 -> redis取身份 -> 重查会员记录（已退会视为未登录）
// 命中后滑动续期
func (s *AuthService) ResolveSession(cookieValue string) (*model.Member, string, error) {
	sid, err := pkg.ParseSession(cookieValue)
	if err != nil {
		return nil, "", err
	}

	username, err := s.rSession.GetSession(sid)
	if err != nil {
		return nil, "", err
	}

	member, err := s.repo.FindByStatus(username, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotAMember
		}
		return nil, "", err
	}

	if err := s.rSession.ExtendSession(sid); err != nil {
		return nil, "", err
	}

	member.Hash = ""
	return member, sid, nil
}

// CloseSession 登出：仅清除身份，cookie由handler侧清理
func (s *AuthService) CloseSession(cookieValue string) error {
	sid, err := pkg.ParseSession(cookieValue)
	if err != nil {
		return err
	}
	return s.rSession.DeleteSession(sid)
}
