package service

import (
	"crypto/subtle"
	"errors"

	"clubhouse/internal/model"
	"clubhouse/internal/pkg"
	"clubhouse/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPasscode      = errors.New("incorrect passcode")
	ErrStorageFailure     = errors.New("storage update failed")
)

const hashCost = 10

type MembershipService struct {
	repo          *mysql.MemberRepository
	joinPasscode  string
	adminPasscode string
	mailCfg       pkg.SMTPConfig
	audit         *pkg.AuditProducer
}

func NewMembershipService(joinPasscode, adminPasscode string, mailCfg pkg.SMTPConfig, audit *pkg.AuditProducer) *MembershipService {
	return &MembershipService{
		repo:          &mysql.MemberRepository{DB: mysql.DB},
		joinPasscode:  joinPasscode,
		adminPasscode: adminPasscode,
		mailCfg:       mailCfg,
		audit:         audit,
	}
}

// Signup 注册：哈希口令并落库，重名等落库失败交由上层按500处理
func (s *MembershipService) Signup(firstName, lastName, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}

	member := &model.Member{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Hash:      string(hash),
	}
	if err := s.repo.Create(member); err != nil {
		return err
	}

	s.audit.Emit(pkg.EventSignedUp, username, member.ID)
	return nil
}

// Join 入会：查未入会账号+验口令（两类失败合并，不泄露账号是否存在），
// 再比对入会暗号，最后条件更新会员标记
func (s *MembershipService) Join(username, password, passcode string) error {
	member, err := s.repo.FindByStatus(username, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(member.Hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.joinPasscode)) != 1 {
		return ErrWrongPasscode
	}

	affected, err := s.repo.SetMembership(username)
	if err != nil {
		return err
	}
	// 并发入会时只有一方真正翻转标记，另一方影响0行
	if affected == 0 {
		return ErrStorageFailure
	}

	if s.mailCfg.Enabled() {
		html := pkg.WelcomeHTML(member.FirstName)
		if err := pkg.SendEmail(s.mailCfg, username, "Welcome to the club", html); err != nil {
			logrus.WithError(err).WithField("username", username).Warn("join: welcome mail failed")
		}
	}
	s.audit.Emit(pkg.EventJoined, username, member.ID)
	return nil
}

// GrantAdmin 授管理员：比对管理员暗号后条件更新，仅已入会账号可升级
func (s *MembershipService) GrantAdmin(username, passcode string) error {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.adminPasscode)) != 1 {
		return ErrWrongPasscode
	}

	affected, err := s.repo.SetAdmin(username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStorageFailure
	}

	s.audit.Emit(pkg.EventAdminGranted, username, 0)
	return nil
}
