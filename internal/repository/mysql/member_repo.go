package mysql

import (
	"clubhouse/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) Create(member *model.Member) error {
	return r.DB.Create(member).Error
}

// FindByStatus 按用户名+会员状态查找（登录查已入会，入会查未入会）
func (r *MemberRepository) FindByStatus(username string, memStatus bool) (*model.Member, error) {
	var member model.Member
	err := r.DB.Where("username = ? AND mem_status = ?", username, memStatus).First(&member).Error
	return &member, err
}

func (r *MemberRepository) FindByUsername(username string) (*model.Member, error) {
	var member model.Member
	err := r.DB.Where("username = ?", username).First(&member).Error
	return &member, err
}

func (r *MemberRepository) Exists(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) HasMembership(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).
		Where("username = ? AND mem_status = ?", username, true).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) IsAdmin(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).
		Where("username = ? AND is_admin = ?", username, true).
		Count(&count).Error
	return count > 0, err
}

// SetMembership 条件更新：仅未入会的账号可入会，返回影响行数供上层识别竞态
func (r *MemberRepository) SetMembership(username string) (int64, error) {
	tx := r.DB.Model(&model.Member{}).
		Where("username = ? AND mem_status = ?", username, false).
		Update("mem_status", true)
	return tx.RowsAffected, tx.Error
}

// SetAdmin 条件更新：仅已入会的账号可成为管理员
func (r *MemberRepository) SetAdmin(username string) (int64, error) {
	tx := r.DB.Model(&model.Member{}).
		Where("username = ? AND mem_status = ?", username, true).
		Update("is_admin", true)
	return tx.RowsAffected, tx.Error
}

func (r *MemberRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Member{}, id).Error
}
