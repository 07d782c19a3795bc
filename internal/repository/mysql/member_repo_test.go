package mysql_test

import (
	"testing"

	"clubhouse/internal/model"
	"clubhouse/internal/repository/mysql"
	"clubhouse/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMember(t *testing.T, repo *mysql.MemberRepository, username string) *model.Member {
	t.Helper()
	m := &model.Member{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  username,
		Hash:      "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, repo.Create(m))
	return m
}

func TestFindByStatus(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := &mysql.MemberRepository{DB: db}
	newMember(t, repo, "jane@x.com")

	found, err := repo.FindByStatus("jane@x.com", false)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", found.Username)

	// 未入会时按已入会查询应查不到
	_, err = repo.FindByStatus("jane@x.com", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetMembershipConditional(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := &mysql.MemberRepository{DB: db}
	newMember(t, repo, "jane@x.com")

	affected, err := repo.SetMembership("jane@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// 已入会账号重复入会影响0行
	affected, err = repo.SetMembership("jane@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	found, err := repo.FindByStatus("jane@x.com", true)
	require.NoError(t, err)
	assert.True(t, found.MemStatus)
}

func TestSetAdminRequiresMembership(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := &mysql.MemberRepository{DB: db}
	newMember(t, repo, "jane@x.com")

	// 未入会不可成为管理员
	affected, err := repo.SetAdmin("jane@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	_, err = repo.SetMembership("jane@x.com")
	require.NoError(t, err)

	affected, err = repo.SetAdmin("jane@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	isAdmin, err := repo.IsAdmin("jane@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestStatusFlags(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := &mysql.MemberRepository{DB: db}
	newMember(t, repo, "jane@x.com")

	exists, err := repo.Exists("jane@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	joined, err := repo.HasMembership("jane@x.com")
	require.NoError(t, err)
	assert.False(t, joined)

	isAdmin, err := repo.IsAdmin("jane@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUsernameUnique(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := &mysql.MemberRepository{DB: db}
	newMember(t, repo, "jane@x.com")

	dup := &model.Member{FirstName: "Other", LastName: "Jane", Username: "jane@x.com", Hash: "h"}
	assert.Error(t, repo.Create(dup))
}
