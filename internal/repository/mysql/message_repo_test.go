package mysql_test

import (
	"testing"
	"time"

	"clubhouse/internal/model"
	"clubhouse/internal/repository/mysql"
	"clubhouse/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListAllOrderedWithAuthor(t *testing.T) {
	db := testutil.SetupDB(t)
	memberRepo := &mysql.MemberRepository{DB: db}
	repo := &mysql.MessageRepository{DB: db}

	author := newMember(t, memberRepo, "jane@x.com")

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	// 乱序写入，读出时应按创建时间升序
	for i, title := range []string{"third", "first", "second"} {
		offsets := []time.Duration{2 * time.Hour, 0, time.Hour}
		msg := &model.Message{
			Title:     title,
			Text:      "body of " + title,
			MemberID:  author.ID,
			CreatedAt: base.Add(offsets[i]),
		}
		require.NoError(t, repo.Create(msg))
	}

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "third", list[2].Title)
	assert.Equal(t, "Jane Doe", list[0].Author())
	assert.False(t, list[0].CreatedAt.IsZero())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	db := testutil.SetupDB(t)
	memberRepo := &mysql.MemberRepository{DB: db}
	repo := &mysql.MessageRepository{DB: db}

	author := newMember(t, memberRepo, "jane@x.com")
	keep := &model.Message{Title: "keep", Text: "k", MemberID: author.ID}
	drop := &model.Message{Title: "drop", Text: "d", MemberID: author.ID}
	require.NoError(t, repo.Create(keep))
	require.NoError(t, repo.Create(drop))

	require.NoError(t, repo.Delete(drop.ID))

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "keep", list[0].Title)

	_, err = repo.FindByID(keep.ID)
	require.NoError(t, err)
	_, err = repo.FindByID(drop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMemberCascadesMessages(t *testing.T) {
	db := testutil.SetupDB(t)
	memberRepo := &mysql.MemberRepository{DB: db}
	repo := &mysql.MessageRepository{DB: db}

	author := newMember(t, memberRepo, "jane@x.com")
	other := newMember(t, memberRepo, "john@x.com")
	require.NoError(t, repo.Create(&model.Message{Title: "a", Text: "a", MemberID: author.ID}))
	require.NoError(t, repo.Create(&model.Message{Title: "b", Text: "b", MemberID: author.ID}))
	require.NoError(t, repo.Create(&model.Message{Title: "c", Text: "c", MemberID: other.ID}))

	require.NoError(t, memberRepo.Delete(author.ID))

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c", list[0].Title)
}
