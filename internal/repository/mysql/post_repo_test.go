package mysql

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := gormmysql.New(gormmysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock, mockDB
}

func TestListVisibleJoinsPublishedCategory(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := &PostRepository{DB: db}

	rows := sqlmock.NewRows([]string{"id", "title", "is_published", "author_id", "comment_count"}).
		AddRow(1, "first", true, 7, 3).
		AddRow(2, "second", true, 7, 0)

	// 可见谓词必须内连接 categories 并按发布时间倒序
	mock.ExpectQuery("SELECT posts\\..+comment_count FROM `posts` JOIN categories ON categories\\.id = posts\\.category_id.+ORDER BY posts\\.pub_date DESC").
		WillReturnRows(rows)

	list, err := repo.ListVisible(time.Now(), 0, 10)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].CommentCount)
	assert.Equal(t, int64(0), list[1].CommentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindVisibleByIDFilteredOutLooksAbsent(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := &PostRepository{DB: db}

	mock.ExpectQuery("SELECT .+ FROM `posts` JOIN categories").
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.FindVisibleByID(42, time.Now())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDSkipsVisibilityFilter(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := &PostRepository{DB: db}

	// 作者视角直查主表，不连 categories
	rows := sqlmock.NewRows([]string{"id", "title", "is_published", "author_id"}).
		AddRow(5, "draft", false, 7)
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE").WillReturnRows(rows)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(7, "bob", "bob@example.com"))

	post, err := repo.FindByID(5)
	require.NoError(t, err)
	assert.False(t, post.IsPublished)
	assert.Equal(t, uint64(7), post.AuthorID)
	require.NotNil(t, post.Author)
	assert.Equal(t, "bob", post.Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAuthorIncludesDrafts(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := &PostRepository{DB: db}

	rows := sqlmock.NewRows([]string{"id", "title", "is_published", "author_id", "comment_count"}).
		AddRow(2, "published", true, 7, 1).
		AddRow(3, "draft", false, 7, 0)

	// 主人视角不带 JOIN categories
	mock.ExpectQuery("SELECT posts\\..+comment_count FROM `posts` WHERE posts\\.author_id = .+ORDER BY posts\\.pub_date DESC").
		WillReturnRows(rows)

	list, err := repo.ListByAuthor(7, 0, 10)
	assert.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[1].IsPublished)
	assert.NoError(t, mock.ExpectationsWereMet())
}
