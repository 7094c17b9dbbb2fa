package dao

import (
	"testing"
	"time"

	"Quill/models"
	"Quill/pkg/database"
	"Quill/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接独立，只保留一个
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	now := time.Now()
	u := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		Email:     username + "@example.com",
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedArticle(t *testing.T, db *gorm.DB, authorID uint64, slug string, published bool) *models.Article {
	t.Helper()
	a := &models.Article{
		ID:        snowflake.GenID(),
		AuthorID:  authorID,
		Title:     slug,
		Slug:      slug,
		Published: published,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}
