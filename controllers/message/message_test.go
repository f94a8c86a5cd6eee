package controllers

import (
	"testing"

	"github.com/fishperson113/letslearn-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Conversation{}, &models.ChatMessage{}))
	return db
}

func TestConversationPairOrdering(t *testing.T) {
	one, two := conversationPair(9, 4)
	require.Equal(t, uint(4), one)
	require.Equal(t, uint(9), two)

	one, two = conversationPair(4, 9)
	require.Equal(t, uint(4), one)
	require.Equal(t, uint(9), two)
}

func TestFindOrCreateConversationIsSingleRow(t *testing.T) {
	db := setupTestDB(t)

	first, err := findOrCreateConversation(db, 7, 2)
	require.NoError(t, err)

	// the reversed pair resolves to the same conversation
	second, err := findOrCreateConversation(db, 2, 7)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Conversation{}).Count(&count)
	require.Equal(t, int64(1), count)
	require.Equal(t, uint(2), first.UserOneID)
	require.Equal(t, uint(7), first.UserTwoID)
}
