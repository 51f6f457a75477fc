package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, id uint, username string) *models.User {
	t.Helper()
	user := &models.User{ID: id, Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createEvent(t *testing.T, db *gorm.DB, title string, capacity int, categoryID *uint) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:              title,
		Description:        "about " + title,
		DateStart:          time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC),
		ParticipantsNumber: capacity,
		CategoryID:         categoryID,
	}
	require.NoError(t, NewEventRepository(db).Create(context.Background(), event, nil))
	return event
}

func boolPtr(v bool) *bool { return &v }
