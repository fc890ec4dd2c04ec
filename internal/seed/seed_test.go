package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regulardicers/dicers-backend/internal/db"
	"github.com/regulardicers/dicers-backend/internal/mock"
	"github.com/regulardicers/dicers-backend/internal/model"
	"github.com/regulardicers/dicers-backend/internal/repository"
)

func TestPopulate(t *testing.T) {
	gdb, err := db.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))

	s := New(mock.NewSeeded(2024), repository.NewGormRepositories(gdb), nil)
	rep, err := s.Populate(context.Background(), 25)
	require.NoError(t, err)

	assert.Equal(t, 25, rep.Users)
	assert.Equal(t, 25, rep.Chats)
	assert.Equal(t, 25, rep.Events)
	assert.Equal(t, 25, rep.Messages)
	assert.LessOrEqual(t, rep.UserRolls, rep.EventUsers)

	var rolls, attending int64
	require.NoError(t, gdb.Model(&model.UserRoll{}).Count(&rolls).Error)
	require.NoError(t, gdb.Model(&model.EventUser{}).Where("attends = ?", true).Count(&attending).Error)
	assert.Equal(t, attending, rolls)

	var mutedAdmins int64
	require.NoError(t, gdb.Model(&model.ChatUser{}).Where("admin = ? AND muted = ?", true, true).Count(&mutedAdmins).Error)
	assert.Zero(t, mutedAdmins)

	var orphans int64
	require.NoError(t, gdb.Model(&model.Message{}).Where("user_id IS NULL").Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestPopulate_ZeroRoundsWritesNothing(t *testing.T) {
	gdb, err := db.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))

	rep, err := New(mock.NewSeeded(1), repository.NewGormRepositories(gdb), nil).Populate(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, Report{}, rep)
}

func TestPopulate_CancelledContext(t *testing.T) {
	gdb, err := db.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(gdb))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(mock.NewSeeded(1), repository.NewGormRepositories(gdb), nil).Populate(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
