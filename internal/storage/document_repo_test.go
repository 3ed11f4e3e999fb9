package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DocumentRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDocumentRepo(db, nil)
}

func TestLoadMissingDocumentReturnsDefaults(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, data.Streak)
	assert.Equal(t, 1, data.Level)
	assert.NotNil(t, data.Records)
	assert.NotNil(t, data.Routine)
	assert.NotNil(t, data.Achievements)
	require.NotNil(t, data.User)
	assert.Equal(t, "Estudante", data.User.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	data := DefaultData()
	data.Streak = 7
	data.LongestStreak = 9
	data.TotalDays = 30
	data.XP = 1250
	data.Level = 13
	data.LastActiveDate = "2025-03-05"
	data.RecoveryMode = true
	data.User = &Profile{Name: "Ana", Avatar: "data:image/png;base64,aGk="}
	data.Routine = []DayRoutine{{Day: 3, Blocks: []StudyBlock{
		{ID: "b1", Subject: "Matemática", StartTime: "14:00", EndTime: "16:00", Color: "#6c63ff"},
	}}}
	data.Records["2025-03-05"] = DayRecord{Date: "2025-03-05", Status: "done", HoursStudied: 2}
	data.Achievements = []Achievement{{ID: "streak_1", Name: "Começou 🔥", Description: "Primeiro dia seguido", Icon: "🌱", UnlockedAt: "2025-03-05T12:00:00Z"}}

	require.NoError(t, repo.Save(ctx, data))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestLoadCorruptDocumentFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.db.ExecContext(ctx, `INSERT INTO app_state (key, doc) VALUES (?, ?)`, StateKey, `{not json`)
	require.NoError(t, err)

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultData(), data)
}

func TestMigrateDocumentFillsMissingFields(t *testing.T) {
	// Older schema: no recoveryMode, no longestStreak, partial user.
	raw := []byte(`{"streak":4,"xp":300,"records":{"2025-01-01":{"date":"2025-01-01","status":"done","hoursStudied":2}},"user":{"name":"Léo"}}`)

	data, err := migrateDocument(raw)
	require.NoError(t, err)

	assert.Equal(t, 4, data.Streak)
	assert.Equal(t, 300, data.XP)
	assert.Equal(t, 0, data.LongestStreak)
	assert.False(t, data.RecoveryMode)
	assert.Equal(t, 1, data.Level) // stored doc carried no level; default floor applies
	assert.NotNil(t, data.Routine)
	assert.NotNil(t, data.Achievements)
	assert.Len(t, data.Records, 1)
	require.NotNil(t, data.User)
	assert.Equal(t, "Léo", data.User.Name)
	assert.Empty(t, data.User.Avatar)
}
