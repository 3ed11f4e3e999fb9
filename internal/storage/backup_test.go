package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestRepo(t)

	data := DefaultData()
	data.Streak = 3
	data.TotalDays = 12
	data.XP = 640
	data.Level = 7
	data.LastActiveDate = "2025-03-05"
	data.Routine = []DayRoutine{{Day: 1, Blocks: []StudyBlock{
		{ID: "b1", Subject: "Redação", StartTime: "09:00", EndTime: "11:00", Color: "#f7dc6f"},
	}}}
	data.Records["2025-03-04"] = DayRecord{Date: "2025-03-04", Status: "partial", HoursStudied: 1}
	data.Records["2025-03-05"] = DayRecord{Date: "2025-03-05", Status: "done", HoursStudied: 2}
	data.Achievements = []Achievement{
		{ID: "streak_1", Name: "Começou 🔥", Description: "Primeiro dia seguido", Icon: "🌱", UnlockedAt: "2025-03-03T10:00:00Z"},
		{ID: "streak_3", Name: "3 Dias de Fogo", Description: "3 dias seguidos de estudos", Icon: "🔥", UnlockedAt: "2025-03-05T10:00:00Z"},
	}
	require.NoError(t, src.Save(ctx, data))

	var buf bytes.Buffer
	now := time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC)
	require.NoError(t, src.Export(ctx, &buf, now))

	var env BackupFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, BackupVersion, env.Version)
	assert.Equal(t, "2025-03-05T18:00:00Z", env.ExportedAt)

	// Importing into a fresh instance reproduces the aggregate exactly,
	// including records, routine and achievement order.
	dst := newTestRepo(t)
	require.NoError(t, dst.Import(ctx, bytes.NewReader(buf.Bytes())))

	loaded, err := dst.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestBackupFileName(t *testing.T) {
	now := time.Date(2025, 3, 5, 18, 0, 0, 0, time.Local)
	assert.Equal(t, "enem-focus-backup-2025-03-05.json", BackupFileName(now))
}

func TestImportRejectsInvalidEnvelopes(t *testing.T) {
	ctx := context.Background()

	cases := map[string]string{
		"not json":        `{oops`,
		"missing version": `{"exportedAt":"2025-03-05T18:00:00Z","data":{"streak":1}}`,
		"string version":  `{"version":"1","data":{"streak":1}}`,
		"missing data":    `{"version":1,"exportedAt":"2025-03-05T18:00:00Z"}`,
		"null data":       `{"version":1,"data":null}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo(t)

			seeded := DefaultData()
			seeded.Streak = 5
			require.NoError(t, repo.Save(ctx, seeded))

			err := repo.Import(ctx, strings.NewReader(raw))
			require.ErrorIs(t, err, ErrInvalidBackup)

			// Failed imports must not touch the stored document.
			loaded, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 5, loaded.Streak)
		})
	}
}
