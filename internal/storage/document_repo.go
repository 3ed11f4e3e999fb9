package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// StateKey is the fixed key the aggregate document is stored under. There is
// exactly one installation per database, so exactly one row.
const StateKey = "enem_focus_data"

// DocumentRepo persists the whole AppData aggregate as one JSON document.
type DocumentRepo struct {
	db  *sql.DB
	log *zap.Logger
}

func NewDocumentRepo(db *sql.DB, log *zap.Logger) *DocumentRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentRepo{db: db, log: log}
}

// Load reads the stored document and overlays it on defaults. A missing or
// corrupt document silently falls back to a fresh aggregate; storage-level
// failures are still returned.
func (r *DocumentRepo) Load(ctx context.Context) (*AppData, error) {
	row := r.db.QueryRowContext(ctx, `SELECT doc FROM app_state WHERE key = ?`, StateKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return DefaultData(), nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	data, err := migrateDocument([]byte(raw))
	if err != nil {
		r.log.Debug("stored document unreadable, using defaults", zap.Error(err))
		return DefaultData(), nil
	}
	return data, nil
}

// Save overwrites the stored document with the given aggregate.
func (r *DocumentRepo) Save(ctx context.Context, data *AppData) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("state marshal: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, StateKey, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// migrateDocument unmarshals a stored (possibly older-schema) document over
// current defaults: fields the document carries win, fields it lacks keep
// their default, and the user sub-object is merged field by field.
func migrateDocument(raw []byte) (*AppData, error) {
	var doc AppData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("state unmarshal: %w", err)
	}

	out := DefaultData()
	out.Streak = doc.Streak
	out.LongestStreak = doc.LongestStreak
	out.TotalDays = doc.TotalDays
	out.Level = doc.Level
	out.XP = doc.XP
	out.LastActiveDate = doc.LastActiveDate
	out.RecoveryMode = doc.RecoveryMode

	if doc.Routine != nil {
		out.Routine = doc.Routine
	}
	if doc.Records != nil {
		out.Records = doc.Records
	}
	if doc.Achievements != nil {
		out.Achievements = doc.Achievements
	}
	if doc.User != nil {
		if doc.User.Name != "" {
			out.User.Name = doc.User.Name
		}
		if doc.User.Avatar != "" {
			out.User.Avatar = doc.User.Avatar
		}
	}

	if out.Level < 1 {
		out.Level = 1
	}
	return out, nil
}
