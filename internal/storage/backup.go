package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// BackupVersion is the envelope version written by Export.
const BackupVersion = 1

// ErrInvalidBackup is returned when an imported file is not a valid backup
// envelope (unparseable, or missing version/data).
var ErrInvalidBackup = errors.New("invalid backup file")

// BackupFile is the on-disk backup envelope.
type BackupFile struct {
	Version    int      `json:"version"`
	ExportedAt string   `json:"exportedAt"`
	Data       *AppData `json:"data"`
}

// BackupFileName returns the suggested file name for a backup taken now.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("enem-focus-backup-%s.json", now.Format("2006-01-02"))
}

// Export serializes the current stored document into the backup envelope.
func (r *DocumentRepo) Export(ctx context.Context, w io.Writer, now time.Time) error {
	data, err := r.Load(ctx)
	if err != nil {
		return err
	}

	backup := BackupFile{
		Version:    BackupVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Data:       data,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("backup encode: %w", err)
	}
	return nil
}

// Import parses a backup envelope and overwrites the stored document with its
// data wholesale. The stored document is untouched on any validation failure.
func (r *DocumentRepo) Import(ctx context.Context, f io.Reader) error {
	raw, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("backup read: %w", err)
	}

	// Version must be present and numeric, data must be present; anything
	// else is rejected without touching the stored document.
	var env struct {
		Version *float64        `json:"version"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if env.Version == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrInvalidBackup
	}

	data, err := migrateDocument(env.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return r.Save(ctx, data)
}
