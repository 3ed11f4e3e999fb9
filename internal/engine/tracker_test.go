package engine

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

func newTestRepo(t *testing.T) *storage.DocumentRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewDocumentRepo(db, nil)
}

func newTestTracker(t *testing.T, repo *storage.DocumentRepo, now time.Time) *Tracker {
	t.Helper()
	tracker, err := NewTracker(context.Background(), repo,
		WithClock(FixedClock{T: now}),
		WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tracker
}

func TestTrackerMarkDayPersists(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := localDate(2025, time.March, 5)

	tracker := newTestTracker(t, repo, now)
	res, err := tracker.MarkDay(ctx, StatusDone)
	if err != nil {
		t.Fatalf("MarkDay: %v", err)
	}
	if res.XPAwarded != XPDone || res.Streak != 1 {
		t.Fatalf("res=%+v", res)
	}
	if res.Message == "" {
		t.Fatalf("expected a motivational message for done")
	}

	// A second session over the same database sees the committed state.
	reload := newTestTracker(t, repo, now)
	data := reload.Data()
	if data.XP != XPDone || data.Streak != 1 || data.TotalDays != 1 {
		t.Fatalf("reloaded data=%+v", data)
	}
	if TodayStatus(data, now) != "done" {
		t.Fatalf("today status=%q", TodayStatus(data, now))
	}
}

func TestTrackerNormalizesOnLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	tracker := newTestTracker(t, repo, localDate(2025, time.March, 5))
	if _, err := tracker.MarkDay(ctx, StatusDone); err != nil {
		t.Fatalf("MarkDay: %v", err)
	}

	// Come back four days later: the streak has expired.
	later := newTestTracker(t, repo, localDate(2025, time.March, 9))
	if later.Data().Streak != 0 {
		t.Fatalf("streak=%d, want 0 after a 4-day gap", later.Data().Streak)
	}

	// The reset is itself persisted.
	again := newTestTracker(t, repo, localDate(2025, time.March, 9))
	if again.Data().Streak != 0 {
		t.Fatalf("normalized streak was not persisted")
	}
}

func TestTrackerRejectsInvalidStatus(t *testing.T) {
	repo := newTestRepo(t)
	tracker := newTestTracker(t, repo, localDate(2025, time.March, 5))

	if _, err := tracker.MarkDay(context.Background(), Status("recovery")); err == nil {
		t.Fatalf("expected error for unmarkable status")
	}
}

func TestRoutineAddRemove(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	tracker := newTestTracker(t, repo, localDate(2025, time.March, 5))

	block, err := tracker.AddBlock(ctx, AddBlockInput{Day: 3, Subject: "Matemática", StartTime: "14:00", EndTime: "16:00"})
	if err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	if block.ID == "" || block.Color == "" {
		t.Fatalf("block missing id/color: %+v", block)
	}

	if _, err := tracker.AddBlock(ctx, AddBlockInput{Day: 3, Subject: "Astrologia", StartTime: "14:00", EndTime: "16:00"}); err == nil {
		t.Fatalf("expected error for unknown subject")
	}
	if _, err := tracker.AddBlock(ctx, AddBlockInput{Day: 9, Subject: "Matemática", StartTime: "14:00", EndTime: "16:00"}); err == nil {
		t.Fatalf("expected error for invalid weekday")
	}

	// Routine edits feed hour calculations but never touch progress.
	data := tracker.Data()
	if data.XP != 0 || data.Streak != 0 || len(data.Achievements) != 0 {
		t.Fatalf("routine edit mutated progress: %+v", data)
	}

	if err := tracker.RemoveBlock(ctx, block.ID); err != nil {
		t.Fatalf("RemoveBlock: %v", err)
	}
	// Last block removed: the weekday entry is pruned.
	if tracker.Data().RoutineFor(3) != nil {
		t.Fatalf("expected weekday 3 routine to be pruned")
	}
	if err := tracker.RemoveBlock(ctx, block.ID); err == nil {
		t.Fatalf("expected error removing a missing block")
	}
}

func TestMarkUsesRoutineHours(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := localDate(2025, time.March, 5) // Wednesday
	tracker := newTestTracker(t, repo, now)

	if _, err := tracker.AddBlock(ctx, AddBlockInput{Day: int(now.Weekday()), Subject: "Física", StartTime: "08:00", EndTime: "10:30"}); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	res, err := tracker.MarkDay(ctx, StatusDone)
	if err != nil {
		t.Fatalf("MarkDay: %v", err)
	}
	if res.HoursStudied != 2.5 {
		t.Fatalf("hoursStudied=%v, want 2.5", res.HoursStudied)
	}
}

func TestDeterministicMessageSelection(t *testing.T) {
	ctx := context.Background()

	pick := func() string {
		repo := newTestRepo(t)
		tracker := newTestTracker(t, repo, localDate(2025, time.March, 5))
		res, err := tracker.MarkDay(ctx, StatusDone)
		if err != nil {
			t.Fatalf("MarkDay: %v", err)
		}
		return res.Message
	}

	if pick() != pick() {
		t.Fatalf("same seed must pick the same message")
	}
}

func TestSetProfile(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	tracker := newTestTracker(t, repo, localDate(2025, time.March, 5))

	if err := tracker.SetProfile(ctx, "Vinícius", ""); err != nil {
		t.Fatalf("SetProfile: %v", err)
	}

	reload := newTestTracker(t, repo, localDate(2025, time.March, 5))
	if reload.Data().User == nil || reload.Data().User.Name != "Vinícius" {
		t.Fatalf("profile not persisted: %+v", reload.Data().User)
	}
}
