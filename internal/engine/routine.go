package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

// AddBlockInput describes a new routine block.
type AddBlockInput struct {
	Day       int // 0=Sunday … 6=Saturday
	Subject   string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// AddBlock appends a study block to the weekday's routine, creating the
// routine entry if the weekday has none yet. Routine edits never touch
// streak, XP or achievements.
func (t *Tracker) AddBlock(ctx context.Context, in AddBlockInput) (*storage.StudyBlock, error) {
	if in.Day < 0 || in.Day > 6 {
		return nil, fmt.Errorf("invalid weekday %d (want 0-6)", in.Day)
	}
	idx := SubjectIndex(in.Subject)
	if idx < 0 {
		return nil, fmt.Errorf("unknown subject %q", in.Subject)
	}
	if !validClock(in.StartTime) || !validClock(in.EndTime) {
		return nil, fmt.Errorf("invalid time range %q-%q (want HH:MM)", in.StartTime, in.EndTime)
	}

	block := storage.StudyBlock{
		ID:        uuid.NewString(),
		Subject:   in.Subject,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Color:     SubjectColor(idx),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	routine := t.data.RoutineFor(in.Day)
	if routine == nil {
		t.data.Routine = append(t.data.Routine, storage.DayRoutine{Day: in.Day})
		routine = &t.data.Routine[len(t.data.Routine)-1]
	}
	routine.Blocks = append(routine.Blocks, block)

	// Keep blocks in start-time order inside the day.
	sort.SliceStable(routine.Blocks, func(i, j int) bool {
		return routine.Blocks[i].StartTime < routine.Blocks[j].StartTime
	})

	if err := t.repo.Save(ctx, t.data); err != nil {
		return nil, err
	}
	return &block, nil
}

// RemoveBlock deletes a block by id, pruning the weekday entry when its last
// block is removed.
func (t *Tracker) RemoveBlock(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for ri := range t.data.Routine {
		blocks := t.data.Routine[ri].Blocks
		for bi := range blocks {
			if blocks[bi].ID != id {
				continue
			}
			t.data.Routine[ri].Blocks = append(blocks[:bi], blocks[bi+1:]...)
			if len(t.data.Routine[ri].Blocks) == 0 {
				t.data.Routine = append(t.data.Routine[:ri], t.data.Routine[ri+1:]...)
			}
			return t.repo.Save(ctx, t.data)
		}
	}
	return fmt.Errorf("block %q not found", id)
}

func validClock(s string) bool {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return false
	}
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}
