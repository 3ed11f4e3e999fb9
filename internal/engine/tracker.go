package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

// Tracker owns the AppData aggregate. Every mutation runs read-modify-persist
// under one mutex, so last-write-wins holds even if commands ever run
// concurrently.
type Tracker struct {
	mu    sync.Mutex
	repo  *storage.DocumentRepo
	data  *storage.AppData
	clock Clock
	rng   *rand.Rand
	log   *zap.Logger
}

// Option customizes a Tracker; defaults cover normal CLI use.
type Option func(*Tracker)

// WithClock injects a fixed time source (tests).
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithRand injects the random source used for message selection.
func WithRand(r *rand.Rand) Option {
	return func(t *Tracker) { t.rng = r }
}

// WithLogger attaches a logger; the default is a nop.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// NewTracker loads the stored aggregate and applies the load-time streak
// normalization before any user action can run.
func NewTracker(ctx context.Context, repo *storage.DocumentRepo, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		repo:  repo,
		clock: SystemClock(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	data, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.data = data

	now := t.clock.Now()
	before := data.Streak
	normalizeOnLoad(data, now)
	if data.Streak != before {
		t.log.Debug("streak expired on load",
			zap.Int("streak_before", before),
			zap.Bool("recovery_mode", data.RecoveryMode))
	}
	if err := repo.Save(ctx, data); err != nil {
		return nil, err
	}
	return t, nil
}

// Data returns the live aggregate for read-only use (derived views, display).
// Callers must not mutate it.
func (t *Tracker) Data() *storage.AppData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// Now returns the tracker's current clock reading.
func (t *Tracker) Now() time.Time { return t.clock.Now() }

// MarkDay records today's status and applies streak/XP/achievement side
// effects, persisting the result before returning it.
func (t *Tracker) MarkDay(ctx context.Context, status Status) (*MarkResult, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	res := markDay(t.data, now, status)
	res.Message = pickMessage(t.rng, status, res.StreakSaved)

	if err := t.repo.Save(ctx, t.data); err != nil {
		return nil, err
	}

	t.log.Debug("marked day",
		zap.String("date", res.Date),
		zap.String("status", string(status)),
		zap.Int("xp_awarded", res.XPAwarded),
		zap.Int("streak", res.Streak),
		zap.Int("new_achievements", len(res.NewAchievements)))
	return res, nil
}

// SetProfile updates the display name and/or avatar data URI. Empty values
// leave the current field untouched.
func (t *Tracker) SetProfile(ctx context.Context, name, avatar string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data.User == nil {
		t.data.User = &storage.Profile{}
	}
	if name != "" {
		t.data.User.Name = name
	}
	if avatar != "" {
		t.data.User.Avatar = avatar
	}
	return t.repo.Save(ctx, t.data)
}
