package engine

import (
	"time"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

// XP awarded on the first qualifying marking of a day.
const (
	XPDone    = 50
	XPPartial = 20
)

// Hours credited for a full day when no routine exists for its weekday.
const fallbackDayHours = 1.0

// normalizeOnLoad applies streak expiry before any user action. If the last
// active date is neither today nor yesterday:
//   - a gap over one day resets the streak, unless recovery mode is armed;
//   - a gap over two days resets the streak and disarms recovery regardless
//     (recovery never protects more than a two-day gap).
//
// A two-day gap with recovery armed intentionally falls through both
// branches and leaves the streak alone.
func normalizeOnLoad(d *storage.AppData, now time.Time) {
	if d.LastActiveDate == "" {
		return
	}
	today := DateKey(now)
	yesterday := DateKey(now.AddDate(0, 0, -1))
	if d.LastActiveDate == today || d.LastActiveDate == yesterday {
		return
	}

	diffDays, err := daysBetween(d.LastActiveDate, now)
	if err != nil {
		// Unparseable last-active date: leave the aggregate alone.
		return
	}
	if diffDays > 1 && !d.RecoveryMode {
		d.Streak = 0
	}
	if diffDays > 2 {
		d.Streak = 0
		d.RecoveryMode = false
	}
}

// routineHours sums the planned block durations for now's weekday, falling
// back to the nominal full-day value when no routine exists.
func routineHours(d *storage.AppData, now time.Time) float64 {
	routine := d.RoutineFor(int(now.Weekday()))
	if routine == nil {
		return fallbackDayHours
	}
	total := 0.0
	for _, b := range routine.Blocks {
		total += CalcDurationHours(b.StartTime, b.EndTime)
	}
	return total
}

// markDay is the single write path for user-reported progress. It always
// targets now's date; side effects (streak, XP, totals) apply only on the
// first qualifying marking of the day, so re-marking updates the record but
// never double-awards.
func markDay(d *storage.AppData, now time.Time, status Status) *MarkResult {
	today := DateKey(now)
	existing, hadRecord := d.Records[today]
	levelBefore := LevelForXP(d.XP)

	hours := routineHours(d, now)
	var recordedHours float64
	switch status {
	case StatusDone:
		recordedHours = hours
	case StatusPartial:
		recordedHours = hours * 0.5
	default:
		recordedHours = 0
	}

	d.Records[today] = storage.DayRecord{
		Date:         today,
		Status:       string(status),
		HoursStudied: recordedHours,
	}
	d.LastActiveDate = today

	firstMarking := !hadRecord || existing.Status == string(StatusMissed)
	streakSaved := false
	xpAwarded := 0

	switch status {
	case StatusDone, StatusPartial:
		if firstMarking {
			if status == StatusDone {
				if d.RecoveryMode {
					streakSaved = true
					d.RecoveryMode = false
				} else {
					d.Streak++
				}
				if d.Streak > d.LongestStreak {
					d.LongestStreak = d.Streak
				}
				d.TotalDays++
				xpAwarded = XPDone
			} else {
				d.TotalDays++
				xpAwarded = XPPartial
			}
			d.XP += xpAwarded
		}
	case StatusMissed:
		if !hadRecord {
			d.RecoveryMode = true
		}
	}

	d.Level = LevelForXP(d.XP)

	unlocked := CheckNewAchievements(d, now)
	d.Achievements = append(d.Achievements, unlocked...)

	return &MarkResult{
		Date:            today,
		Status:          status,
		HoursStudied:    recordedHours,
		XPAwarded:       xpAwarded,
		Streak:          d.Streak,
		StreakSaved:     streakSaved,
		LevelBefore:     levelBefore,
		LevelAfter:      d.Level,
		LevelUp:         d.Level > levelBefore,
		NewAchievements: unlocked,
	}
}

// MarkResult reports what a MarkDay call changed.
type MarkResult struct {
	Date         string
	Status       Status
	HoursStudied float64
	XPAwarded    int

	Streak      int
	StreakSaved bool // streak preserved by spending the recovery grace day

	LevelBefore int
	LevelAfter  int
	LevelUp     bool

	NewAchievements []storage.Achievement
	Message         string
}
