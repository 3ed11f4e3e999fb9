package engine

import (
	"sort"
	"time"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

// Derived views: read-only projections over the record history. None of these
// mutate the aggregate.

// MonthGrid maps day-of-month to status for every record falling in the given
// year and zero-based month. Days without a record are absent.
func MonthGrid(d *storage.AppData, year, month0 int) map[int]string {
	grid := map[int]string{}
	for _, r := range d.Records {
		day, ok := dayInMonth(r.Date, year, month0)
		if !ok {
			continue
		}
		grid[day] = r.Status
	}
	return grid
}

func dayInMonth(dateKey string, year, month0 int) (int, bool) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return 0, false
	}
	if t.Year() != year || int(t.Month())-1 != month0 {
		return 0, false
	}
	return t.Day(), true
}

// WeeklyHours sums recorded hours from the current week's Sunday midnight
// through now.
func WeeklyHours(d *storage.AppData, now time.Time) float64 {
	start := WeekStart(now)
	total := 0.0
	for _, r := range d.Records {
		t, err := ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		if t.Before(start) || t.After(now) {
			continue
		}
		total += r.HoursStudied
	}
	return total
}

// SubjectHours is one row of the subject ranking.
type SubjectHours struct {
	Subject string
	Hours   float64
}

// TopSubjects ranks subjects by hours over all non-missed records: each
// record contributes its weekday routine's block durations, halved for
// partial days. Ties keep subject-catalog order. At most n rows are returned.
func TopSubjects(d *storage.AppData, n int) []SubjectHours {
	totals := map[string]float64{}
	for _, r := range d.Records {
		if r.Status == string(StatusMissed) {
			continue
		}
		t, err := ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		routine := d.RoutineFor(int(t.Weekday()))
		if routine == nil {
			continue
		}
		for _, b := range routine.Blocks {
			h := CalcDurationHours(b.StartTime, b.EndTime)
			if r.Status == string(StatusPartial) {
				h *= 0.5
			}
			totals[b.Subject] += h
		}
	}

	ranking := make([]SubjectHours, 0, len(totals))
	for subject, hours := range totals {
		ranking = append(ranking, SubjectHours{Subject: subject, Hours: hours})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Hours != ranking[j].Hours {
			return ranking[i].Hours > ranking[j].Hours
		}
		return SubjectIndex(ranking[i].Subject) < SubjectIndex(ranking[j].Subject)
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// TodayStatus returns today's recorded status, or "" when nothing has been
// marked yet.
func TodayStatus(d *storage.AppData, now time.Time) string {
	if r, ok := d.Records[DateKey(now)]; ok {
		return r.Status
	}
	return ""
}
