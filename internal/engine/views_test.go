package engine

import (
	"testing"
	"time"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

func TestMonthGrid(t *testing.T) {
	d := storage.DefaultData()
	d.Records["2025-03-05"] = storage.DayRecord{Date: "2025-03-05", Status: "done", HoursStudied: 2}
	d.Records["2025-03-12"] = storage.DayRecord{Date: "2025-03-12", Status: "missed"}
	d.Records["2025-04-01"] = storage.DayRecord{Date: "2025-04-01", Status: "done", HoursStudied: 1}

	grid := MonthGrid(d, 2025, 2) // March, zero-based

	if len(grid) != 2 {
		t.Fatalf("grid has %d entries, want 2: %v", len(grid), grid)
	}
	if grid[5] != "done" || grid[12] != "missed" {
		t.Fatalf("grid=%v", grid)
	}
}

func TestWeeklyHours(t *testing.T) {
	d := storage.DefaultData()
	// 2025-03-05 is a Wednesday; its week starts Sunday 2025-03-02.
	now := localDate(2025, time.March, 5)
	d.Records["2025-03-03"] = storage.DayRecord{Date: "2025-03-03", Status: "done", HoursStudied: 2}
	d.Records["2025-03-04"] = storage.DayRecord{Date: "2025-03-04", Status: "partial", HoursStudied: 1.5}
	d.Records["2025-03-01"] = storage.DayRecord{Date: "2025-03-01", Status: "done", HoursStudied: 4} // previous week

	if got := WeeklyHours(d, now); got != 3.5 {
		t.Fatalf("WeeklyHours=%v, want 3.5", got)
	}
}

func TestTopSubjects(t *testing.T) {
	d := storage.DefaultData()
	wed := localDate(2025, time.March, 5)
	d.Routine = []storage.DayRoutine{{
		Day: int(wed.Weekday()),
		Blocks: []storage.StudyBlock{
			{ID: "b1", Subject: "Matemática", StartTime: "14:00", EndTime: "16:00"},
			{ID: "b2", Subject: "Redação", StartTime: "16:00", EndTime: "17:00"},
		},
	}}
	d.Records["2025-03-05"] = storage.DayRecord{Date: "2025-03-05", Status: "done", HoursStudied: 3}
	d.Records["2025-03-12"] = storage.DayRecord{Date: "2025-03-12", Status: "partial", HoursStudied: 1.5}
	d.Records["2025-03-19"] = storage.DayRecord{Date: "2025-03-19", Status: "missed"}

	ranking := TopSubjects(d, 5)

	if len(ranking) != 2 {
		t.Fatalf("ranking has %d rows, want 2: %v", len(ranking), ranking)
	}
	// done contributes full block hours, partial half, missed nothing:
	// Matemática 2 + 1 = 3h, Redação 1 + 0.5 = 1.5h.
	if ranking[0].Subject != "Matemática" || ranking[0].Hours != 3 {
		t.Fatalf("ranking[0]=%+v", ranking[0])
	}
	if ranking[1].Subject != "Redação" || ranking[1].Hours != 1.5 {
		t.Fatalf("ranking[1]=%+v", ranking[1])
	}
}

func TestTopSubjectsTieBreakCatalogOrder(t *testing.T) {
	d := storage.DefaultData()
	wed := localDate(2025, time.March, 5)
	d.Routine = []storage.DayRoutine{{
		Day: int(wed.Weekday()),
		Blocks: []storage.StudyBlock{
			{ID: "b1", Subject: "Física", StartTime: "14:00", EndTime: "15:00"},
			{ID: "b2", Subject: "Linguagens", StartTime: "15:00", EndTime: "16:00"},
		},
	}}
	d.Records["2025-03-05"] = storage.DayRecord{Date: "2025-03-05", Status: "done", HoursStudied: 2}

	ranking := TopSubjects(d, 5)
	if len(ranking) != 2 {
		t.Fatalf("ranking=%v", ranking)
	}
	// Both 1h: Linguagens comes first in the subject catalog.
	if ranking[0].Subject != "Linguagens" {
		t.Fatalf("tie broke to %q, want Linguagens", ranking[0].Subject)
	}
}

func TestTodayStatus(t *testing.T) {
	d := storage.DefaultData()
	now := localDate(2025, time.March, 5)
	if got := TodayStatus(d, now); got != "" {
		t.Fatalf("TodayStatus on empty records=%q, want empty", got)
	}
	d.Records["2025-03-05"] = storage.DayRecord{Date: "2025-03-05", Status: "partial", HoursStudied: 0.5}
	if got := TodayStatus(d, now); got != "partial" {
		t.Fatalf("TodayStatus=%q, want partial", got)
	}
}

func TestWeekStart(t *testing.T) {
	// Wednesday 2025-03-05 -> Sunday 2025-03-02 local midnight.
	start := WeekStart(localDate(2025, time.March, 5))
	if DateKey(start) != "2025-03-02" {
		t.Fatalf("WeekStart=%s, want 2025-03-02", DateKey(start))
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("WeekStart not at midnight: %v", start)
	}
	// Sunday stays put.
	if DateKey(WeekStart(localDate(2025, time.March, 2))) != "2025-03-02" {
		t.Fatalf("WeekStart(Sunday) moved")
	}
}
