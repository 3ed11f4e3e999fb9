package storage

// Profile is the presentational user profile. The avatar, when set, is an
// image encoded as a data URI so the whole aggregate stays self-contained.
type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// StudyBlock is one scheduled slot inside a weekday routine.
type StudyBlock struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "16:00"
	Color     string `json:"color"`
}

// DayRoutine holds the blocks planned for one weekday (0=Sunday … 6=Saturday).
// A weekday appears at most once in AppData.Routine.
type DayRoutine struct {
	Day    int          `json:"day"`
	Blocks []StudyBlock `json:"blocks"`
}

// DayRecord is the outcome reported for one calendar day. At most one record
// exists per date key; re-marking the same day overwrites in place.
type DayRecord struct {
	Date         string  `json:"date"` // "YYYY-MM-DD"
	Status       string  `json:"status"`
	HoursStudied float64 `json:"hoursStudied"`
}

// Achievement is a catalog entry; UnlockedAt is set once it has been earned.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}

// AppData is the single persisted aggregate. It is owned by engine.Tracker;
// nothing else mutates it.
type AppData struct {
	User *Profile `json:"user,omitempty"`

	Streak        int `json:"streak"`
	LongestStreak int `json:"longestStreak"`
	TotalDays     int `json:"totalDays"`
	Level         int `json:"level"`
	XP            int `json:"xp"`

	Routine      []DayRoutine         `json:"routine"`
	Records      map[string]DayRecord `json:"records"`
	Achievements []Achievement        `json:"achievements"`

	LastActiveDate string `json:"lastActiveDate"`
	RecoveryMode   bool   `json:"recoveryMode"`
}

// DefaultData returns a fresh aggregate with zeroed progress.
func DefaultData() *AppData {
	return &AppData{
		User:         &Profile{Name: "Estudante"},
		Level:        1,
		Routine:      []DayRoutine{},
		Records:      map[string]DayRecord{},
		Achievements: []Achievement{},
	}
}

// RoutineFor returns the routine entry for the given weekday, or nil.
func (d *AppData) RoutineFor(day int) *DayRoutine {
	for i := range d.Routine {
		if d.Routine[i].Day == day {
			return &d.Routine[i]
		}
	}
	return nil
}

// HasAchievement reports whether the given achievement id is already unlocked.
func (d *AppData) HasAchievement(id string) bool {
	for i := range d.Achievements {
		if d.Achievements[i].ID == id {
			return true
		}
	}
	return false
}
