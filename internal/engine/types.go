package engine

import (
	"fmt"
	"strings"
)

// Status is the outcome a student reports for a day.
type Status string

const (
	StatusDone    Status = "done"
	StatusPartial Status = "partial"
	StatusMissed  Status = "missed"
	// StatusRecovery only ever appears in stored records written by older
	// versions; MarkDay never produces it.
	StatusRecovery Status = "recovery"
)

// IsValid reports whether s is one of the markable statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusDone, StatusPartial, StatusMissed:
		return true
	default:
		return false
	}
}

// ParseStatus parses user input into a markable Status.
func ParseStatus(input string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status %q (want done|partial|missed)", input)
	}
	return s, nil
}

// Subjects is the fixed ENEM subject catalog. Order matters: it is the
// tie-break order for the subject ranking and drives color assignment.
var Subjects = []string{
	"Matemática", "Linguagens", "Simulado", "Exercícios",
	"Redação", "Física", "Química", "Biologia", "História", "Geografia",
	"Literatura", "Português", "Filosofia", "Sociologia", "Anki",
}

var subjectColors = []string{
	"#6c63ff", "#ff6b6b", "#4ecdc4", "#45b7d1",
	"#f7dc6f", "#a29bfe", "#fd79a8", "#55efc4",
}

// SubjectIndex returns the catalog position of a subject, or -1.
func SubjectIndex(subject string) int {
	for i, s := range Subjects {
		if s == subject {
			return i
		}
	}
	return -1
}

// SubjectColor returns the wheel color for the subject at catalog index i.
func SubjectColor(i int) string {
	if i < 0 {
		i = 0
	}
	return subjectColors[i%len(subjectColors)]
}

// DayNames are the short weekday labels, Sunday first.
var DayNames = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// DayNamesFull are the full weekday labels, Sunday first.
var DayNamesFull = []string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}
