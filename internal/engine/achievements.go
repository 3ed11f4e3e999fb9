package engine

import (
	"strconv"
	"time"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
)

// Catalog is the static ordered achievement list. Unlock order among newly
// qualifying achievements follows this order.
var Catalog = []storage.Achievement{
	{ID: "recovery_1", Name: "Volta por Cima", Description: "Usou o modo recuperação e voltou", Icon: "🔄"},
	{ID: "streak_1", Name: "Começou 🔥", Description: "Primeiro dia seguido", Icon: "🌱"},
	{ID: "streak_3", Name: "3 Dias de Fogo", Description: "3 dias seguidos de estudos", Icon: "🔥"},
	{ID: "streak_5", Name: "Pegando Ritmo", Description: "5 dias seguidos de estudos", Icon: "⚡"},
	{ID: "streak_7", Name: "Uma Semana Incrível", Description: "7 dias seguidos de estudos", Icon: "🚀"},
	{ID: "streak_14", Name: "Consistência Real", Description: "14 dias seguidos de estudos", Icon: "💎"},
	{ID: "streak_30", Name: "Foco Total no ENEM", Description: "30 dias seguidos de estudos", Icon: "🏆"},
	{ID: "streak_60", Name: "Inabalável", Description: "60 dias seguidos de estudos", Icon: "🔥"},
	{ID: "total_5", Name: "Primeiros Passos", Description: "5 dias estudados no total", Icon: "👣"},
	{ID: "total_10", Name: "10 Dias Estudando", Description: "10 dias no total", Icon: "📚"},
	{ID: "total_25", Name: "Hábito Criado", Description: "25 dias estudados", Icon: "🧠"},
	{ID: "total_50", Name: "50 Dias de Dedicação", Description: "50 dias estudados", Icon: "🌟"},
	{ID: "total_100", Name: "Centenário", Description: "100 dias estudando", Icon: "💯"},
	{ID: "level_5", Name: "Ritmo Consistente", Description: "Alcançou o nível 5", Icon: "⭐"},
	{ID: "level_10", Name: "Estudante de Elite", Description: "Alcançou o nível 10", Icon: "🎓"},
	{ID: "level_20", Name: "Elite do ENEM", Description: "Alcançou o nível 20", Icon: "🏅"},
	{ID: "level_25", Name: "Disciplina Absoluta", Description: "Alcançou o nível 25", Icon: "🛡️"},
	{ID: "level_30", Name: "Candidato Forte", Description: "Alcançou o nível 30", Icon: "💪"},
	{ID: "level_40", Name: "Mentalidade de Aprovado", Description: "Alcançou o nível 40", Icon: "🧠"},
	{ID: "level_50", Name: "Lenda do ENEM", Description: "Alcançou o nível 50", Icon: "👑"},
}

var streakThresholds = []int{1, 3, 5, 7, 14, 30, 60}
var totalThresholds = []int{5, 10, 25, 50, 100}
var levelThresholds = []int{5, 10, 20, 25, 30, 40, 50}

// qualifies reports whether the aggregate currently satisfies the rule behind
// the given catalog id.
func qualifies(data *storage.AppData, id string) bool {
	for _, n := range streakThresholds {
		if id == streakID(n) {
			return data.Streak >= n
		}
	}
	for _, n := range totalThresholds {
		if id == totalID(n) {
			return data.TotalDays >= n
		}
	}
	for _, n := range levelThresholds {
		if id == levelID(n) {
			return data.Level >= n
		}
	}
	if id == "recovery_1" {
		return data.RecoveryMode
	}
	return false
}

func streakID(n int) string { return "streak_" + strconv.Itoa(n) }
func totalID(n int) string  { return "total_" + strconv.Itoa(n) }
func levelID(n int) string  { return "level_" + strconv.Itoa(n) }

// CheckNewAchievements returns the catalog entries that currently qualify but
// are not yet unlocked, stamped with now. Idempotent: with an unchanged
// unlocked set it returns nothing on a second call.
func CheckNewAchievements(data *storage.AppData, now time.Time) []storage.Achievement {
	var unlocked []storage.Achievement
	stamp := now.UTC().Format(time.RFC3339)

	for _, a := range Catalog {
		if data.HasAchievement(a.ID) {
			continue
		}
		if !qualifies(data, a.ID) {
			continue
		}
		a.UnlockedAt = stamp
		unlocked = append(unlocked, a)
	}
	return unlocked
}
