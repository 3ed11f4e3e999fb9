package engine

// Every level is a flat 100 XP wide.
const xpPerLevel = 100

// LevelForXP returns the level for a cumulative XP total. Level is always
// derived from XP, never stored independently.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}

// XPForNextLevel returns the XP threshold at which the given level is left
// behind. Used as the denominator of progress bars.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * xpPerLevel
}

type levelTitle struct {
	min   int
	title string
}

// Highest qualifying threshold wins; the table is kept sorted descending.
var levelTitles = []levelTitle{
	{50, "Lenda do ENEM 🏆"},
	{45, "Nível Olímpico 🥇"},
	{40, "Mentalidade de Aprovado 🧠"},
	{35, "Pronto para a Prova 📝"},
	{30, "Candidato Forte 💪"},
	{25, "Disciplina Absoluta 🛡️"},
	{22, "Máquina de Estudo ⚙️"},
	{20, "Elite do ENEM 🔥"},
	{18, "Consistência Inabalável 💎"},
	{15, "Mestre dos Estudos 🎓"},
	{12, "Rotina de Ferro ⏱️"},
	{10, "Foco Total no ENEM 🎯"},
	{7, "Estudante Focado 📘"},
	{5, "Ritmo Consistente ⭐"},
	{3, "Construindo o Hábito 🌱"},
	{2, "Dando os Primeiros Passos 👣"},
}

// LevelTitle returns the presentational title for a level.
func LevelTitle(level int) string {
	for _, lt := range levelTitles {
		if level >= lt.min {
			return lt.title
		}
	}
	return "Começando a Jornada ✨"
}
