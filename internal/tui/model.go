package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/storage"
	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/ui"
)

// How long the new-achievement banner stays up before it clears itself.
const popupDuration = 5 * time.Second

type boardModel struct {
	ctx     context.Context
	tracker *engine.Tracker

	width  int
	height int

	data *storage.AppData
	now  time.Time

	popup   []storage.Achievement
	lastLog string
	err     error
}

type refreshedMsg struct{}

type markedMsg struct {
	res *engine.MarkResult
	err error
}

type clearPopupMsg struct{}

func newBoardModel(ctx context.Context, tracker *engine.Tracker) boardModel {
	return boardModel{
		ctx:     ctx,
		tracker: tracker,
		data:    tracker.Data(),
		now:     tracker.Now(),
		lastLog: "Carregado.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) markCmd(status engine.Status) tea.Cmd {
	return func() tea.Msg {
		res, err := m.tracker.MarkDay(m.ctx, status)
		return markedMsg{res: res, err: err}
	}
}

func clearPopupCmd() tea.Cmd {
	return tea.Tick(popupDuration, func(time.Time) tea.Msg {
		return clearPopupMsg{}
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case markedMsg:
		if msg.err != nil {
			m.lastLog = "Falhou: " + msg.err.Error()
			return m, nil
		}
		m.data = m.tracker.Data()
		m.now = m.tracker.Now()
		m.lastLog = fmt.Sprintf("Hoje marcado como %s (+%d XP)", msg.res.Status, msg.res.XPAwarded)
		if msg.res.Message != "" {
			m.lastLog = msg.res.Message
		}
		if len(msg.res.NewAchievements) > 0 {
			m.popup = msg.res.NewAchievements
			return m, clearPopupCmd()
		}
		return m, nil
	case clearPopupMsg:
		m.popup = nil
		return m, nil
	case refreshedMsg:
		m.data = m.tracker.Data()
		m.now = m.tracker.Now()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "d":
			return m, m.markCmd(engine.StatusDone)
		case "p":
			return m, m.markCmd(engine.StatusPartial)
		case "m":
			return m, m.markCmd(engine.StatusMissed)
		case "r":
			return m, func() tea.Msg { return refreshedMsg{} }
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return ui.Bad.Render("erro: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.weekView())
	b.WriteString("\n")
	b.WriteString(m.monthView())
	if len(m.popup) > 0 {
		b.WriteString("\n")
		b.WriteString(m.popupView())
	}
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("d completo · p parcial · m perdido · r atualizar · q sair"))
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) headerView() string {
	name := "Estudante"
	if m.data.User != nil && m.data.User.Name != "" {
		name = m.data.User.Name
	}
	level := engine.LevelForXP(m.data.XP)
	next := engine.XPForNextLevel(level)
	prev := engine.XPForNextLevel(level - 1)
	if level == 1 {
		prev = 0
	}
	bar := progressBar(m.data.XP-prev, next-prev, 20)

	lines := []string{
		ui.Heading(ui.IconTarget, "ENEM Focus — "+name),
		fmt.Sprintf("%s  %s", ui.LabelValue("Nível", level), ui.Muted.Render(engine.LevelTitle(level))),
		fmt.Sprintf("XP %d/%d %s", m.data.XP, next, bar),
		ui.LabelValue("Streak", fmt.Sprintf("%s %d (recorde %d)", ui.IconFire, m.data.Streak, m.data.LongestStreak)),
	}
	if m.data.RecoveryMode {
		lines = append(lines, ui.Warn.Render(ui.IconRecovery+" modo recuperação"))
	}
	today := engine.TodayStatus(m.data, m.now)
	lines = append(lines, ui.LabelValue("Hoje", ui.StatusText(today)))
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m boardModel) weekView() string {
	lines := []string{
		ui.PanelTitle.Render(ui.IconClock + " Semana"),
		fmt.Sprintf("%.1fh estudadas", engine.WeeklyHours(m.data, m.now)),
	}
	for i, row := range engine.TopSubjects(m.data, 5) {
		lines = append(lines, fmt.Sprintf("%d. %s %.1fh", i+1, row.Subject, row.Hours))
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m boardModel) monthView() string {
	year := m.now.Year()
	month := int(m.now.Month())
	grid := engine.MonthGrid(m.data, year, month-1)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, m.now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconCalendar + " " + m.now.Format("01/2006")))
	b.WriteString("\n")
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("  ", col))
	for day := 1; day <= daysInMonth; day++ {
		b.WriteString(ui.StatusGlyph(grid[day]))
		b.WriteString(" ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m boardModel) popupView() string {
	lines := []string{ui.Gold.Render(ui.IconTrophy + " Nova conquista!")}
	for _, a := range m.popup {
		lines = append(lines, fmt.Sprintf("%s %s — %s", a.Icon, a.Name, a.Description))
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
