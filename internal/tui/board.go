package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vinicius-Bedeschi/Projeto-Enem/internal/engine"
)

// RunBoard starts the dashboard and blocks until the user quits.
func RunBoard(ctx context.Context, tracker *engine.Tracker, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(ctx, tracker), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
