package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/chipvax/internal/batch"
)

// Run processes chips with runner while showing the progress view on out.
// The batch runs on a background goroutine; results reach the view through
// Program.Send. Run returns once the user closes the view.
func Run(ctx context.Context, runner *batch.Runner, chips []string, title string, in io.Reader, out io.Writer) (batch.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgress(title, len(chips), cancel), tea.WithInput(in), tea.WithOutput(out))

	done := make(chan batch.Report, 1)
	go func() {
		report := runner.Run(ctx, chips, func(res batch.Result) {
			p.Send(ResultMsg(res))
		})
		done <- report
		p.Send(DoneMsg(report))
	}()

	_, err := p.Run()
	if err != nil {
		cancel()
	}
	return <-done, err
}
