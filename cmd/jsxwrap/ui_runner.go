package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsxwrap/internal/driver"
	"jsxwrap/internal/source"
	"jsxwrap/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.Result
	err     error
}

// runCheckDirWithUI runs a directory check behind the progress TUI. The
// driver feeds events into a channel the model drains; closing the channel
// ends the program.
func runCheckDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Observer = func(ev driver.Event) {
			events <- ev
		}
		fs, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
