package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vb6parse/internal/driver"
	"vb6parse/internal/source"
	"vb6parse/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []*driver.Result
	err     error
}

func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []*driver.Result, error) {
	// по два события на стадию, с запасом
	events := make(chan driver.Event, 4*len(files)+16)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		reqOpts := opts
		reqOpts.Progress = events
		fileSet, results, err := driver.ParseFiles(ctx, files, reqOpts)
		outcomeCh <- checkOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
