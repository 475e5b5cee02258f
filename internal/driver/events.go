package driver

import "time"

// Stage identifies a step of the per-file pipeline.
type Stage uint8

const (
	StageLoad Stage = iota
	StageLex
	StageParse
	StageCheck
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	}
	return "unknown"
}

// Status reports whether a stage started or finished.
type Status uint8

const (
	StatusStart Status = iota
	StatusEnd
)

// Event describes a stage boundary for one file.
type Event struct {
	Path    string
	Stage   Stage
	Status  Status
	Elapsed time.Duration
	// Diagnostics is the file's diagnostic count, set on the final
	// StageCheck end event.
	Diagnostics int
	// Cached marks a file skipped via a clean cache verdict.
	Cached bool
}

// Observer receives stage events during a check run. Observers must be safe
// for concurrent calls; directory checks run files in parallel.
type Observer func(Event)

func (o Observer) emit(ev Event) {
	if o != nil {
		o(ev)
	}
}
