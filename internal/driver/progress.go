package driver

// Stage of one file's run.
type Stage uint8

const (
	StageLoad Stage = iota + 1
	StageLex
	StageParse
	StageResources
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "loading"
	case StageLex:
		return "lexing"
	case StageParse:
		return "parsing"
	case StageResources:
		return "resources"
	}
	return ""
}

type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	}
	return ""
}

// Event is a progress notification for one file. An empty File refers to
// the run as a whole.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func (o *Options) notify(file string, stage Stage, status Status) {
	if o.Progress == nil {
		return
	}
	o.Progress <- Event{File: file, Stage: stage, Status: status}
}
