package task

// Status represents the completion state of a Task.
type Status string

const (
	StatusUndone Status = "undone"
	StatusDone   Status = "done"
)

// StatusFromDone maps a done flag to its Status.
func StatusFromDone(done bool) Status {
	if done {
		return StatusDone
	}
	return StatusUndone
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusUndone, StatusDone:
		return true
	default:
		return false
	}
}

// IsDone reports whether the status is StatusDone.
func (s Status) IsDone() bool {
	return s == StatusDone
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
