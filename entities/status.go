package entities

// Status is the progress state of a WorkPlan, Target or Task.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// AllStatuses is the closed domain, in display order.
func AllStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// ProgramStatus is independent of progress tracking; programs are an
// informational register, not deadline-driven work items.
type ProgramStatus string

const (
	ProgramActive    ProgramStatus = "Active"
	ProgramCompleted ProgramStatus = "Completed"
	ProgramOnHold    ProgramStatus = "On Hold"
)

func (s ProgramStatus) Valid() bool {
	switch s {
	case ProgramActive, ProgramCompleted, ProgramOnHold:
		return true
	}
	return false
}
