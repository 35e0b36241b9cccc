package service

// StatusService validates a requested status against the domain for the
// entity kind and persists it as a single update. Validation happens before
// any write; a rejected value leaves the stored status untouched.
type StatusService interface {
	Set(kind string, id uint, value string) error
}

// Kinds accepted by Set.
const (
	KindWorkPlan = "workplan"
	KindTarget   = "target"
	KindTask     = "task"
	KindProgram  = "program"
)
