package domain

type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// TaskEvent is a change-feed notification for one task row. Delete events
// carry the last known state of the task.
type TaskEvent struct {
	Kind EventKind
	Task Task
}
