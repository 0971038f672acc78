package coopexec

// TaskID is an opaque handle naming a task within an Executor. IDs are issued
// from a monotonic counter and are never reused, not even after the task they
// name terminates. The integer representation is an implementation detail and
// not guaranteed stable across versions; treat the type as a comparable,
// hashable value and nothing more.
type TaskID uint64

// TaskState is the lifecycle state of a task.
type TaskState uint8

// The executor itself only ever moves tasks from StateReady to
// StateTerminated. StateRunning and StateWaiting are representable so a host
// driving execution has somewhere to go, but no operation currently
// transitions into or out of them.
const (
	StateReady TaskState = iota
	StateRunning
	StateWaiting
	StateTerminated
)

// String returns a human-readable name for the state.
func (s TaskState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateWaiting:
		return "waiting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// task is the registry record for a single schedulable unit. The id and
// priority are fixed at creation; only the state ever changes.
type task struct {
	id       TaskID
	priority uint8
	state    TaskState
}

// TaskInfo is a read-only snapshot of one task's registry entry.
type TaskInfo struct {
	ID       TaskID
	Priority uint8
	State    TaskState
}
