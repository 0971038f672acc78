package coopexec

import "sync"

// LockedExecutor guards an Executor with a single read-write mutex, supplying
// the external mutual exclusion the bare Executor requires when driven from
// multiple goroutines. Each method holds the lock for the duration of one
// operation; no ordering is guaranteed between goroutines beyond that.
type LockedExecutor struct {
	mu   sync.RWMutex
	exec *Executor
}

// NewLocked creates and returns a new LockedExecutor. The opts are passed
// through to New.
func NewLocked(opts ...Option) *LockedExecutor {
	return &LockedExecutor{exec: New(opts...)}
}

// CreateTask registers a new task. See Executor.CreateTask.
func (le *LockedExecutor) CreateTask(priority uint8) TaskID {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.exec.CreateTask(priority)
}

// TerminateTask terminates a task. See Executor.TerminateTask.
func (le *LockedExecutor) TerminateTask(id TaskID) {
	le.mu.Lock()
	defer le.mu.Unlock()
	le.exec.TerminateTask(id)
}

// SendMessage routes a payload to a task's mailbox. See Executor.SendMessage.
func (le *LockedExecutor) SendMessage(to TaskID, payload []byte) bool {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.exec.SendMessage(to, payload)
}

// ReceiveMessage polls a task's mailbox. See Executor.ReceiveMessage.
func (le *LockedExecutor) ReceiveMessage(id TaskID) ([]byte, bool) {
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.exec.ReceiveMessage(id)
}

// Schedule picks the next Ready task. See Executor.Schedule.
// Schedule mutates nothing, so it only takes the read lock.
func (le *LockedExecutor) Schedule() (TaskID, bool) {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.exec.Schedule()
}

// Task returns a snapshot of one task. See Executor.Task.
func (le *LockedExecutor) Task(id TaskID) (TaskInfo, bool) {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.exec.Task(id)
}

// TaskCount returns the registry size. See Executor.TaskCount.
func (le *LockedExecutor) TaskCount() int {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.exec.TaskCount()
}

// MailboxLen returns a task's queued message count. See Executor.MailboxLen.
func (le *LockedExecutor) MailboxLen(id TaskID) int {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.exec.MailboxLen(id)
}

// Metrics returns a snapshot of the executor's metrics. See Executor.Metrics.
func (le *LockedExecutor) Metrics() ExecutorMetrics {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.exec.Metrics()
}
