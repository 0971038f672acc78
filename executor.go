// Package coopexec provides a minimal cooperative task executor: a task
// registry, per-task mailboxes for byte-message routing, and a priority-based
// scheduling query. The executor never runs task code and owns no thread of
// execution; a host creates tasks, exchanges messages, and asks Schedule which
// task should run next, then drives that task itself.
package coopexec

import (
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Option is a functional option for the Executor struct.
type Option func(*Executor)

// Executor tracks tasks, routes messages between their mailboxes, and answers
// which Ready task should run next. It runs no goroutines and takes no locks:
// every operation is synchronous and the struct expects a single logical
// caller. A multi-goroutine host wraps it in a LockedExecutor or supplies its
// own mutual exclusion around the whole Executor.
type Executor struct {
	log zerolog.Logger

	tasks     map[TaskID]*task    // Task registry; entries are never removed
	mailboxes map[TaskID]*mailbox // One mailbox per non-terminated task
	nextID    TaskID              // Monotonic ID counter, never reused or reset

	metrics *executorMetrics
}

// New creates and returns a new Executor. It uses default values for the
// executor parameters unless changed by the input opts.
func New(opts ...Option) *Executor {
	e := &Executor{
		tasks:     make(map[TaskID]*task),
		mailboxes: make(map[TaskID]*mailbox),
		nextID:    1,
	}
	setDefaultOptions(e)
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	e.metrics = newExecutorMetrics()
	e.log = e.log.With().
		Str("pkg", "coopexec").
		Str("executor", xid.New().String()).
		Logger()

	return e
}

// setDefaultOptions sets default values for the options of the Executor.
func setDefaultOptions(e *Executor) {
	e.log = zerolog.Nop()
}

// WithLogger sets the logger for the Executor. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executor) {
		e.log = logger
	}
}

// CreateTask registers a new task with the given priority and an empty
// mailbox, and returns the task's ID. The task starts in StateReady. Every
// value in the full 0-255 priority range is valid, and the call cannot fail.
func (e *Executor) CreateTask(priority uint8) TaskID {
	id := e.nextID
	e.nextID++

	e.tasks[id] = &task{
		id:       id,
		priority: priority,
		state:    StateReady,
	}
	e.mailboxes[id] = &mailbox{}

	e.metrics.taskCreated(id)
	e.log.Debug().Msgf("Created task %d with priority %d", id, priority)
	return id
}

// TerminateTask marks the task Terminated and removes its mailbox, discarding
// any pending messages. The registry entry is retained, so the ID stays known
// to Task and TaskCount. Terminating an unknown or already-terminated task is
// a silent no-op; the operation is idempotent best-effort, unlike SendMessage
// and ReceiveMessage which signal a missing mailbox through their return
// values.
func (e *Executor) TerminateTask(id TaskID) {
	if t, ok := e.tasks[id]; ok {
		t.state = StateTerminated
	}
	mb, ok := e.mailboxes[id]
	if !ok {
		return
	}
	delete(e.mailboxes, id)

	e.metrics.taskTerminated(id, mb.depth())
	e.log.Debug().Msgf("Terminated task %d, discarded %d pending messages", id, mb.depth())
}

// SendMessage appends the payload to the destination task's mailbox and
// reports whether the message was accepted. A false return means the
// destination is unknown or has terminated; that is a routine outcome for the
// caller to check, not an error. Mailbox depth and payload size are
// unbounded. The payload is copied, so the caller may reuse its buffer after
// the call.
func (e *Executor) SendMessage(to TaskID, payload []byte) bool {
	mb, ok := e.mailboxes[to]
	if !ok {
		e.metrics.messageDropped()
		e.log.Trace().Msgf("Dropped message to task %d: no mailbox", to)
		return false
	}
	mb.enqueue(payload)

	e.metrics.messageSent(to, mb.depth())
	e.log.Trace().Msgf("Queued %d byte message for task %d", len(payload), to)
	return true
}

// ReceiveMessage removes and returns the oldest message queued for the task.
// Messages come out in the order they were sent to this task; there is no
// ordering across tasks. The false return collapses "unknown or terminated
// task" and "mailbox empty" into a single signal. This is a non-blocking
// poll, it never suspends.
func (e *Executor) ReceiveMessage(id TaskID) ([]byte, bool) {
	mb, ok := e.mailboxes[id]
	if !ok {
		return nil, false
	}
	msg, ok := mb.dequeue()
	if !ok {
		return nil, false
	}

	e.metrics.messageReceived(id, mb.depth())
	e.log.Trace().Msgf("Delivered %d byte message to task %d", len(msg), id)
	return msg, true
}

// Task returns a snapshot of the task with the given ID, or false if no such
// task was ever created.
func (e *Executor) Task(id TaskID) (TaskInfo, bool) {
	t, ok := e.tasks[id]
	if !ok {
		return TaskInfo{}, false
	}
	return TaskInfo{ID: t.id, Priority: t.priority, State: t.state}, true
}

// TaskCount returns the number of tasks ever created on this Executor,
// terminated ones included.
func (e *Executor) TaskCount() int {
	return len(e.tasks)
}

// MailboxLen returns the number of messages queued for the task, or 0 if the
// task is unknown or terminated.
func (e *Executor) MailboxLen(id TaskID) int {
	mb, ok := e.mailboxes[id]
	if !ok {
		return 0
	}
	return mb.depth()
}
