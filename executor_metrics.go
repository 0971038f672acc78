package coopexec

import (
	"github.com/jkbrsn/threadsafe"
	uatomic "go.uber.org/atomic"
)

// ExecutorMetrics holds a snapshot of metrics about various aspects of the
// executor.
type ExecutorMetrics struct {
	// Tasks
	TasksCreated    int // Total number of tasks created
	TasksTerminated int // Total number of tasks terminated
	TasksReady      int // Tasks currently in StateReady

	// Messages
	MessagesSent      int // Messages accepted into a mailbox
	MessagesDropped   int // Sends refused because the destination had no mailbox
	MessagesReceived  int // Messages handed out by ReceiveMessage
	MessagesDiscarded int // Pending messages thrown away at termination
	MessagesQueued    int // Messages currently waiting across all mailboxes
}

// executorMetrics stores internal counters about the executor. Counters are
// atomic and the depth map is thread-safe, so a host may read Metrics from a
// separate goroutine while another drives the executor under its own lock.
type executorMetrics struct {
	tasksCreated    uatomic.Int64 // Total number of tasks created
	tasksTerminated uatomic.Int64 // Total number of tasks terminated

	messagesSent      uatomic.Int64 // Messages accepted into a mailbox
	messagesDropped   uatomic.Int64 // Sends refused for lack of a mailbox
	messagesReceived  uatomic.Int64 // Messages handed out to receivers
	messagesDiscarded uatomic.Int64 // Pending messages dropped at termination

	mailboxDepths threadsafe.Map[TaskID, int64] // Task ID -> queued message count
}

// newExecutorMetrics creates a new executor metrics instance.
func newExecutorMetrics() *executorMetrics {
	return &executorMetrics{
		mailboxDepths: threadsafe.NewRWMutexMap[TaskID](equalDepths),
	}
}

// equalDepths returns true if the two depth entries are equal.
func equalDepths(a, b int64) bool {
	return a == b
}

// taskCreated records a task creation and its empty mailbox.
func (m *executorMetrics) taskCreated(id TaskID) {
	m.tasksCreated.Add(1)
	m.mailboxDepths.Set(id, 0)
}

// taskTerminated records a termination and the messages it discarded.
func (m *executorMetrics) taskTerminated(id TaskID, discarded int) {
	m.tasksTerminated.Add(1)
	m.messagesDiscarded.Add(int64(discarded))
	m.mailboxDepths.Delete(id)
}

// messageSent records an accepted message and the mailbox's new depth.
func (m *executorMetrics) messageSent(id TaskID, depth int) {
	m.messagesSent.Add(1)
	m.mailboxDepths.Set(id, int64(depth))
}

// messageDropped records a send that found no mailbox.
func (m *executorMetrics) messageDropped() {
	m.messagesDropped.Add(1)
}

// messageReceived records a delivered message and the mailbox's new depth.
func (m *executorMetrics) messageReceived(id TaskID, depth int) {
	m.messagesReceived.Add(1)
	m.mailboxDepths.Set(id, int64(depth))
}

// queuedTotal sums the queued message counts across all live mailboxes.
func (m *executorMetrics) queuedTotal() int {
	var total int64
	m.mailboxDepths.Range(func(_ TaskID, depth int64) bool {
		total += depth
		return true
	})
	return int(total)
}

// Metrics returns a snapshot of the executor's metrics. The ready-task count
// reads the registry, so this follows the same single-caller discipline as
// the other Executor methods; hosts needing counters from another goroutine
// should go through a LockedExecutor.
func (e *Executor) Metrics() ExecutorMetrics {
	metrics := ExecutorMetrics{
		TasksCreated:      int(e.metrics.tasksCreated.Load()),
		TasksTerminated:   int(e.metrics.tasksTerminated.Load()),
		MessagesSent:      int(e.metrics.messagesSent.Load()),
		MessagesDropped:   int(e.metrics.messagesDropped.Load()),
		MessagesReceived:  int(e.metrics.messagesReceived.Load()),
		MessagesDiscarded: int(e.metrics.messagesDiscarded.Load()),
		MessagesQueued:    e.metrics.queuedTotal(),
	}
	for _, t := range e.tasks {
		if t.state == StateReady {
			metrics.TasksReady++
		}
	}
	return metrics
}
