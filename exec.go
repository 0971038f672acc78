package coopexec

// Exec is the call surface shared by Executor and LockedExecutor. Hosts that
// do not care which flavor they hold can accept this interface.
type Exec interface {
	CreateTask(priority uint8) TaskID
	TerminateTask(id TaskID)
	SendMessage(to TaskID, payload []byte) bool
	ReceiveMessage(id TaskID) ([]byte, bool)
	Schedule() (TaskID, bool)

	Task(id TaskID) (TaskInfo, bool)
	TaskCount() int
	MailboxLen(id TaskID) int
	Metrics() ExecutorMetrics
}

var (
	_ Exec = (*Executor)(nil)
	_ Exec = (*LockedExecutor)(nil)
)
