package coopexec

// reclaimThreshold is the minimum number of drained slots before the mailbox
// considers compacting its backing array.
const reclaimThreshold = 32

// mailbox is an ordered, unbounded FIFO of opaque message payloads belonging
// to exactly one task. It is created empty alongside the task and deleted
// wholesale when the task terminates.
type mailbox struct {
	buf  [][]byte
	head int
}

// enqueue appends a payload to the back of the queue. The payload is copied,
// to avoid unintended consequences if the caller's slice is modified after
// the send.
func (mb *mailbox) enqueue(payload []byte) {
	mb.buf = append(mb.buf, append([]byte(nil), payload...))
}

// dequeue removes and returns the oldest payload. Returns false if the
// mailbox is empty.
func (mb *mailbox) dequeue() ([]byte, bool) {
	if mb.head >= len(mb.buf) {
		return nil, false
	}
	msg := mb.buf[mb.head]
	mb.buf[mb.head] = nil // Drop the reference so the payload can be collected
	mb.head++

	// Compact once the drained prefix makes up at least half the backing
	// array, keeping dequeue amortized O(1) without unbounded slack.
	if mb.head >= reclaimThreshold && mb.head*2 >= len(mb.buf) {
		mb.buf = append([][]byte(nil), mb.buf[mb.head:]...)
		mb.head = 0
	}
	return msg, true
}

// depth returns the number of messages currently queued.
func (mb *mailbox) depth() int {
	return len(mb.buf) - mb.head
}
