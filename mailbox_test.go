package coopexec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailboxQueue(t *testing.T) {
	mb := &mailbox{}

	_, ok := mb.dequeue()
	assert.False(t, ok, "Expected an empty mailbox to yield nothing")
	assert.Equal(t, 0, mb.depth())

	mb.enqueue([]byte("first"))
	mb.enqueue([]byte("second"))
	assert.Equal(t, 2, mb.depth())

	msg, ok := mb.dequeue()
	require.True(t, ok)
	assert.Equal(t, []byte("first"), msg)

	msg, ok = mb.dequeue()
	require.True(t, ok)
	assert.Equal(t, []byte("second"), msg)

	_, ok = mb.dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, mb.depth())
}

// TestMailboxReclaim interleaves sends and receives well past the compaction
// threshold and verifies that FIFO order and depth accounting survive it.
func TestMailboxReclaim(t *testing.T) {
	mb := &mailbox{}

	next := 0
	for i := range 10 * reclaimThreshold {
		mb.enqueue(fmt.Appendf(nil, "msg-%d", i))
		if i%2 == 1 {
			msg, ok := mb.dequeue()
			require.True(t, ok)
			require.Equal(t, fmt.Sprintf("msg-%d", next), string(msg),
				"Expected FIFO order across compactions")
			next++
		}
	}

	remaining := mb.depth()
	assert.Equal(t, 10*reclaimThreshold-next, remaining)
	for range remaining {
		msg, ok := mb.dequeue()
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("msg-%d", next), string(msg))
		next++
	}
	_, ok := mb.dequeue()
	assert.False(t, ok)
}
