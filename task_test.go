package coopexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStateString(t *testing.T) {
	cases := []struct {
		state TaskState
		want  string
	}{
		{StateReady, "ready"},
		{StateRunning, "running"},
		{StateWaiting, "waiting"},
		{StateTerminated, "terminated"},
		{TaskState(99), "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.state.String())
	}
}

func TestTaskInfoIsASnapshot(t *testing.T) {
	exec := New(WithLogger(testLogger))

	id := exec.CreateTask(7)
	before, ok := exec.Task(id)
	require.True(t, ok)

	exec.TerminateTask(id)

	assert.Equal(t, StateReady, before.State,
		"Expected the earlier snapshot to be unaffected by later transitions")
	after, ok := exec.Task(id)
	require.True(t, ok)
	assert.Equal(t, StateTerminated, after.State)
}
