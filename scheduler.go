package coopexec

// Schedule returns the ID of the Ready task with the highest priority. When
// several Ready tasks share the top priority the pick among them follows map
// iteration order and can differ between calls; callers must not depend on a
// particular tie-break. The second return is false when no task is Ready.
//
// Schedule has no side effects: it does not transition the chosen task out of
// StateReady, so consecutive calls return the same task until the host
// changes something. Acting on the result is the host's responsibility.
func (e *Executor) Schedule() (TaskID, bool) {
	var (
		bestID   TaskID
		bestPrio uint8
		found    bool
	)
	for id, t := range e.tasks {
		if t.state != StateReady {
			continue
		}
		if !found || t.priority > bestPrio {
			bestID = id
			bestPrio = t.priority
			found = true
		}
	}
	if !found {
		e.log.Trace().Msg("No ready task to schedule")
		return 0, false
	}

	e.log.Trace().Msgf("Selected task %d with priority %d", bestID, bestPrio)
	return bestID, true
}
