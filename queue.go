// FILE: lixenwraith/configfile/queue.go
package configfile

// ModQueue holds enable-mod requests read before the mod subsystem exists.
// Entries are applied in arrival order by the first EnableQueued call, which
// also marks the queue ready: later Enqueue calls apply immediately.
type ModQueue struct {
	pending []string
	ready   ModEnabler
}

// NewModQueue returns an empty, not yet ready queue.
func NewModQueue() *ModQueue {
	return &ModQueue{}
}

// Enqueue records path, or enables it directly once the queue is ready.
func (q *ModQueue) Enqueue(path string) {
	if q.ready != nil {
		q.ready.EnableMod(path)
		return
	}
	q.pending = append(q.pending, path)
}

// Len returns the number of pending entries.
func (q *ModQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the pending paths in order.
func (q *ModQueue) Pending() []string {
	out := make([]string, len(q.pending))
	copy(out, q.pending)
	return out
}

// EnableQueued applies and releases every pending entry and returns how many
// were applied. Calling it again is a no-op that returns zero.
func (q *ModQueue) EnableQueued(m ModEnabler) int {
	if m == nil {
		return 0
	}
	if q.ready == nil {
		q.ready = m
	}
	n := 0
	for len(q.pending) > 0 {
		path := q.pending[0]
		q.pending[0] = ""
		q.pending = q.pending[1:]
		q.ready.EnableMod(path)
		n++
	}
	q.pending = nil
	return n
}

// Reset discards pending entries without applying them.
func (q *ModQueue) Reset() {
	q.pending = nil
}

// Ready reports whether the mod subsystem has been signalled.
func (q *ModQueue) Ready() bool {
	return q.ready != nil
}
