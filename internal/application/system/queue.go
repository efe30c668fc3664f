package system

import "sync"

// QueueInput is an InputSource fed by Push.
// Push may be called from any goroutine; Poll drains everything pushed so far.
type QueueInput struct {
	mu      sync.Mutex
	pending []Intent
}

// NewQueueInput creates an empty queue
func NewQueueInput() *QueueInput {
	return &QueueInput{}
}

// Push appends intents to the queue
func (q *QueueInput) Push(in ...Intent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, in...)
}

// Poll returns and clears the queued intents in push order
func (q *QueueInput) Poll() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
