package inbox

import (
	"sync"
)

// Message is one pending inbound message: the sender's id and its Lamport
// clock value at send time.
type Message struct {
	SenderID    string
	LogicalTime int64
}

// Inbox is an unbounded FIFO queue of inbound messages. Put is called from
// RPC handler goroutines while the tick loop calls TryPop and Len, so all
// operations lock. Order is arrival order, never logical-time order.
type Inbox struct {
	mu   sync.Mutex
	msgs []Message
}

// New creates an empty inbox.
func New() *Inbox {
	return &Inbox{}
}

// Put appends a message to the tail of the queue.
func (q *Inbox) Put(m Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, m)
}

// TryPop removes and returns the oldest message, or reports false if the
// queue is empty.
func (q *Inbox) TryPop() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.msgs) == 0 {
		return Message{}, false
	}
	m := q.msgs[0]
	q.msgs = q.msgs[1:]
	return m, true
}

// Len returns the number of pending messages.
func (q *Inbox) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.msgs)
}
