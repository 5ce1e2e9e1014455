package queue

import "sync"

// DefaultCapacity is the default ring size in bytes.
const DefaultCapacity = 255

// Queue is a fixed-capacity byte ring with an all-or-nothing push.
//
// The readable callback, when set, is invoked while the queue lock is
// held: once with true after any successful push, and once with false
// when a read drains the queue. Holding the lock keeps the signal
// atomic with the state it describes, so a poller is never told data
// is available when none is.
type Queue struct {
	mu   sync.Mutex
	buf  []byte
	head int // next read position
	size int // bytes stored

	onReadable func(bool)
}

// New returns a queue with the given capacity, or DefaultCapacity if
// n <= 0.
func New(n int) *Queue {
	if n <= 0 {
		n = DefaultCapacity
	}
	return &Queue{buf: make([]byte, n)}
}

// SetReadable installs the readability callback. Must be set before
// the queue is shared; the callback must not call back into the queue.
func (q *Queue) SetReadable(fn func(bool)) {
	q.mu.Lock()
	q.onReadable = fn
	q.mu.Unlock()
}

// Cap returns the queue capacity in bytes.
func (q *Queue) Cap() int { return len(q.buf) }

// Len returns the number of buffered bytes.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Push appends the whole sequence, or nothing. It returns false when
// the sequence does not fit in the remaining capacity; the caller
// counts that as dropped input.
func (q *Queue) Push(seq []byte) bool {
	if len(seq) == 0 {
		return true
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(seq) > len(q.buf)-q.size {
		return false
	}
	tail := (q.head + q.size) % len(q.buf)
	for _, b := range seq {
		q.buf[tail] = b
		tail = (tail + 1) % len(q.buf)
	}
	q.size += len(seq)
	if q.onReadable != nil {
		q.onReadable(true)
	}
	return true
}

// Read removes up to len(p) bytes into p and returns the count. When
// the read leaves the queue empty the readability signal is cleared.
func (q *Queue) Read(p []byte) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.size
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = q.buf[q.head]
		q.head = (q.head + 1) % len(q.buf)
	}
	q.size -= n
	if q.size == 0 {
		q.head = 0
		if q.onReadable != nil {
			q.onReadable(false)
		}
	}
	return n
}
