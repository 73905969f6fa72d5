package collector

import (
	"sync"

	"codeberg.org/mutker/senecd/internal/device"
)

// fifo is an unbounded insertion-order queue, safe for a single producer
// and any number of consumers. Closing the queue wakes blocked consumers;
// once closed and drained, pop yields nil.
type fifo struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []device.RawStatus
	closed bool
}

func newFIFO() *fifo {
	q := &fifo{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

func (q *fifo) push(item device.RawStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.items = append(q.items, item)
	q.cond.Signal()
}

// pop returns the oldest item. With wait set it blocks until an item is
// available or the queue is closed; otherwise it returns nil immediately
// when the queue is empty.
func (q *fifo) pop(wait bool) device.RawStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if !wait || q.closed {
			return nil
		}
		q.cond.Wait()
	}

	item := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]

	return item
}

func (q *fifo) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *fifo) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}
