package collector

import (
	"testing"
	"time"

	"codeberg.org/mutker/senecd/internal/device"
	"github.com/stretchr/testify/assert"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := newFIFO()
	for i := 1; i <= 3; i++ {
		q.push(rawStatus(i))
	}
	assert.Equal(t, 3, q.len())

	for i := 1; i <= 3; i++ {
		assert.Equal(t, i, seqOf(t, q.pop(false)))
	}
	assert.Nil(t, q.pop(false))
	assert.Zero(t, q.len())
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := newFIFO()
	results := make(chan device.RawStatus, 1)
	go func() { results <- q.pop(true) }()

	time.Sleep(20 * time.Millisecond)
	q.push(rawStatus(1))

	select {
	case status := <-results:
		assert.Equal(t, 1, seqOf(t, status))
	case <-time.After(time.Second):
		t.Fatal("pop did not wake on push")
	}
}

func TestQueueCloseWakesWaiters(t *testing.T) {
	q := newFIFO()
	results := make(chan device.RawStatus, 2)
	for i := 0; i < 2; i++ {
		go func() { results <- q.pop(true) }()
	}

	time.Sleep(20 * time.Millisecond)
	q.close()

	for i := 0; i < 2; i++ {
		select {
		case status := <-results:
			assert.Nil(t, status)
		case <-time.After(time.Second):
			t.Fatal("pop did not wake on close")
		}
	}
}

func TestQueueDrainsAfterClose(t *testing.T) {
	q := newFIFO()
	q.push(rawStatus(1))
	q.close()

	assert.Equal(t, 1, seqOf(t, q.pop(false)))
	assert.Nil(t, q.pop(false))

	q.push(rawStatus(2)) // dropped, queue is closed
	assert.Zero(t, q.len())
}
