package timer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// eventsMsg carries the engine events queued since the last delivery, in
// order.
type eventsMsg []tea.Msg

// eventQueue hands engine events to the program without ever blocking the
// engine. Consecutive phase changes collapse into the latest one.
type eventQueue struct {
	ready   chan struct{}
	pending []tea.Msg
	mu      sync.Mutex
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		ready: make(chan struct{}, 1),
	}
}

func isPhase(msg tea.Msg) bool {
	_, ok := msg.(phaseMsg)
	return ok
}

func (q *eventQueue) push(msg tea.Msg) {
	q.mu.Lock()

	if n := len(q.pending); n > 0 && isPhase(msg) && isPhase(q.pending[n-1]) {
		q.pending[n-1] = msg
	} else {
		q.pending = append(q.pending, msg)
	}

	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *eventQueue) drain() eventsMsg {
	q.mu.Lock()
	defer q.mu.Unlock()

	msgs := q.pending
	q.pending = nil

	return msgs
}

// wait blocks until at least one push happened since the last wait.
func (q *eventQueue) wait() eventsMsg {
	<-q.ready
	return q.drain()
}
