package game

import (
	"sync"
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EventLog is a fixed-size ring of the most recent battle events. Readers
// may run on another goroutine than the battle.
type EventLog struct {
	buf   []Event
	head  int
	size  int
	mu    sync.RWMutex
	limit int
	seq   int
}

// NewEventLog keeps roughly the given number of seconds of events at hz
// events per second.
func NewEventLog(seconds float64, hz float64) *EventLog {
	n := int(seconds*hz) + 4
	return &EventLog{buf: make([]Event, n), limit: n}
}

func (l *EventLog) push(ev Event) {
	l.mu.Lock()
	l.seq++
	ev.Seq = l.seq
	l.buf[l.head] = ev
	l.head = (l.head + 1) % l.limit
	if l.size < l.limit {
		l.size++
	}
	l.mu.Unlock()
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

// Since returns retained events with Tick > tick, oldest first.
func (l *EventLog) Since(tick int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, 0, l.size)
	for i := l.size - 1; i >= 0; i-- {
		ev := l.buf[(l.head-1-i+l.limit)%l.limit]
		if ev.Tick > tick {
			out = append(out, ev)
		}
	}
	return out
}

// After returns retained events with Seq > seq, oldest first. Unlike Since
// it sees events logged later within an already read tick.
func (l *EventLog) After(seq int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, 0, l.size)
	for i := l.size - 1; i >= 0; i-- {
		ev := l.buf[(l.head-1-i+l.limit)%l.limit]
		if ev.Seq > seq {
			out = append(out, ev)
		}
	}
	return out
}

// Last returns the newest event of the given kind.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := 0; i < l.size; i++ {
		ev := l.buf[(l.head-1-i+l.limit)%l.limit]
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}
