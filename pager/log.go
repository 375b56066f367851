// ABOUTME: Bounded transition log implementing Observer
// ABOUTME: Used by hosts for status display and by tests to assert notification order

package pager

import "fmt"

// EventKind distinguishes the two transition notifications
type EventKind int

// Transition notification kinds
const (
	WillLeave EventKind = iota
	DidArrive
)

func (k EventKind) String() string {
	if k == WillLeave {
		return "will-leave"
	}

	return "did-arrive"
}

// Event is one recorded notification
type Event struct {
	Kind EventKind
	Page int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Page)
}

// TransitionLog records notifications in arrival order, keeping at most
// limit entries (0 means unbounded). An optional Next observer is forwarded
// every event after it is recorded.
type TransitionLog struct {
	Next   Observer
	events []Event
	limit  int
}

// NewTransitionLog creates a log keeping the most recent limit events
func NewTransitionLog(limit int) *TransitionLog {
	return &TransitionLog{limit: limit}
}

// WillLeavePage implements Observer
func (l *TransitionLog) WillLeavePage(index int) {
	l.record(Event{Kind: WillLeave, Page: index})

	if l.Next != nil {
		l.Next.WillLeavePage(index)
	}
}

// DidArrivePage implements Observer
func (l *TransitionLog) DidArrivePage(index int) {
	l.record(Event{Kind: DidArrive, Page: index})

	if l.Next != nil {
		l.Next.DidArrivePage(index)
	}
}

func (l *TransitionLog) record(e Event) {
	l.events = append(l.events, e)

	if l.limit > 0 && len(l.events) > l.limit {
		l.events = l.events[len(l.events)-l.limit:]
	}
}

// Events returns a copy of the recorded events
func (l *TransitionLog) Events() []Event {
	return append([]Event(nil), l.events...)
}

// Last returns the most recent event
func (l *TransitionLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}

	return l.events[len(l.events)-1], true
}

// Reset drops all recorded events
func (l *TransitionLog) Reset() {
	l.events = nil
}
