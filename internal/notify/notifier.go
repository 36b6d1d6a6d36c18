// Package notify surfaces transient user-facing messages. A notification
// replaces whatever is currently shown and auto-hides after a fixed
// duration. Each call gets a monotonic token, and a hide timer only fires
// through if its token is still current, so a stale timer from an earlier
// message can never clear a newer one.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const DefaultDuration = 3 * time.Second

// Sink is the display surface notifications are written to.
type Sink interface {
	ShowNotification(message string, kind Kind)
	HideNotification()
}

type Notifier struct {
	mu       sync.Mutex
	sink     Sink
	duration time.Duration
	token    uint64
}

func New(sink Sink, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{sink: sink, duration: duration}
}

// Notify displays the message, superseding any current one, and schedules
// the auto-hide.
func (n *Notifier) Notify(message string, kind Kind) {
	n.mu.Lock()
	n.token++
	current := n.token
	n.sink.ShowNotification(message, kind)
	n.mu.Unlock()

	time.AfterFunc(n.duration, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.token != current {
			return
		}
		n.sink.HideNotification()
	})
}

func (n *Notifier) Success(message string) {
	n.Notify(message, KindSuccess)
}

func (n *Notifier) Error(message string) {
	n.Notify(message, KindError)
}
