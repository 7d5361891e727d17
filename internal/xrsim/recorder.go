package xrsim

import (
	"sync"

	"arviewer/internal/domain"
)

// Recorder is a Presenter that keeps what it is shown.
type Recorder struct {
	mu      sync.Mutex
	errors  []string
	alerts  []string
	events  []domain.Event
	ready   bool
	OnEvent func(domain.Event) // optional; called outside the lock
}

func (r *Recorder) ShowError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *Recorder) HideLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready = true
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, msg)
}

func (r *Recorder) Notify(ev domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	fn := r.OnEvent
	r.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Errors returns the error screen messages.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Alerts returns the alert messages.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

// Events returns the notified events.
func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

// Kinds returns the kinds of the notified events.
func (r *Recorder) Kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

// LoadingHidden reports whether HideLoading was called.
func (r *Recorder) LoadingHidden() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

var _ domain.Presenter = (*Recorder)(nil)
