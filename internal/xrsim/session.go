package xrsim

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"arviewer/internal/domain"
)

// ErrHitTestRefused is returned when the session declines a hit-test source.
var ErrHitTestRefused = errors.New("hit-test source refused")

// Space is a granted reference space.
type Space struct{ kind string }

func (s Space) Kind() string { return s.kind }

// Source is a hit-test source. Once cancelled it yields no results.
type Source struct{ cancelled atomic.Bool }

func (s *Source) Cancel() { s.cancelled.Store(true) }

// Cancelled reports whether Cancel was called.
func (s *Source) Cancelled() bool { return s.cancelled.Load() }

// Session is a simulated immersive session.
type Session struct {
	RefuseHitTest bool

	mu      sync.Mutex
	spaces  []string
	sources []*Source
}

func (s *Session) RequestReferenceSpace(ctx context.Context, kind string) (domain.ReferenceSpace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces = append(s.spaces, kind)
	return Space{kind: kind}, nil
}

func (s *Session) RequestHitTestSource(ctx context.Context, space domain.ReferenceSpace) (domain.HitTestSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.RefuseHitTest {
		return nil, ErrHitTestRefused
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	src := &Source{}
	s.sources = append(s.sources, src)
	return src, nil
}

// Spaces lists the requested reference space kinds.
func (s *Session) Spaces() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.spaces...)
}

// Sources lists the granted hit-test sources in order.
func (s *Session) Sources() []*Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Source(nil), s.sources...)
}

// Frame is one animation frame.
type Frame struct {
	Hits []domain.HitTestResult
}

// HitTestResults returns the frame's hits for a live source.
func (f Frame) HitTestResults(src domain.HitTestSource) []domain.HitTestResult {
	if s, ok := src.(*Source); ok && s.Cancelled() {
		return nil
	}
	return f.Hits
}

var (
	_ domain.XRSession = (*Session)(nil)
	_ domain.XRFrame   = Frame{}
)
