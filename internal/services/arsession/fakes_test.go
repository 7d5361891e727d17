package arsession_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"arviewer/internal/domain"
)

type fakeSpace struct{ kind string }

func (s fakeSpace) Kind() string { return s.kind }

type fakeSource struct{ cancelled atomic.Bool }

func (s *fakeSource) Cancel() { s.cancelled.Store(true) }

// fakeSession grants a viewer space and a hit-test source. When gate is
// non-nil the source request waits on it.
type fakeSession struct {
	mu        sync.Mutex
	spaceErr  error
	sourceErr error
	gate      chan struct{}
	spaces    []string
	sources   []*fakeSource
}

func (s *fakeSession) RequestReferenceSpace(ctx context.Context, kind string) (domain.ReferenceSpace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces = append(s.spaces, kind)
	if s.spaceErr != nil {
		return nil, s.spaceErr
	}
	return fakeSpace{kind: kind}, nil
}

func (s *fakeSession) RequestHitTestSource(ctx context.Context, space domain.ReferenceSpace) (domain.HitTestSource, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sourceErr != nil {
		return nil, s.sourceErr
	}
	src := &fakeSource{}
	s.sources = append(s.sources, src)
	return src, nil
}

func (s *fakeSession) sourceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sources)
}

func (s *fakeSession) lastSource() *fakeSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sources[len(s.sources)-1]
}

type fakeFrame struct {
	results []domain.HitTestResult
	queried int
}

func (f *fakeFrame) HitTestResults(domain.HitTestSource) []domain.HitTestResult {
	f.queried++
	return f.results
}

func hitAt(x, y, z float64) *fakeFrame {
	return &fakeFrame{results: []domain.HitTestResult{{Pose: mgl64.Translate3D(x, y, z)}}}
}

func noHit() *fakeFrame { return &fakeFrame{} }

type model struct {
	name  string
	clone int
}

func (m *model) Name() string { return m.name }

func (m *model) Clone() domain.SceneGraph { c := *m; c.clone++; return &c }

// fakeModels is a ModelSource with per-index failures and an optional
// gate that holds every load.
type fakeModels struct {
	mu     sync.Mutex
	list   []domain.ModelDescriptor
	fail   map[int]bool
	loads  map[int]int
	cached map[int]*model
	gate   chan struct{}
}

func newFakeModels(labels ...string) *fakeModels {
	f := &fakeModels{fail: map[int]bool{}, loads: map[int]int{}, cached: map[int]*model{}}
	for _, l := range labels {
		f.list = append(f.list, domain.ModelDescriptor{Label: l, URL: l + ".glb"})
	}
	return f
}

func (f *fakeModels) Models() []domain.ModelDescriptor {
	return append([]domain.ModelDescriptor(nil), f.list...)
}

func (f *fakeModels) LoadModelAtIndex(ctx context.Context, i int) (domain.SceneGraph, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.list) {
		return nil, domain.ErrIndexOutOfRange
	}
	if m, ok := f.cached[i]; ok {
		return m, nil
	}
	f.loads[i]++
	if f.fail[i] {
		return nil, errors.Join(domain.ErrModelLoad, errors.New("404"))
	}
	m := &model{name: f.list[i].Label}
	f.cached[i] = m
	return m, nil
}

func (f *fakeModels) loadCount(i int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads[i]
}

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
	alerts []string
}

func (r *recorder) ShowError(string) {}
func (r *recorder) HideLoading() {}

func (r *recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, msg)
}

func (r *recorder) Notify(ev domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func (r *recorder) last() domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *recorder) alertList() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}
