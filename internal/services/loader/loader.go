package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"arviewer/internal/domain"
	"arviewer/internal/scene"
)

// DefaultFetchTimeout bounds a single shared model fetch.
const DefaultFetchTimeout = 2 * time.Minute

type slot struct {
	state  domain.SlotState
	handle domain.SceneGraph
}

// Loader lazily fetches and decodes the models of a resolved list.
type Loader struct {
	models  []domain.ModelDescriptor
	fetch   domain.DocumentFetcher
	decode  domain.ModelDecoder
	logger  *slog.Logger
	timeout time.Duration

	mu    sync.Mutex
	slots []slot
	group singleflight.Group
}

// New returns a Loader with every slot Unloaded.
func New(
	models []domain.ModelDescriptor,
	fetch domain.DocumentFetcher,
	decode domain.ModelDecoder,
	logger *slog.Logger,
) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		models:  append([]domain.ModelDescriptor(nil), models...),
		fetch:   fetch,
		decode:  decode,
		logger:  logger.With("component", "loader"),
		timeout: DefaultFetchTimeout,
		slots:   make([]slot, len(models)),
	}
}

// Models returns a copy of the descriptor list.
func (l *Loader) Models() []domain.ModelDescriptor {
	return append([]domain.ModelDescriptor(nil), l.models...)
}

// Len is the number of models and slots.
func (l *Loader) Len() int { return len(l.models) }

// Slots returns a snapshot of the slot states.
func (l *Loader) Slots() []domain.SlotState {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.SlotState, len(l.slots))
	for i, s := range l.slots {
		out[i] = s.state
	}
	return out
}

// Cached returns the handle of a Loaded slot without fetching.
func (l *Loader) Cached(i int) (domain.SceneGraph, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.slots) || l.slots[i].state != domain.Loaded {
		return nil, false
	}
	return l.slots[i].handle, true
}

// LoadModelAtIndex returns the handle for model i, fetching it on first use.
//
// Steps:
//  1. Reject indices outside the list.
//  2. Return the cached handle if the slot is Loaded.
//  3. Join or start the single shared fetch for i. The fetch runs detached
//     from ctx so one impatient caller cannot fail the others; ctx only
//     bounds how long this caller waits.
//  4. On success the slot becomes Loaded; on failure it becomes Failed and
//     the error wraps domain.ErrModelLoad.
func (l *Loader) LoadModelAtIndex(ctx context.Context, i int) (domain.SceneGraph, error) {
	if i < 0 || i >= len(l.models) {
		return nil, fmt.Errorf("load model %d of %d: %w", i, len(l.models), domain.ErrIndexOutOfRange)
	}
	if h, ok := l.Cached(i); ok {
		return h, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(strconv.Itoa(i), func() (any, error) {
		return l.load(fetchCtx, i)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(domain.SceneGraph), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Loader) load(ctx context.Context, i int) (domain.SceneGraph, error) {
	// A fetch that finished between the cache check and DoChan already
	// filled the slot.
	if h, ok := l.Cached(i); ok {
		return h, nil
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	d := l.models[i]
	handle, err := l.fetchAndDecode(ctx, d)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.slots[i] = slot{state: domain.Failed}
		l.logger.ErrorContext(ctx, "model load failed", "index", i, "url", d.URL, "error", err)
		return nil, fmt.Errorf("model %d (%s): %w: %w", i, d.URL, domain.ErrModelLoad, err)
	}
	l.slots[i] = slot{state: domain.Loaded, handle: handle}
	attrs := []any{"index", i, "url", d.URL, "name", handle.Name()}
	if m, ok := handle.(*scene.Model); ok {
		attrs = append(attrs, "digest", m.Digest())
	}
	l.logger.InfoContext(ctx, "model loaded", attrs...)
	return handle, nil
}

func (l *Loader) fetchAndDecode(ctx context.Context, d domain.ModelDescriptor) (domain.SceneGraph, error) {
	if d.URL == "" {
		return nil, fmt.Errorf("model %q has no url", d.Label)
	}
	data, err := l.fetch.GetBytes(ctx, d.URL)
	if err != nil {
		return nil, err
	}
	src, err := l.fetch.URL(d.URL)
	if err != nil {
		src = d.URL
	}
	return l.decode.Decode(src, data)
}

var _ domain.ModelSource = (*Loader)(nil)
