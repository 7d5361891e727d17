package arsession

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"arviewer/internal/domain"
	"arviewer/internal/scene"
)

// Scale bounds applied to pinch gestures.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Default texts used when the bundle lacks them.
const (
	DefaultErrorText    = "Помилка"
	DefaultPurchaseText = "Замовити"
	loadFailedSuffix    = " завантаження моделі"
)

// PlacedModel is the single model instance in the scene.
type PlacedModel struct {
	Index     int
	Instance  domain.SceneGraph
	Transform domain.Transform
}

// Controls is the model-switch and purchase surface shown after the first
// placement.
type Controls struct {
	Visible       bool
	Buttons       []string
	PurchaseURL   string
	PurchaseLabel string
}

// Snapshot is a copy of the machine state.
type Snapshot struct {
	State     domain.ARState
	SessionID string
	HitTest   domain.HitTestState
	Placed    *PlacedModel
	Loading   bool
}

// Machine is the AR session state machine.
type Machine struct {
	models    domain.ModelSource
	params    domain.SessionParams
	bundle    domain.Bundle
	presenter domain.Presenter
	logger    *slog.Logger

	mu        sync.Mutex
	active    bool
	sessionID string
	gen       uint64
	hit       domain.HitTestState
	xr        domain.XRSession
	source    domain.HitTestSource
	placed    *PlacedModel
	loading   bool
	exposed   bool
}

// New builds an idle Machine. A nil presenter discards events.
func New(
	models domain.ModelSource,
	p domain.SessionParams,
	bundle domain.Bundle,
	presenter domain.Presenter,
	logger *slog.Logger,
) *Machine {
	if presenter == nil {
		presenter = discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if bundle == nil {
		bundle = domain.Bundle{}
	}
	return &Machine{
		models:    models,
		params:    p,
		bundle:    bundle,
		presenter: presenter,
		logger:    logger.With("component", "arsession"),
		hit:       domain.HitTestState{Reticle: mgl64.Ident4()},
	}
}

// Start moves Idle to ReticleSearching: it requests a viewer reference
// space and then a hit-test source. The request is issued once per
// session; later calls return immediately. Start blocks until the source is
// granted or refused. The session is kept so Frame can request a new
// source once the last one is gone.
func (m *Machine) Start(ctx context.Context, session domain.XRSession) error {
	m.mu.Lock()
	if m.hit.SourceRequested {
		m.mu.Unlock()
		return nil
	}
	m.xr = session
	if !m.active {
		m.active = true
		m.sessionID = uuid.NewString()
		m.logger.InfoContext(ctx, "ar session started", "session", m.sessionID)
	}
	m.hit.SourceRequested = true
	gen := m.gen
	m.mu.Unlock()

	var src domain.HitTestSource
	space, err := session.RequestReferenceSpace(ctx, domain.ReferenceSpaceViewer)
	if err == nil {
		src, err = session.RequestHitTestSource(ctx, space)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || !m.active {
		if src != nil {
			src.Cancel()
		}
		return domain.ErrSessionEnded
	}
	if err != nil {
		m.hit.SourceRequested = false
		m.logger.WarnContext(ctx, "hit-test source unavailable", "session", m.sessionID, "error", err)
		return fmt.Errorf("request hit-test source: %w", err)
	}
	m.source = src
	m.hit.SourceReady = true
	return nil
}

// Frame runs one hit-test step. It is a no-op unless the session is
// searching for a surface. A searching session without a hit-test source,
// as after a failed switch or a refused request, asks for a new one in
// the background and hit-tests once it is granted.
func (m *Machine) Frame(frame domain.XRFrame) {
	var evs []domain.Event

	m.mu.Lock()
	if !m.active || m.placed != nil || m.loading {
		m.mu.Unlock()
		return
	}
	if m.source == nil {
		session := m.xr
		resume := session != nil && !m.hit.SourceRequested
		m.mu.Unlock()
		if resume {
			go func() { _ = m.Start(context.Background(), session) }()
		}
		return
	}
	results := frame.HitTestResults(m.source)
	if len(results) == 0 {
		if m.hit.ReticleVisible {
			m.hit.ReticleVisible = false
			evs = append(evs, m.event(domain.EventReticleLost, -1))
		}
		m.mu.Unlock()
		m.notify(evs)
		return
	}

	wasVisible := m.hit.ReticleVisible
	m.hit.ReticleVisible = true
	m.hit.Reticle = results[0].Pose
	if !wasVisible {
		ev := m.event(domain.EventReticleLocked, -1)
		ev.Transform = scene.FromMatrix(m.hit.Reticle)
		evs = append(evs, ev)
	}
	if !m.hit.ReticleReady {
		m.hit.ReticleReady = true
		evs = append(evs, m.event(domain.EventReticleReady, -1))
	}
	m.mu.Unlock()
	m.notify(evs)
}

// Select places model 0 at the reticle. It is ignored unless the reticle
// is visible and nothing is placed. A load failure alerts the user, keeps
// the reticle locked and returns an error wrapping domain.ErrModelLoad.
func (m *Machine) Select(ctx context.Context) error {
	m.mu.Lock()
	if !m.active || !m.hit.ReticleVisible || m.placed != nil || m.loading {
		m.mu.Unlock()
		return nil
	}
	m.loading = true
	at := scene.FromMatrix(m.hit.Reticle)
	gen := m.gen
	m.mu.Unlock()

	return m.place(ctx, gen, 0, at, domain.EventModelPlaced)
}

// Switch replaces the placed model with model i, keeping the current
// position, orientation and scale. It is ignored when nothing is placed.
// The old instance is removed before the new one loads, so a load failure
// leaves no model placed.
func (m *Machine) Switch(ctx context.Context, i int) error {
	var evs []domain.Event

	m.mu.Lock()
	if !m.active || m.placed == nil || m.loading {
		m.mu.Unlock()
		return nil
	}
	if n := len(m.models.Models()); i < 0 || i >= n {
		m.mu.Unlock()
		return fmt.Errorf("switch to model %d of %d: %w", i, n, domain.ErrIndexOutOfRange)
	}
	carried := m.placed.Transform
	evs = append(evs, m.event(domain.EventModelRemoved, m.placed.Index))
	m.placed = nil
	m.loading = true
	gen := m.gen
	m.mu.Unlock()
	m.notify(evs)

	return m.place(ctx, gen, i, carried, domain.EventModelSwitched)
}

func (m *Machine) place(ctx context.Context, gen uint64, i int, at domain.Transform, kind domain.EventKind) error {
	handle, err := m.models.LoadModelAtIndex(ctx, i)

	var evs []domain.Event
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return domain.ErrSessionEnded
	}
	m.loading = false
	if err != nil {
		evs = append(evs, m.event(domain.EventLoadFailed, i))
		session := m.sessionID
		m.mu.Unlock()

		m.logger.ErrorContext(ctx, "model placement failed", "session", session, "index", i, "error", err)
		m.notify(evs)
		m.presenter.Alert(m.bundle.Text("error", DefaultErrorText) + loadFailedSuffix)
		return err
	}

	m.placed = &PlacedModel{Index: i, Instance: handle.Clone(), Transform: at}
	if kind == domain.EventModelPlaced {
		// Placement ends surface search for this session.
		m.hit.ReticleVisible = false
		m.hit.SourceRequested = false
		m.hit.SourceReady = false
		if m.source != nil {
			m.source.Cancel()
			m.source = nil
		}
	}
	m.exposed = true
	ev := m.event(kind, i)
	ev.Transform = at
	ev.Buttons = m.buttons()
	ev.Purchase = m.purchaseURL()
	evs = append(evs, ev)
	m.mu.Unlock()

	m.notify(evs)
	return nil
}

// Drag moves the placed model on the floor plane.
func (m *Machine) Drag(dx, dz float64) (domain.Transform, bool) {
	return m.gesture(func(t domain.Transform) domain.Transform {
		return scene.Translate(t, dx, dz)
	})
}

// Rotate spins the placed model about the vertical axis.
func (m *Machine) Rotate(radians float64) (domain.Transform, bool) {
	return m.gesture(func(t domain.Transform) domain.Transform {
		return scene.RotateY(t, radians)
	})
}

// Pinch scales the placed model. It is ignored unless scaling was enabled
// through the query.
func (m *Machine) Pinch(factor float64) (domain.Transform, bool) {
	if !m.params.ScaleEnabled {
		return domain.Transform{}, false
	}
	return m.gesture(func(t domain.Transform) domain.Transform {
		return scene.ScaleBy(t, factor, MinScale, MaxScale)
	})
}

func (m *Machine) gesture(apply func(domain.Transform) domain.Transform) (domain.Transform, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.placed == nil {
		return domain.Transform{}, false
	}
	m.placed.Transform = apply(m.placed.Transform)
	return m.placed.Transform, true
}

// End returns to Idle from any state. It cancels the hit-test source,
// drops the placed model and invalidates in-flight requests. ReticleReady
// survives, so reticleReady is signalled once per Machine.
func (m *Machine) End() {
	m.mu.Lock()
	if m.source != nil {
		m.source.Cancel()
	}
	ev := m.event(domain.EventSessionEnded, -1)
	m.source = nil
	m.xr = nil
	// The reticle keeps its ready look across sessions.
	m.hit = domain.HitTestState{Reticle: mgl64.Ident4(), ReticleReady: m.hit.ReticleReady}
	m.placed = nil
	m.loading = false
	m.exposed = false
	m.active = false
	m.gen++
	session := m.sessionID
	m.mu.Unlock()

	m.logger.Info("ar session ended", "session", session)
	m.notify([]domain.Event{ev})
}

// State reports the coarse state.
func (m *Machine) State() domain.ARState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state()
}

func (m *Machine) state() domain.ARState {
	switch {
	case !m.active:
		return domain.Idle
	case m.placed != nil:
		return domain.ModelPlaced
	case m.hit.ReticleVisible:
		return domain.ReticleLocked
	default:
		return domain.ReticleSearching
	}
}

// Snapshot copies the full state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		State:     m.state(),
		SessionID: m.sessionID,
		HitTest:   m.hit,
		Loading:   m.loading,
	}
	if m.placed != nil {
		p := *m.placed
		s.Placed = &p
	}
	return s
}

// Controls returns the switch and purchase surface.
func (m *Machine) Controls() Controls {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.exposed {
		return Controls{}
	}
	c := Controls{Visible: true, Buttons: m.buttons(), PurchaseURL: m.purchaseURL()}
	if c.PurchaseURL != "" {
		c.PurchaseLabel = m.bundle.Text("byButton", DefaultPurchaseText)
	}
	return c
}

// Purchase returns the purchase URL once the controls are shown.
func (m *Machine) Purchase() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.purchaseURL()
	return u, u != ""
}

// Buttons returns one label per model: the bundle's textArButtons{i} or
// the descriptor label.
func (m *Machine) Buttons() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buttons()
}

func (m *Machine) buttons() []string {
	models := m.models.Models()
	out := make([]string, len(models))
	for i, d := range models {
		out[i] = m.bundle.Text(domain.ButtonKey(i+1), d.Label)
	}
	return out
}

func (m *Machine) purchaseURL() string {
	if !m.exposed || !m.params.HasByURL() {
		return ""
	}
	return m.params.ByURL
}

func (m *Machine) event(kind domain.EventKind, index int) domain.Event {
	ev := domain.Event{Kind: kind, SessionID: m.sessionID, Index: index}
	if index >= 0 {
		if models := m.models.Models(); index < len(models) {
			ev.Label = models[index].Label
		}
	}
	return ev
}

func (m *Machine) notify(evs []domain.Event) {
	for _, ev := range evs {
		m.presenter.Notify(ev)
	}
}

type discard struct{}

func (discard) ShowError(string) {}
func (discard) HideLoading() {}
func (discard) Alert(string) {}
func (discard) Notify(domain.Event) {}
