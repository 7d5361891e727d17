package xrsim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"arviewer/internal/domain"
	"arviewer/internal/scene"
	"arviewer/internal/services/arsession"
)

// Step ops.
const (
	OpFrame  = "frame"
	OpSelect = "select"
	OpSwitch = "switch"
	OpDrag   = "drag"
	OpRotate = "rotate"
	OpPinch  = "pinch"
	OpEnd    = "end"
	OpStart  = "start"
)

// Step is one scripted input.
type Step struct {
	Op      string    `json:"op"`
	At      []float64 `json:"at,omitempty"`
	Pose    []float64 `json:"pose,omitempty"`
	Index   int       `json:"index,omitempty"`
	DX      float64   `json:"dx,omitempty"`
	DZ      float64   `json:"dz,omitempty"`
	Radians float64   `json:"radians,omitempty"`
	Factor  float64   `json:"factor,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	RefuseHitTest bool   `json:"refuseHitTest,omitempty"`
	Steps         []Step `json:"steps"`
}

// Result is the outcome of one step. Err is set for steps the machine
// rejected, such as a failed model load.
type Result struct {
	Step int
	Op   string
	Err  error
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	return ParseScript(f)
}

// ParseScript decodes and validates a script.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return s, nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpSelect, OpSwitch, OpDrag, OpRotate, OpPinch, OpEnd, OpStart:
		return nil
	case OpFrame:
		if st.At != nil && len(st.At) != 3 {
			return fmt.Errorf("frame: at needs 3 values, got %d", len(st.At))
		}
		if st.Pose != nil {
			if _, err := scene.MatrixFromSlice(st.Pose); err != nil {
				return fmt.Errorf("frame: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
}

// Frame builds the frame a frame step describes.
func (st Step) Frame() Frame {
	switch {
	case st.Pose != nil:
		m, err := scene.MatrixFromSlice(st.Pose)
		if err != nil {
			return Frame{}
		}
		return Frame{Hits: []domain.HitTestResult{{Pose: m}}}
	case len(st.At) == 3:
		return Frame{Hits: []domain.HitTestResult{{Pose: mgl64.Translate3D(st.At[0], st.At[1], st.At[2])}}}
	default:
		return Frame{}
	}
}

// Run starts m on a simulated session and replays s. Per-step rejections
// are reported in the results; Run itself fails only when the session
// cannot start or ctx ends.
func Run(ctx context.Context, m *arsession.Machine, s Script) ([]Result, *Session, error) {
	session := &Session{RefuseHitTest: s.RefuseHitTest}
	if err := m.Start(ctx, session); err != nil {
		return nil, session, err
	}

	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, session, err
		}
		results = append(results, Result{Step: i, Op: st.Op, Err: apply(ctx, m, session, st)})
	}
	return results, session, nil
}

func apply(ctx context.Context, m *arsession.Machine, session *Session, st Step) error {
	switch st.Op {
	case OpFrame:
		m.Frame(st.Frame())
	case OpSelect:
		return m.Select(ctx)
	case OpSwitch:
		return m.Switch(ctx, st.Index)
	case OpDrag:
		m.Drag(st.DX, st.DZ)
	case OpRotate:
		m.Rotate(st.Radians)
	case OpPinch:
		m.Pinch(st.Factor)
	case OpEnd:
		m.End()
	case OpStart:
		if err := m.Start(ctx, session); err != nil && !errors.Is(err, domain.ErrSessionEnded) {
			return err
		}
	}
	return nil
}
