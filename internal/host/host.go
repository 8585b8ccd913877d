// Package host owns the paint session: the selected tool, color, opacity
// and scale, and the ordered list of committed primitives.
package host

import (
	"log/slog"

	"LocalPaint/internal/canvas"
	"LocalPaint/internal/gesture"
	"LocalPaint/internal/logging"
	"LocalPaint/internal/state"
)

const (
	MaxOpacity = 1.0
	MaxScale   = 3.0
)

// Controls says which style sliders the side panel shows.
type Controls struct {
	Opacity bool
	Scale   bool
}

type Host struct {
	action   state.Action
	color    state.PaintColor
	opacity  float32
	scale    float32
	drawings []state.Primitive
	surface  *canvas.Surface
	log      *slog.Logger

	// OnCommit is called after a committed primitive was appended.
	OnCommit func(state.Primitive)
}

// Options seeds a new host.
type Options struct {
	Action  state.Action
	Color   state.PaintColor
	Opacity float32
	Scale   float32
}

func DefaultOptions() Options {
	return Options{
		Action:  state.DefaultAction(),
		Color:   state.DefaultColor(),
		Opacity: 1,
		Scale:   1,
	}
}

func New(surface *canvas.Surface, opts Options) *Host {
	h := &Host{
		surface: surface,
		log:     logging.For("host"),
	}
	surface.OnClear = h.dropDrawings

	h.SetAction(opts.Action)
	h.opacity = clamp(opts.Opacity, 0, MaxOpacity)
	h.SetColor(opts.Color)
	h.SetScale(opts.Scale)
	return h
}

func (h *Host) Surface() *canvas.Surface { return h.surface }
func (h *Host) Action() state.Action     { return h.action }
func (h *Host) Color() state.PaintColor  { return h.color }
func (h *Host) Opacity() float32         { return h.opacity }
func (h *Host) Scale() float32           { return h.scale }

func (h *Host) Controls() Controls {
	return Controls{Opacity: h.action.HasOpacity(), Scale: h.action.HasScale()}
}

// Palette is the toolbar palette with black at the current opacity.
func (h *Host) Palette() [18]state.PaintColor {
	return state.Palette(h.opacity)
}

func (h *Host) SetAction(a state.Action) {
	h.action = a
	h.surface.SetAction(a)
}

// SetColor selects a palette entry. Empty slots are inert.
func (h *Host) SetColor(c state.PaintColor) {
	if c.IsEmpty() {
		return
	}
	h.color = c
	h.pushColor()
}

func (h *Host) SetOpacity(opacity float32) {
	h.opacity = clamp(opacity, 0, MaxOpacity)
	h.pushColor()
}

func (h *Host) SetScale(scale float32) {
	h.scale = clamp(scale, 0, MaxScale)
	h.surface.SetScale(h.scale)
}

// Clear empties the drawing and the surface cache.
func (h *Host) Clear() {
	h.surface.Clear()
}

// Handle dispatches one canvas event and keeps any committed primitive.
func (h *Host) Handle(ev gesture.Event) gesture.Status {
	status, prim := h.surface.Dispatch(ev)
	if prim == nil {
		return status
	}

	h.drawings = append(h.drawings, prim)
	h.log.Debug("primitive added", "kind", prim.Kind().String(), "count", len(h.drawings))
	if h.OnCommit != nil {
		h.OnCommit(prim)
	}
	return status
}

// Drawings returns the committed primitives, oldest first.
func (h *Host) Drawings() []state.Primitive {
	out := make([]state.Primitive, len(h.drawings))
	copy(out, h.drawings)
	return out
}

func (h *Host) pushColor() {
	h.surface.SetColor(h.color.WithOpacity(h.opacity).NRGBA())
}

func (h *Host) dropDrawings() {
	h.log.Info("drawing cleared", "dropped", len(h.drawings))
	h.drawings = nil
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
