// Package canvas is the drawing surface between the host and the gesture
// machine. It forwards events with the live action and style, keeps the
// committed layer cached and composes the visible frame.
package canvas

import (
	"image"
	"image/color"
	"log/slog"

	"LocalPaint/internal/gesture"
	"LocalPaint/internal/logging"
	"LocalPaint/internal/state"
)

// Painter rasterizes frames. Content draws the background and the committed
// primitives back to front; Overlay draws a gesture preview over a copy of
// base. Geometry is in canvas units and pixelScale is the number of device
// pixels per unit.
type Painter interface {
	Content(size state.Size, pixelScale float32, background color.Color, primitives []state.Primitive) image.Image
	Overlay(base image.Image, pixelScale float32, o gesture.Overlay) image.Image
}

type Surface struct {
	machine    *gesture.Machine
	cache      Cache
	composed   composedFrame
	pixelScale float32
	action     state.Action
	style      state.Style
	background color.NRGBA
	log        *slog.Logger

	// OnClear asks the owner of the primitive list to empty it.
	OnClear func()
}

func NewSurface() *Surface {
	return &Surface{
		machine:    gesture.NewMachine(),
		action:     state.DefaultAction(),
		style:      state.Style{Color: state.DefaultColor().NRGBA(), Scale: 1},
		background: state.IvoryBackground,
		pixelScale: 1,
		log:        logging.For("canvas"),
	}
}

func (s *Surface) Action() state.Action { return s.action }
func (s *Surface) Style() state.Style   { return s.style }

// Pending exposes the gesture in progress, nil when idle.
func (s *Surface) Pending() gesture.Pending { return s.machine.Pending() }

// SetAction switches the drawing mode. A gesture started under another
// action is abandoned.
func (s *Surface) SetAction(a state.Action) {
	if a == s.action {
		return
	}
	if s.machine.Pending() != nil {
		s.log.Debug("tool switch abandons gesture", "from", s.action.String(), "to", a.String())
		s.machine.Reset()
	}
	s.action = a
}

func (s *Surface) SetColor(c color.NRGBA) { s.style.Color = c }
func (s *Surface) SetScale(scale float32) { s.style.Scale = scale }

// SetBackground changes the fill behind the primitives.
func (s *Surface) SetBackground(c color.NRGBA) {
	if c != s.background {
		s.background = c
		s.cache.Clear()
	}
}

// SetPixelScale sets the device pixels per canvas unit. Values that are not
// positive mean 1.
func (s *Surface) SetPixelScale(k float32) {
	if k <= 0 {
		k = 1
	}
	s.pixelScale = k
}

func (s *Surface) PixelScale() float32 { return s.pixelScale }

// Clear abandons any gesture in progress, drops the cached layer and asks
// the host to empty its list.
func (s *Surface) Clear() {
	if s.machine.Pending() != nil {
		s.log.Debug("clear abandons gesture", "pending", s.machine.Pending())
		s.machine.Reset()
	}
	s.cache.Clear()
	if s.OnClear != nil {
		s.OnClear()
	}
}

// Dispatch runs ev through the gesture machine with the current action
// and style.
func (s *Surface) Dispatch(ev gesture.Event) (gesture.Status, state.Primitive) {
	return s.machine.Update(ev, s.action, s.style)
}

func (s *Surface) Interaction(over bool) gesture.Interaction {
	return s.machine.Interaction(over)
}

// Render composes the frame: background, committed primitives, then the
// pending gesture preview if any. An empty size yields a blank image
// without calling p.
func (s *Surface) Render(p Painter, size state.Size, primitives []state.Primitive, cursor gesture.Cursor) image.Image {
	if size.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	k := s.pixelScale
	content := s.cache.Draw(size, k, primitives, func() image.Image {
		return p.Content(size, k, s.background, primitives)
	})

	overlay := s.machine.Overlay(s.style, cursor, size)
	if overlay.Empty() {
		return content
	}
	return s.composed.Draw(content, k, overlay, func() image.Image {
		return p.Overlay(content, k, overlay)
	})
}
