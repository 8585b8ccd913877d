package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	paintcanvas "LocalPaint/internal/canvas"
	"LocalPaint/internal/gesture"
	"LocalPaint/internal/host"
	"LocalPaint/internal/state"
)

// CanvasWidget turns fyne pointer and keyboard callbacks into gesture
// events for the host and shows the rendered frame.
type CanvasWidget struct {
	widget.BaseWidget
	host    *host.Host
	painter paintcanvas.Painter
	minSize fyne.Size

	cursor  gesture.Cursor
	hovered bool
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ fyne.Focusable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)
var _ desktop.Cursorable = (*CanvasWidget)(nil)

func NewCanvasWidget(h *host.Host, painter paintcanvas.Painter, minSize fyne.Size) *CanvasWidget {
	w := &CanvasWidget{
		host:    h,
		painter: painter,
		minSize: minSize,
		cursor:  gesture.Outside,
	}
	w.ExtendBaseWidget(w)
	return w
}

// cursorAt converts a widget-relative position, flagging positions beyond
// the widget bounds.
func (w *CanvasWidget) cursorAt(pos fyne.Position) gesture.Cursor {
	size := w.Size()
	in := pos.X >= 0 && pos.Y >= 0 && pos.X <= size.Width && pos.Y <= size.Height
	return gesture.Cursor{Position: state.Pt(pos.X, pos.Y), In: in}
}

func (w *CanvasWidget) handle(ev gesture.Event) {
	if w.host.Handle(ev) == gesture.Captured || ev.Kind == gesture.Move {
		w.Refresh()
	}
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	w.requestFocus()
	w.cursor = w.cursorAt(e.Position)
	w.handle(gesture.Event{Kind: gesture.Press, Button: button(e.Button), Cursor: w.cursor})
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	w.cursor = w.cursorAt(e.Position)
	w.handle(gesture.Event{Kind: gesture.Release, Button: button(e.Button), Cursor: w.cursor})
}

func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	w.cursor = w.cursorAt(e.Position)
	w.handle(gesture.MoveTo(w.cursor))
}

func (w *CanvasWidget) DragEnd() {}

func (w *CanvasWidget) MouseIn(e *desktop.MouseEvent) {
	w.hovered = true
	w.cursor = w.cursorAt(e.Position)
	w.Refresh()
}

func (w *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	w.cursor = w.cursorAt(e.Position)
	w.handle(gesture.MoveTo(w.cursor))
}

func (w *CanvasWidget) MouseOut() {
	w.hovered = false
	w.cursor = gesture.Outside
	w.Refresh()
}

func (w *CanvasWidget) Cursor() desktop.Cursor {
	switch w.host.Surface().Interaction(w.hovered) {
	case gesture.InteractionText:
		return desktop.TextCursor
	case gesture.InteractionCrosshair:
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (w *CanvasWidget) FocusGained() {}

// FocusLost also fires when the window is deactivated, so it leaves a text
// box open. Clicks elsewhere in the window arrive through PressOutside.
func (w *CanvasWidget) FocusLost() {}

// PressOutside delivers a press beyond the canvas. The toolbar calls it
// before acting so a text box being typed is committed first.
func (w *CanvasWidget) PressOutside() {
	w.handle(gesture.PressAt(gesture.Outside))
}

func (w *CanvasWidget) TypedRune(r rune) {
	w.handle(gesture.Typed(string(r)))
}

func (w *CanvasWidget) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyBackspace {
		w.handle(gesture.Typed(gesture.Backspace))
	}
}

func (w *CanvasWidget) requestFocus() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	if c := app.Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
}

// frame renders at the raster's pixel size. Fyne passes device pixels, so
// on a HiDPI screen w is a multiple of the widget width.
func (w *CanvasWidget) frame(pw, _ int) image.Image {
	size := w.Size()
	surface := w.host.Surface()
	if size.Width > 0 {
		surface.SetPixelScale(float32(pw) / size.Width)
	}
	return surface.Render(
		w.painter,
		state.Size{Width: size.Width, Height: size.Height},
		w.host.Drawings(),
		w.cursor,
	)
}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasWidgetRenderer{board: w}
	r.raster = canvas.NewRaster(w.frame)
	return r
}

type canvasWidgetRenderer struct {
	board  *CanvasWidget
	raster *canvas.Raster
}

func (r *canvasWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *canvasWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *canvasWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *canvasWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *canvasWidgetRenderer) Destroy() {}

func button(b desktop.MouseButton) gesture.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return gesture.Secondary
	case desktop.MouseButtonTertiary:
		return gesture.Tertiary
	}
	return gesture.Primary
}
