package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/host"
	"LocalPaint/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.PaintColor
	size     float32
	OnTapped func(state.PaintColor)
	rect     *canvas.Rectangle
}

func newColorSwatch(c state.PaintColor, size float32, tapped func(state.PaintColor)) *colorSwatch {
	s := &colorSwatch{Color: c, size: size, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c state.PaintColor) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(s.size, s.size))
	s.rect.CornerRadius = s.size / 2

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 0.5
	border.CornerRadius = s.size / 2

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil && !s.Color.IsEmpty() {
		s.OnTapped(s.Color)
	}
}

// Toolbar is the strip above the canvas plus the style side panel.
type Toolbar struct {
	host    *host.Host
	board   *CanvasWidget
	buttons map[state.Action]*widget.Button
	current *colorSwatch
	swatches []*colorSwatch
	sliders struct{ opacity, scale *widget.Slider }
	opacity fyne.CanvasObject
	scale   fyne.CanvasObject
	spacer  fyne.CanvasObject
}

func NewToolbar(h *host.Host, board *CanvasWidget) *Toolbar {
	return &Toolbar{
		host:    h,
		board:   board,
		buttons: make(map[state.Action]*widget.Button),
	}
}

func (t *Toolbar) actionButton(label string, a state.Action) *widget.Button {
	b := widget.NewButton(label, func() { t.selectAction(a) })
	t.buttons[a] = b
	return b
}

func (t *Toolbar) selectAction(a state.Action) {
	t.commitText()
	t.host.SetAction(a)
	t.refresh()
	t.board.Refresh()
}

// commitText ends any text box on the canvas, as a click outside it would.
func (t *Toolbar) commitText() {
	if t.board != nil {
		t.board.PressOutside()
	}
}

func (t *Toolbar) refresh() {
	for a, b := range t.buttons {
		if a == t.host.Action() {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}

	controls := t.host.Controls()
	setVisible(t.opacity, controls.Opacity)
	setVisible(t.scale, controls.Scale)
	setVisible(t.spacer, controls.Opacity || controls.Scale)
	if t.current != nil {
		t.current.SetColor(t.host.Color().WithOpacity(t.host.Opacity()))
	}
}

// group stacks a set of controls over a caption, like the toolbar sections.
func group(caption string, content fyne.CanvasObject) fyne.CanvasObject {
	label := widget.NewLabel(caption)
	label.Alignment = fyne.TextAlignCenter
	return container.NewBorder(nil, label, nil, nil, container.NewCenter(content))
}

func (t *Toolbar) Top() fyne.CanvasObject {
	selector := t.actionButton("Select", state.SelectAction())

	tools := container.NewGridWithColumns(2,
		t.actionButton("Pencil", state.ToolAction(state.ToolPencil)),
		t.actionButton("Eraser", state.ToolAction(state.ToolEraser)),
		t.actionButton("Text", state.ToolAction(state.ToolText)),
		t.actionButton("Brush", state.ToolAction(state.ToolBrush)),
	)

	shapes := container.NewGridWithColumns(3,
		t.actionButton("Line", state.ShapeAction(state.ShapeLine)),
		t.actionButton("Bezier", state.ShapeAction(state.ShapeBezier)),
		t.actionButton("Triangle", state.ShapeAction(state.ShapeTriangle)),
		t.actionButton("Rectangle", state.ShapeAction(state.ShapeRectangle)),
		t.actionButton("Circle", state.ShapeAction(state.ShapeCircle)),
		t.actionButton("Hexagon", state.ShapeAction(state.ShapeHexagon)),
	)

	// --- Color Palette ---
	onColorTapped := func(c state.PaintColor) {
		t.commitText()
		t.host.SetColor(c)
		t.refresh()
	}
	rows := [3]*fyne.Container{container.NewHBox(), container.NewHBox(), container.NewHBox()}
	for i, c := range t.host.Palette() {
		swatch := newColorSwatch(c, 20, onColorTapped)
		t.swatches = append(t.swatches, swatch)
		rows[min(i/6, 2)].Add(swatch)
	}
	t.current = newColorSwatch(t.host.Color(), 35, nil)
	colors := container.NewHBox(
		container.NewCenter(t.current),
		container.NewVBox(rows[0], rows[1], rows[2]),
	)

	return container.NewHBox(
		group("Selection", selector),
		widget.NewSeparator(),
		group("Tools", tools),
		widget.NewSeparator(),
		group("Shapes", shapes),
		widget.NewSeparator(),
		group("Colors", colors),
		layout.NewSpacer(),
	)
}

func (t *Toolbar) Side() fyne.CanvasObject {
	clearButton := widget.NewButton("Clear", func() {
		t.commitText()
		t.host.Clear()
		t.board.Refresh()
	})

	opacity := widget.NewSlider(0, host.MaxOpacity)
	opacity.Step = 0.05
	opacity.Orientation = widget.Vertical
	opacity.SetValue(float64(t.host.Opacity()))
	opacity.OnChanged = func(v float64) {
		t.commitText()
		t.host.SetOpacity(float32(v))
		t.refresh()
	}

	scale := widget.NewSlider(0, host.MaxScale)
	scale.Step = 0.1
	scale.Orientation = widget.Vertical
	scale.SetValue(float64(t.host.Scale()))
	scale.OnChanged = func(v float64) {
		t.commitText()
		t.host.SetScale(float32(v))
	}

	t.sliders.opacity, t.sliders.scale = opacity, scale
	t.opacity = slider("Opacity", opacity)
	t.scale = slider("Scale", scale)
	t.spacer = layout.NewSpacer()

	controls := container.NewHBox(t.opacity, t.scale)
	panel := container.NewVBox(clearButton, t.spacer, controls)

	t.refresh()
	return container.NewCenter(panel)
}

func slider(caption string, s *widget.Slider) fyne.CanvasObject {
	box := container.NewGridWrap(fyne.NewSize(40, 300), s)
	return container.NewBorder(nil, widget.NewLabel(caption), nil, nil, box)
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if o == nil {
		return
	}
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}
