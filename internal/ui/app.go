package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	paintcanvas "LocalPaint/internal/canvas"
	"LocalPaint/internal/config"
	"LocalPaint/internal/host"
)

// Build lays out the toolbar, side panel and canvas for h.
func Build(h *host.Host, painter paintcanvas.Painter, cfg config.Config) (fyne.CanvasObject, *CanvasWidget) {
	board := NewCanvasWidget(h, painter, fyne.NewSize(cfg.Canvas.MinWidth, cfg.Canvas.MinHeight))

	toolbar := NewToolbar(h, board)
	top := toolbar.Top()
	side := toolbar.Side()

	return container.NewBorder(top, nil, side, nil, board), board
}

func RunApp(h *host.Host, painter paintcanvas.Painter, cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	content, board := Build(h, painter, cfg)
	myWindow.SetContent(content)
	myWindow.Canvas().Focus(board)
	myWindow.ShowAndRun()
}
