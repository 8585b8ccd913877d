package state

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by ParseAction for names it does not know.
var ErrUnknownAction = errors.New("unknown action")

type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolText
	ToolBrush
)

var toolNames = map[Tool]string{
	ToolPencil: "pencil",
	ToolEraser: "eraser",
	ToolText:   "text",
	ToolBrush:  "brush",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeBezier
	ShapeRectangle
	ShapeCircle
	ShapeTriangle
	ShapeHexagon
)

var shapeNames = map[ShapeKind]string{
	ShapeLine:      "line",
	ShapeBezier:    "bezier",
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeTriangle:  "triangle",
	ShapeHexagon:   "hexagon",
}

func (s ShapeKind) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ActionKind tells which of the Action fields is meaningful.
type ActionKind int

const (
	ActionTool ActionKind = iota
	ActionSelect
	ActionShape
)

// Action is the drawing mode currently selected in the toolbar.
// It is comparable, so two actions can be checked with ==.
type Action struct {
	Kind  ActionKind
	Tool  Tool
	Shape ShapeKind
}

func ToolAction(t Tool) Action       { return Action{Kind: ActionTool, Tool: t} }
func ShapeAction(s ShapeKind) Action { return Action{Kind: ActionShape, Shape: s} }
func SelectAction() Action           { return Action{Kind: ActionSelect} }

// DefaultAction is the brush tool.
func DefaultAction() Action { return ToolAction(ToolBrush) }

func (a Action) IsTool(t Tool) bool       { return a.Kind == ActionTool && a.Tool == t }
func (a Action) IsShape(s ShapeKind) bool { return a.Kind == ActionShape && a.Shape == s }

// IsFreehand reports whether the action draws a sampled stroke path.
func (a Action) IsFreehand() bool {
	return a.IsTool(ToolPencil) || a.IsTool(ToolBrush) || a.IsTool(ToolEraser)
}

// HasOpacity reports whether the opacity control applies to the action.
func (a Action) HasOpacity() bool {
	switch a.Kind {
	case ActionSelect:
		return false
	case ActionShape:
		return true
	default:
		return a.Tool != ToolEraser
	}
}

// HasScale reports whether the scale control applies to the action.
func (a Action) HasScale() bool {
	return a.Kind == ActionTool
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSelect:
		return "select"
	case ActionShape:
		return "shape:" + a.Shape.String()
	default:
		return "tool:" + a.Tool.String()
	}
}

// ParseAction reads the form produced by Action.String:
// "select", "tool:<name>" or "shape:<name>".
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "select" {
		return SelectAction(), nil
	}

	kind, name, ok := strings.Cut(s, ":")
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}

	switch kind {
	case "tool":
		for t, n := range toolNames {
			if n == name {
				return ToolAction(t), nil
			}
		}
	case "shape":
		for k, n := range shapeNames {
			if n == name {
				return ShapeAction(k), nil
			}
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}
