// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how items are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how items are aligned on the cross axis of their line.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how lines are placed on the cross axis.
type AlignContent = layout.AlignContent

const (
	AlignContentStart        = layout.AlignContentStart
	AlignContentEnd          = layout.AlignContentEnd
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
	AlignContentSpaceEvenly  = layout.AlignContentSpaceEvenly
	AlignContentStretch      = layout.AlignContentStretch
	AlignContentOverlap      = layout.AlignContentOverlap
)

// State is the layout state of a container.
type State = layout.State

const (
	StateClean         = layout.StateClean
	StateDeferred      = layout.StateDeferred
	StateResizingMain  = layout.StateResizingMain
	StateResizingCross = layout.StateResizingCross
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Layout holds the finalized geometry of a node.
type Layout = layout.Layout

// Line is one row (or column) of flex items.
type Line = layout.Line

// Stats counts layout work done by a Tree.
type Stats = layout.Stats

// Tree owns every node of one layout tree.
type Tree = layout.Tree

// NodeID identifies a node within its Tree.
type NodeID = layout.NodeID

// NoNode is the NodeID of a missing node.
const NoNode = layout.NoNode

// MeasureFunc reports the intrinsic size of a leaf.
type MeasureFunc = layout.MeasureFunc

// Option configures a Tree.
type Option = layout.Option

// NewTree creates an empty tree.
func NewTree(opts ...Option) *Tree {
	return layout.NewTree(opts...)
}

// WithLogger sends the tree's debug events to logger.
func WithLogger(logger *zap.Logger) Option {
	return layout.WithLogger(logger)
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a Rect.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
