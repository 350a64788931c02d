package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Justify specifies how items are distributed along the main axis of a line.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center items
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each item
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how items are positioned on the cross axis of their line.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of the line
	AlignEnd                  // Align to end of the line
	AlignCenter               // Center within the line
	AlignStretch              // Stretch to fill the line
)

// AlignContent specifies how lines are positioned on the cross axis of a
// container.
type AlignContent uint8

const (
	AlignContentStart        AlignContent = iota // Stack lines at start
	AlignContentEnd                              // Stack lines at end
	AlignContentCenter                           // Stack lines centered
	AlignContentSpaceBetween                     // Even space between lines
	AlignContentSpaceAround                      // Even space around each line
	AlignContentSpaceEvenly                      // Equal space between and at edges
	AlignContentStretch                          // Grow lines to fill free space
	AlignContentOverlap                          // Every line starts at offset 0
)

// Style contains all layout properties for a node. The engine only reads
// it; resolved geometry is kept separately on the node record.
type Style struct {
	// Container properties
	Direction      Direction
	Reverse        bool // Items run end-to-start along the main axis
	Wrap           bool // Items may break into several lines
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Gap            float64 // Space between items (main axis only)

	// Basis. Zero means not fixed: the size fits the content.
	Width  float64
	Height float64

	// Position used when the node is not a flex item (roots and
	// Absolute children).
	X, Y float64

	// Constraints. Zero means unconstrained.
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64

	// Flex item properties
	Grow      float64 // How much to grow relative to siblings
	Shrink    float64 // How much to shrink relative to siblings (default 1)
	AlignSelf *Align  // Override parent's AlignItems (nil = inherit)
	Absolute  bool    // Not a flex item: placed at X/Y, sized by basis
	Hidden    bool    // Excluded from layout entirely

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Direction:  Row,
		AlignItems: AlignStretch,
		Shrink:     1.0,
	}
}

// IsHorizontal reports whether the main axis runs horizontally.
func (s Style) IsHorizontal() bool {
	return s.Direction == Row
}

// alignFor resolves the cross-axis alignment for an item inside a container.
func alignFor(container, item *Style) Align {
	if item.AlignSelf != nil {
		return *item.AlignSelf
	}
	return container.AlignItems
}
