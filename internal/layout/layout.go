package layout

// Layout holds the finalized position and size of a node.
type Layout struct {
	// Rect is the border box in absolute coordinates: position after the
	// node's margin, size including padding.
	Rect Rect

	// ContentRect is Rect minus padding, where children are placed.
	ContentRect Rect

	// Offset is the border box position relative to the parent's border
	// box. For roots it equals the configured X/Y.
	Offset Point
}
