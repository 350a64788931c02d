package layout

// axis selects one physical dimension. It carries no state beyond the
// direction flags it was built from.
type axis struct {
	horizontal bool
	reverse    bool // Items run end-to-start along this axis
}

// containerAxis returns the main (isMain) or cross axis of a container.
// Only the main axis can run in reverse.
func containerAxis(s *Style, isMain bool) axis {
	if isMain {
		return axis{horizontal: s.IsHorizontal(), reverse: s.Reverse}
	}
	return axis{horizontal: !s.IsHorizontal()}
}

func mainAxis(s *Style) axis  { return containerAxis(s, true) }
func crossAxis(s *Style) axis { return containerAxis(s, false) }

func (a axis) basis(s *Style) float64 {
	if a.horizontal {
		return s.Width
	}
	return s.Height
}

func (a axis) minSize(s *Style) float64 {
	if a.horizontal {
		return s.MinWidth
	}
	return s.MinHeight
}

func (a axis) maxSize(s *Style) float64 {
	if a.horizontal {
		return s.MaxWidth
	}
	return s.MaxHeight
}

func (a axis) padding(s *Style) float64 {
	if a.horizontal {
		return s.Padding.Horizontal()
	}
	return s.Padding.Vertical()
}

// paddingOffset returns the padding before the content box. Start and end
// padding swap when the axis runs in reverse.
func (a axis) paddingOffset(s *Style) float64 {
	switch {
	case a.horizontal && a.reverse:
		return s.Padding.Right
	case a.horizontal:
		return s.Padding.Left
	case a.reverse:
		return s.Padding.Bottom
	default:
		return s.Padding.Top
	}
}

func (a axis) margin(s *Style) float64 {
	if a.horizontal {
		return s.Margin.Horizontal()
	}
	return s.Margin.Vertical()
}

// marginOffset returns the physical leading margin of an item.
func (a axis) marginOffset(s *Style) float64 {
	if a.horizontal {
		return s.Margin.Left
	}
	return s.Margin.Top
}

func (a axis) size(n *node) float64 {
	if a.horizontal {
		return n.w
	}
	return n.h
}

func (a axis) setSize(n *node, v float64) {
	if a.horizontal {
		n.w = v
	} else {
		n.h = v
	}
}

func (a axis) pos(n *node) float64 {
	if a.horizontal {
		return n.x
	}
	return n.y
}

func (a axis) setPos(n *node, v float64) {
	if a.horizontal {
		n.x = v
	} else {
		n.y = v
	}
}

// outerSize returns the resolved size plus padding and margin.
func (a axis) outerSize(n *node) float64 {
	return a.size(n) + a.padding(&n.style) + a.margin(&n.style)
}

// clampSize restricts v to [minVal, maxVal]; a zero maxVal means no
// maximum. If minVal > maxVal, minVal wins (matches CSS behavior).
func clampSize(v, minVal, maxVal float64) float64 {
	if maxVal > 0 && v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return max(v, 0)
}
