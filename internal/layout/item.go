package layout

// resetLayoutSize sets both axes of n from its basis, falling back to the
// measured content size for leaves, clamped by min/max.
func (t *Tree) resetLayoutSize(n *node) {
	var content Size
	if n.measure != nil && !n.isContainer() {
		content = n.measure()
	}
	w, h := n.style.Width, n.style.Height
	if w == 0 {
		w = content.Width
	}
	if h == 0 {
		h = content.Height
	}
	n.w = clampSize(w, n.style.MinWidth, n.style.MaxWidth)
	n.h = clampSize(h, n.style.MinHeight, n.style.MaxHeight)
}

// layoutFlexItem gives an item its hypothetical size before the line it
// lands on distributes space. Containers resolve their own content first.
// A deferred container starts from the natural size it had when deferred;
// when that is unknown the container is resolved here.
func (t *Tree) layoutFlexItem(n *node) {
	if n.isContainer() {
		c := n.ctr
		if c.state == StateDeferred && c.hasNatural {
			mainAxis(&n.style).setSize(n, c.naturalMain)
			crossAxis(&n.style).setSize(n, c.naturalCross)
			return
		}
		c.updateTreeLayout()
		return
	}
	t.resetLayoutSize(n)
	n.dirty = false
}

// resizeItem imposes size on one physical axis of an item. A container
// item re-enters its own layout on the matching axis.
func (t *Tree) resizeItem(n *node, horizontal bool, size float64) {
	a := axis{horizontal: horizontal}
	if a.size(n) == size {
		return
	}
	if !n.isContainer() {
		a.setSize(n, size)
		return
	}
	if n.style.IsHorizontal() == horizontal {
		n.ctr.resizeMainAxis(size)
	} else {
		n.ctr.resizeCrossAxis(size)
	}
}

// itemMinSize returns the smallest content-box size an item accepts on an
// axis when its line shrinks it.
func (t *Tree) itemMinSize(n *node, horizontal bool) float64 {
	a := axis{horizontal: horizontal}
	var m float64
	switch {
	case n.isContainer():
		m = n.ctr.axisMinSize(horizontal)
	case n.style.Shrink == 0:
		m = t.baseSize(n, a)
	}
	return max(m, a.minSize(&n.style))
}

// itemOuterMinSize is itemMinSize plus padding and margin.
func (t *Tree) itemOuterMinSize(n *node, a axis) float64 {
	return t.itemMinSize(n, a.horizontal) + a.padding(&n.style) + a.margin(&n.style)
}

// baseSize is the basis of a leaf on an axis, or its measured size.
func (t *Tree) baseSize(n *node, a axis) float64 {
	if b := a.basis(&n.style); b != 0 {
		return b
	}
	if n.measure != nil {
		m := n.measure()
		if a.horizontal {
			return m.Width
		}
		return m.Height
	}
	return 0
}

// resetNonFlexLayout replaces the finalized layout with the node's own
// configured position and basis.
func (t *Tree) resetNonFlexLayout(n *node) {
	off := Point{X: n.style.X, Y: n.style.Y}
	base := Point{}
	if n.parent != NoNode {
		r := t.nodes[n.parent].layout.Rect
		base = Point{X: r.X, Y: r.Y}
	}
	t.setLayout(n, base, off, n.style.Width, n.style.Height)
}

// mustUpdateDeferred records that a deferred subtree has to be recomputed
// once it is observed again.
func (t *Tree) mustUpdateDeferred(id NodeID) {
	t.MarkDirty(id)
}
