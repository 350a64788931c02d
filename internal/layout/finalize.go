package layout

// finalize converts the resolved geometry of the subtree rooted at id into
// absolute layouts in a single recursive pass. A flex item is finalized
// from its parent's point of view so padding and reverse order apply.
func (t *Tree) finalize(id NodeID) {
	n := t.nodes[id]
	if t.isFlexItem(n) {
		t.finalizeItem(t.nodes[n.parent], n)
	} else {
		t.finalizeDetached(n)
	}
	t.finalizeChildren(n)
}

// finalizeChildren finalizes every child of n and recurses. Children of a
// deferred container keep their previous layout until it is observed.
func (t *Tree) finalizeChildren(n *node) {
	if !n.isContainer() || n.ctr.state == StateDeferred {
		return
	}
	for _, id := range n.children {
		child := t.nodes[id]
		switch {
		case child.style.Hidden:
			child.layout = Layout{}
			continue
		case child.style.Absolute:
			t.finalizeDetached(child)
		default:
			t.finalizeItem(n, child)
		}
		t.finalizeChildren(child)
	}
}

// finalizeItem places a flex item inside its container's border box.
// Reverse containers mirror the main position without storing it, so
// finalizing twice gives the same result.
func (t *Tree) finalizeItem(parent, item *node) {
	main := mainAxis(&parent.style)
	cross := crossAxis(&parent.style)

	var mainOff float64
	if main.reverse {
		// The leading padding of a reverse axis sits at the far end.
		border := main.size(parent) + main.padding(&parent.style)
		mainOff = border - main.paddingOffset(&parent.style) - (main.pos(item) + main.outerSize(item))
	} else {
		mainOff = main.paddingOffset(&parent.style) + main.pos(item)
	}
	mainOff += main.marginOffset(&item.style)
	crossOff := cross.paddingOffset(&parent.style) + cross.pos(item) + cross.marginOffset(&item.style)

	off := Point{X: mainOff, Y: crossOff}
	if !main.horizontal {
		off = Point{X: crossOff, Y: mainOff}
	}
	r := parent.layout.Rect
	t.setLayout(item, Point{X: r.X, Y: r.Y}, off, item.w, item.h)
}

// finalizeDetached places a root or an Absolute child at its configured
// position, relative to the parent's border box when it has one.
func (t *Tree) finalizeDetached(n *node) {
	base := Point{}
	if n.parent != NoNode {
		r := t.nodes[n.parent].layout.Rect
		base = Point{X: r.X, Y: r.Y}
	}
	t.setLayout(n, base, Point{X: n.style.X, Y: n.style.Y}, n.w, n.h)
}

// setLayout stores the layout of a node whose border box sits at off
// relative to base, with content size w x h.
func (t *Tree) setLayout(n *node, base, off Point, w, h float64) {
	pos := base.Add(off)
	rect := Rect{
		X:      pos.X,
		Y:      pos.Y,
		Width:  w + n.style.Padding.Horizontal(),
		Height: h + n.style.Padding.Vertical(),
	}
	n.layout = Layout{
		Rect:        rect,
		ContentRect: rect.Inset(n.style.Padding),
		Offset:      off,
	}
}
