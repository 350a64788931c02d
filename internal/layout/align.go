package layout

// contentAligner places a container's lines, and the items inside them, on
// the cross axis.
type contentAligner struct {
	c     *container
	total float64
}

// init computes the total cross size of all lines. It runs before the
// container's cross size is final because fitting to content needs it.
func (a *contentAligner) init() {
	n := a.c.node()
	a.total = 0
	for _, line := range a.c.lines {
		if n.style.AlignContent == AlignContentOverlap {
			a.total = max(a.total, line.crossMax)
		} else {
			a.total += line.crossMax
		}
	}
}

// align positions every line per AlignContent, then every item per
// AlignSelf/AlignItems, using the container's final cross size.
func (a *contentAligner) align() {
	n := a.c.node()
	cross := crossAxis(&n.style)
	crossSize := cross.size(n)
	lines := a.c.lines
	if len(lines) == 0 {
		return
	}

	mode := n.style.AlignContent
	switch {
	case !n.style.Wrap || mode == AlignContentOverlap:
		// The single line of a non-wrapping container spans the container.
		for i := range lines {
			lines[i].CrossOffset = 0
			lines[i].CrossSize = crossSize
		}
	default:
		free := crossSize - a.total
		before, between := contentSpacing(mode, len(lines), free)
		extra := 0.0
		if mode == AlignContentStretch && free > 0 {
			extra = free / float64(len(lines))
		}
		pos := before
		for i := range lines {
			lines[i].CrossOffset = pos
			lines[i].CrossSize = lines[i].crossMax + extra
			pos += lines[i].CrossSize + between
		}
	}

	for i := range lines {
		a.alignItems(&lines[i])
	}
}

// alignItems positions the items of one line on the cross axis. Stretched
// items without a fixed cross basis are resized to the line's extent.
func (a *contentAligner) alignItems(line *Line) {
	t := a.c.tree
	n := a.c.node()
	cross := crossAxis(&n.style)

	for _, id := range line.Items {
		item := t.nodes[id]
		align := alignFor(&n.style, &item.style)
		if align == AlignStretch && cross.basis(&item.style) == 0 {
			target := line.CrossSize - cross.padding(&item.style) - cross.margin(&item.style)
			target = clampSize(target, cross.minSize(&item.style), cross.maxSize(&item.style))
			t.resizeItem(item, cross.horizontal, target)
		}
		offset := alignOffset(align, line.CrossSize, cross.outerSize(item))
		cross.setPos(item, line.CrossOffset+offset)
	}
}
