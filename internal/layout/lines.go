package layout

// Line is one run of items along the main axis of a container.
type Line struct {
	// Items in layout order. The container owns them.
	Items []NodeID

	// MainSize is the sum of the items' outer main sizes plus gaps.
	MainSize float64

	// CrossSize and CrossOffset place the line on the cross axis once the
	// content aligner ran.
	CrossSize   float64
	CrossOffset float64

	// crossMax is the largest outer cross size of the items.
	crossMax float64
}

// layoutLines partitions the container's flex items into lines and resolves
// their main-axis sizes and positions. Non-flex children are sized here too.
func (c *container) layoutLines() {
	t := c.tree
	n := c.node()
	main := mainAxis(&n.style)
	items := t.flexItems(n)

	c.lines = c.lines[:0]
	c.mainContent = 0
	c.minMain, c.minCross = -1, -1

	available := main.size(n)
	gap := n.style.Gap
	start := 0
	pos := 0.0
	for i, id := range items {
		item := t.nodes[id]
		t.layoutFlexItem(item)

		size := main.outerSize(item)
		if n.style.Wrap && i > start && pos+gap+size > available {
			c.layoutLine(items[start:i], pos)
			start, pos = i, 0
		}
		if i > start {
			pos += gap
		}
		pos += size
	}
	if start < len(items) {
		c.layoutLine(items[start:], pos)
	}

	for _, id := range n.children {
		child := t.nodes[id]
		if child.style.Absolute && !child.style.Hidden {
			t.layoutFlexItem(child)
		}
	}
}

// layoutLine distributes free space among the items of one line, positions
// them along the main axis and records the line.
func (c *container) layoutLine(items []NodeID, contentSize float64) {
	t := c.tree
	n := c.node()
	main := mainAxis(&n.style)
	cross := crossAxis(&n.style)

	free := 0.0
	if c.hasBoundedMainAxis() {
		free = main.size(n) - contentSize
		switch {
		case free > 0:
			free -= t.grow(items, main, free)
		case free < 0 && n.style.Wrap && len(items) == 1:
			// An item wider than a wrapping container gets a line of its
			// own at full size.
		case free < 0:
			free += t.shrink(items, main, -free)
		}
	}

	gap := n.style.Gap
	before, between := spacing(n.style.JustifyContent, len(items), free)
	pos := before
	line := Line{Items: items}
	for i, id := range items {
		item := t.nodes[id]
		main.setPos(item, pos)
		size := main.outerSize(item)
		pos += size + gap + between

		if i > 0 {
			line.MainSize += gap
		}
		line.MainSize += size
		line.crossMax = max(line.crossMax, cross.outerSize(item))
	}

	c.lines = append(c.lines, line)
	c.mainContent = max(c.mainContent, line.MainSize)
}

// hasBoundedMainAxis reports whether lines are measured against the
// container's main size. A container that fits its main axis to its
// content has no free space to distribute.
func (c *container) hasBoundedMainAxis() bool {
	return c.state == StateResizingMain || c.mainImposed || !c.isMainAxisFitToContents()
}

// mainMinSize is the smallest main size that holds every item without
// overflow. With several lines the current main size is the minimum.
func (c *container) mainMinSize() float64 {
	if c.minMain >= 0 {
		return c.minMain
	}
	n := c.node()
	main := mainAxis(&n.style)
	switch len(c.lines) {
	case 0:
		c.minMain = 0
	case 1:
		total := 0.0
		for i, id := range c.lines[0].Items {
			if i > 0 {
				total += n.style.Gap
			}
			total += c.tree.itemOuterMinSize(c.tree.nodes[id], main)
		}
		c.minMain = total
	default:
		c.minMain = main.size(n)
	}
	return c.minMain
}

// crossMinSize is the sum over lines of the largest item cross minimum.
func (c *container) crossMinSize() float64 {
	if c.minCross >= 0 {
		return c.minCross
	}
	cross := crossAxis(&c.node().style)
	total := 0.0
	for _, line := range c.lines {
		largest := 0.0
		for _, id := range line.Items {
			largest = max(largest, c.tree.itemOuterMinSize(c.tree.nodes[id], cross))
		}
		total += largest
	}
	c.minCross = total
	return total
}
