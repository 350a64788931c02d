package layout

import (
	"go.uber.org/zap"
)

// State is the layout lifecycle state of a container.
type State uint8

const (
	StateClean         State = iota // Geometry reflects the configuration
	StateDeferred                   // Recomputation postponed until observed
	StateResizingMain               // Main size imposed from outside
	StateResizingCross              // Cross size imposed from outside
)

func (s State) String() string {
	switch s {
	case StateDeferred:
		return "deferred"
	case StateResizingMain:
		return "resizing-main"
	case StateResizingCross:
		return "resizing-cross"
	default:
		return "clean"
	}
}

// container is the layout record of a node with children. It is created
// the first time the node gains a child and is owned by that node only.
type container struct {
	tree  *Tree
	id    NodeID
	state State

	lines       []Line
	mainContent float64 // largest line main size
	totalCross  float64 // cross size of all lines

	// Minimum sizes, -1 until computed for the current lines.
	minMain, minCross float64

	// Set while an axis holds a size imposed by a resize. Fitting to
	// content never overrides it until the next full update.
	mainImposed, crossImposed bool

	// Sizes the subtree resolves to from its own basis, and the sizes the
	// current lines were computed for. A clean container whose lines match
	// its natural sizes needs no recomputation.
	hasCache bool

	cachedMain, cachedCross float64
	laidMain, laidCross     float64

	// Natural sizes kept across a deferral. A deferred flex item starts
	// every line layout of its parent from them. Cleared when anything
	// in the subtree changes.
	hasNatural                bool
	naturalMain, naturalCross float64
}

func newContainer(t *Tree, id NodeID) *container {
	return &container{
		tree:      t,
		id:        id,
		minMain:   -1,
		minCross:  -1,
		laidMain:  -1,
		laidCross: -1,
	}
}

func (c *container) node() *node {
	return c.tree.nodes[c.id]
}

// isMainAxisFitToContents reports whether the main size follows the lines.
// Wrapping containers keep their assigned size: fitting is ill-defined
// across several lines.
func (c *container) isMainAxisFitToContents() bool {
	n := c.node()
	return !n.style.Wrap && mainAxis(&n.style).basis(&n.style) == 0
}

func (c *container) fitsMain() bool {
	return c.state != StateResizingMain && !c.mainImposed && c.isMainAxisFitToContents()
}

func (c *container) fitsCross() bool {
	n := c.node()
	return c.state != StateResizingCross && !c.crossImposed && crossAxis(&n.style).basis(&n.style) == 0
}

// layoutTree resolves the subtree and finalizes its coordinates. A flex
// item keeps the sizes its container gave it.
func (c *container) layoutTree() {
	n := c.node()
	if c.tree.isFlexItem(n) {
		c.updateSubTreeLayout()
	} else {
		c.updateTreeLayout()
	}
	c.tree.finalize(c.id)
}

// updateSubTreeLayout re-resolves both axes against the current sizes.
func (c *container) updateSubTreeLayout() {
	n := c.node()
	if n.dirty {
		c.hasCache = false
	}
	c.mainImposed, c.crossImposed = true, true
	c.state = StateResizingMain
	c.layoutMainAxis()
	c.state = StateResizingCross
	c.layoutCrossAxis()
	c.state = StateClean
	n.dirty = false
}

// updateTreeLayout resolves the subtree from the container's configured
// basis: initial sizes, then main layout, then cross layout.
func (c *container) updateTreeLayout() {
	t := c.tree
	n := c.node()
	main, cross := mainAxis(&n.style), crossAxis(&n.style)

	if c.state == StateDeferred {
		t.debug("deferred layout observed", zap.Stringer("node", c.id))
	}
	if !n.dirty && c.hasCache && c.laidMain == c.cachedMain && c.laidCross == c.cachedCross {
		main.setSize(n, c.cachedMain)
		cross.setSize(n, c.cachedCross)
		c.state = StateClean
		t.stats.CacheHits++
		t.debug("layout cache hit", zap.Stringer("node", c.id))
		return
	}

	c.setInitialAxisSizes()
	c.layoutAxes()

	c.cachedMain, c.cachedCross = main.size(n), cross.size(n)
	c.hasCache = true
	n.dirty = false
}

func (c *container) setInitialAxisSizes() {
	c.tree.resetLayoutSize(c.node())
	c.mainImposed, c.crossImposed = false, false
	c.state = StateClean
}

func (c *container) layoutAxes() {
	c.layoutMainAxis()
	c.layoutCrossAxis()
}

func (c *container) layoutMainAxis() {
	t := c.tree
	n := c.node()
	main := mainAxis(&n.style)
	t.stats.MainLayouts++

	c.layoutLines()
	if c.fitsMain() {
		size := c.fit(main, c.mainContent)
		main.setSize(n, size)
		if size != c.mainContent {
			// Min/max moved the size off the content: lines see the
			// difference as free space.
			prev := c.state
			c.state = StateResizingMain
			c.layoutLines()
			c.state = prev
		}
	}
	c.laidMain = main.size(n)
}

func (c *container) layoutCrossAxis() {
	t := c.tree
	n := c.node()
	cross := crossAxis(&n.style)
	t.stats.CrossLayouts++

	aligner := contentAligner{c: c}
	aligner.init()
	c.totalCross = aligner.total
	if c.fitsCross() {
		cross.setSize(n, c.fit(cross, c.totalCross))
	}
	aligner.align()
	c.laidCross = cross.size(n)
}

// fit clamps a content size to the container's own constraints on axis a.
func (c *container) fit(a axis, content float64) float64 {
	s := &c.node().style
	return clampSize(content, a.minSize(s), a.maxSize(s))
}

// resizeMainAxis imposes a main size. An unchanged size does no layout.
// A new main size can change line membership, so both axes are re-run.
func (c *container) resizeMainAxis(size float64) {
	n := c.node()
	main := mainAxis(&n.style)
	if c.state == StateDeferred {
		main.setSize(n, size)
		c.mainImposed = true
		return
	}

	c.state = StateResizingMain
	c.mainImposed = true
	if prev := main.size(n); prev != size {
		c.tree.debug("resize main axis",
			zap.Stringer("node", c.id),
			zap.Float64("from", prev),
			zap.Float64("to", size))
		main.setSize(n, size)
		c.layoutAxes()
	}
	c.state = StateClean
}

// resizeCrossAxis imposes a cross size. Only cross layout re-runs unless
// the lines were computed for another main size.
func (c *container) resizeCrossAxis(size float64) {
	n := c.node()
	main, cross := mainAxis(&n.style), crossAxis(&n.style)
	if c.state == StateDeferred {
		cross.setSize(n, size)
		c.crossImposed = true
		return
	}

	c.state = StateResizingCross
	c.crossImposed = true
	if prev := cross.size(n); prev != size {
		c.tree.debug("resize cross axis",
			zap.Stringer("node", c.id),
			zap.Float64("from", prev),
			zap.Float64("to", size))
		cross.setSize(n, size)
		if c.laidMain != main.size(n) {
			c.layoutAxes()
		} else {
			c.layoutCrossAxis()
		}
	}
	c.state = StateClean
}

// deferLayout postpones the subtree until it is observed again.
func (c *container) deferLayout() {
	t := c.tree
	n := c.node()

	natural := c.hasCache && !n.dirty

	c.state = StateDeferred
	t.resetNonFlexLayout(n)
	c.hasCache = false
	c.laidMain, c.laidCross = -1, -1
	c.lines = nil
	c.minMain, c.minCross = -1, -1
	t.mustUpdateDeferred(c.id)

	c.hasNatural = natural
	c.naturalMain, c.naturalCross = c.cachedMain, c.cachedCross

	t.stats.Deferrals++
	t.debug("layout deferred", zap.Stringer("node", c.id))
}

// axisMinSize answers from the current lines, resolving a deferred
// subtree first.
func (c *container) axisMinSize(horizontal bool) float64 {
	if c.state == StateDeferred {
		c.updateTreeLayout()
	}
	if c.node().style.IsHorizontal() == horizontal {
		return c.mainMinSize()
	}
	return c.crossMinSize()
}

// LayoutTree resolves the subtree rooted at id and finalizes the absolute
// layout of every node in it. A flex item keeps the sizes its container
// assigned; any other node starts from its configured basis.
func (t *Tree) LayoutTree(id NodeID) {
	n := t.nodes[id]
	if n.isContainer() {
		n.ctr.layoutTree()
		return
	}
	if !t.isFlexItem(n) {
		t.resetLayoutSize(n)
		n.dirty = false
	}
	t.finalize(id)
}

// UpdateTreeLayout resolves sizes and relative positions of the subtree
// from the node's configured basis without finalizing coordinates.
func (t *Tree) UpdateTreeLayout(id NodeID) {
	n := t.nodes[id]
	if n.isContainer() {
		n.ctr.updateTreeLayout()
		return
	}
	t.resetLayoutSize(n)
	n.dirty = false
}

// DeferLayout postpones the layout of a container whose result is not
// currently observable. It has no effect on leaves.
func (t *Tree) DeferLayout(id NodeID) {
	n := t.nodes[id]
	if !n.isContainer() || n.ctr.state == StateDeferred {
		return
	}
	n.ctr.deferLayout()
}

// IsLayoutDeferred reports whether the container's layout is postponed.
func (t *Tree) IsLayoutDeferred(id NodeID) bool {
	return t.LayoutState(id) == StateDeferred
}

// LayoutState returns the lifecycle state of the node. Leaves are always
// clean.
func (t *Tree) LayoutState(id NodeID) State {
	n := t.nodes[id]
	if !n.isContainer() {
		return StateClean
	}
	return n.ctr.state
}

// AxisMinSize returns the smallest content-box size the node accepts on
// the given physical axis without overflowing its content.
func (t *Tree) AxisMinSize(id NodeID, horizontal bool) float64 {
	n := t.nodes[id]
	if n.isContainer() {
		return n.ctr.axisMinSize(horizontal)
	}
	return t.itemMinSize(n, horizontal)
}

// ResizeMainAxis imposes a content-box size along the node's main axis.
// Repeating the current size does no work.
func (t *Tree) ResizeMainAxis(id NodeID, size float64) {
	n := t.nodes[id]
	t.invalidateParent(n)
	if n.isContainer() {
		n.ctr.resizeMainAxis(size)
		return
	}
	mainAxis(&n.style).setSize(n, size)
}

// ResizeCrossAxis imposes a content-box size along the node's cross axis.
// Repeating the current size does no work.
func (t *Tree) ResizeCrossAxis(id NodeID, size float64) {
	n := t.nodes[id]
	t.invalidateParent(n)
	if n.isContainer() {
		n.ctr.resizeCrossAxis(size)
		return
	}
	crossAxis(&n.style).setSize(n, size)
}

// invalidateParent makes ancestors recompute after an outside resize
// instead of restoring geometry cached before it.
func (t *Tree) invalidateParent(n *node) {
	if n.parent != NoNode {
		t.MarkDirty(n.parent)
	}
}

// Cull defers every container below root whose finalized rectangle lies
// outside viewport, and lays out deferred containers that are visible
// again. It returns how many containers were deferred and revealed.
// Root itself is never deferred.
func (t *Tree) Cull(root NodeID, viewport Rect) (deferred, revealed int) {
	var walk func(id NodeID)
	walk = func(id NodeID) {
		for _, childID := range t.nodes[id].children {
			child := t.nodes[childID]
			if !child.isContainer() || child.style.Hidden {
				continue
			}
			visible := child.layout.Rect.Intersects(viewport)
			switch {
			case child.ctr.state == StateDeferred && visible:
				t.LayoutTree(childID)
				revealed++
			case child.ctr.state == StateDeferred:
				continue
			case !visible:
				child.ctr.deferLayout()
				// Keep the position its container gave it so the next
				// cull tests the same rectangle.
				t.finalize(childID)
				deferred++
				continue
			}
			walk(childID)
		}
	}
	walk(root)

	t.debug("cull",
		zap.Stringer("root", root),
		zap.Int("deferred", deferred),
		zap.Int("revealed", revealed))
	return deferred, revealed
}
