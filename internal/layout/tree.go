package layout

import (
	"slices"
	"strconv"

	"github.com/grindlemire/go-flex/internal/debug"
	"go.uber.org/zap"
)

// NodeID addresses a node inside its Tree.
type NodeID int32

// NoNode is the parent of a root.
const NoNode NodeID = -1

func (id NodeID) String() string {
	if id == NoNode {
		return "none"
	}
	return "#" + strconv.Itoa(int(id))
}

// MeasureFunc reports the natural content size of a leaf. It is consulted
// on every axis whose basis is zero.
type MeasureFunc func() Size

// node is the arena record of one box.
type node struct {
	// Configuration (user-set)
	style    Style
	measure  MeasureFunc
	parent   NodeID
	children []NodeID

	// Needs recalculation
	dirty bool

	// Resolved geometry: content-box size and the position of the margin
	// box inside the parent's content box.
	w, h float64
	x, y float64

	// Finalized
	layout Layout

	// Set once the node has had children.
	ctr *container
}

func (n *node) isContainer() bool {
	return len(n.children) > 0
}

// Stats counts layout work done by a Tree.
type Stats struct {
	MainLayouts  int `json:"main_layouts"`  // main-axis passes (line layout)
	CrossLayouts int `json:"cross_layouts"` // cross-axis passes (alignment)
	CacheHits    int `json:"cache_hits"`    // containers restored from cached geometry
	Deferrals    int `json:"deferrals"`     // DeferLayout calls
}

// Tree owns every node of one layout tree. Parents own their children;
// the parent link is a NodeID only. A Tree is not safe for concurrent use.
type Tree struct {
	nodes []*node
	log   *zap.Logger
	stats Stats
}

// NewTree creates an empty tree.
func NewTree(opts ...Option) *Tree {
	t := &Tree{log: debug.FromEnv()}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	return t
}

// NewNode creates a detached node with the given style.
func (t *Tree) NewNode(style Style) NodeID {
	return t.NewLeaf(style, nil)
}

// NewLeaf creates a detached node whose zero-basis axes are sized by measure.
func (t *Tree) NewLeaf(style Style, measure MeasureFunc) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &node{
		style:   style,
		measure: measure,
		parent:  NoNode,
		dirty:   true, // New nodes need layout
	})
	return id
}

// Len returns the number of nodes ever created in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// AddChild appends children to parent and marks the parent dirty.
// A child that already has a parent is moved.
func (t *Tree) AddChild(parent NodeID, children ...NodeID) {
	p := t.nodes[parent]
	if p.ctr == nil {
		p.ctr = newContainer(t, parent)
	}
	for _, id := range children {
		child := t.nodes[id]
		if child.parent != NoNode {
			t.RemoveChild(child.parent, id)
		}
		child.parent = parent
		child.dirty = true
		p.children = append(p.children, id)
	}
	t.MarkDirty(parent)
}

// RemoveChild detaches child from parent, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	p := t.nodes[parent]
	i := slices.Index(p.children, child)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	c := t.nodes[child]
	c.parent = NoNode
	c.dirty = true
	t.MarkDirty(parent)
	return true
}

// SetStyle updates the style and marks the node dirty.
func (t *Tree) SetStyle(id NodeID, style Style) {
	t.nodes[id].style = style
	t.MarkDirty(id)
}

// Style returns the node's configuration.
func (t *Tree) Style(id NodeID) Style {
	return t.nodes[id].style
}

// SetMeasure replaces the node's measure function and marks it dirty.
func (t *Tree) SetMeasure(id NodeID, measure MeasureFunc) {
	t.nodes[id].measure = measure
	t.MarkDirty(id)
}

// Children returns a copy of the node's children in order.
func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.nodes[id].children)
}

// Parent returns the node's parent, or NoNode for a root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// MarkDirty marks the node and all ancestors as needing recalculation.
// The walk always reaches the root: hidden and deferred nodes can stay
// dirty below clean ancestors. Natural sizes kept by deferred containers
// on the way are dropped.
func (t *Tree) MarkDirty(id NodeID) {
	for cur := id; cur != NoNode; cur = t.nodes[cur].parent {
		n := t.nodes[cur]
		n.dirty = true
		if n.ctr != nil {
			n.ctr.hasNatural = false
		}
	}
}

// IsDirty returns whether the node needs recalculation.
func (t *Tree) IsDirty(id NodeID) bool {
	return t.nodes[id].dirty
}

// Layout returns the last finalized layout of the node.
func (t *Tree) Layout(id NodeID) Layout {
	return t.nodes[id].layout
}

// Size returns the resolved content-box size of the node (padding excluded).
func (t *Tree) Size(id NodeID) Size {
	n := t.nodes[id]
	return Size{Width: n.w, Height: n.h}
}

// IsFlexItem reports whether the node is laid out by its parent's lines.
func (t *Tree) IsFlexItem(id NodeID) bool {
	return t.isFlexItem(t.nodes[id])
}

// FlexParent returns the container that lays the node out as a flex item,
// or NoNode.
func (t *Tree) FlexParent(id NodeID) NodeID {
	n := t.nodes[id]
	if !t.isFlexItem(n) {
		return NoNode
	}
	return n.parent
}

// Lines returns a copy of the container's current lines.
func (t *Tree) Lines(id NodeID) []Line {
	n := t.nodes[id]
	if n.ctr == nil {
		return nil
	}
	lines := make([]Line, len(n.ctr.lines))
	for i, l := range n.ctr.lines {
		lines[i] = l
		lines[i].Items = slices.Clone(l.Items)
	}
	return lines
}

// Stats returns the counters accumulated since the last ResetStats.
func (t *Tree) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the work counters.
func (t *Tree) ResetStats() {
	t.stats = Stats{}
}

func (t *Tree) isFlexItem(n *node) bool {
	return n.parent != NoNode && !n.style.Absolute && !n.style.Hidden
}

// flexItems returns the children of n that take part in line layout.
func (t *Tree) flexItems(n *node) []NodeID {
	items := make([]NodeID, 0, len(n.children))
	for _, id := range n.children {
		if t.isFlexItem(t.nodes[id]) {
			items = append(items, id)
		}
	}
	return items
}

func (t *Tree) debug(msg string, fields ...zap.Field) {
	if ce := t.log.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}
