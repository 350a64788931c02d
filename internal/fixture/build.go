package fixture

import (
	"fmt"

	"github.com/grindlemire/go-flex/internal/layout"
)

var directions = map[string]layout.Direction{
	"row":    layout.Row,
	"column": layout.Column,
}

var justifies = map[string]layout.Justify{
	"start":         layout.JustifyStart,
	"end":           layout.JustifyEnd,
	"center":        layout.JustifyCenter,
	"space-between": layout.JustifySpaceBetween,
	"space-around":  layout.JustifySpaceAround,
	"space-evenly":  layout.JustifySpaceEvenly,
}

var aligns = map[string]layout.Align{
	"start":   layout.AlignStart,
	"end":     layout.AlignEnd,
	"center":  layout.AlignCenter,
	"stretch": layout.AlignStretch,
}

var alignContents = map[string]layout.AlignContent{
	"start":         layout.AlignContentStart,
	"end":           layout.AlignContentEnd,
	"center":        layout.AlignContentCenter,
	"space-between": layout.AlignContentSpaceBetween,
	"space-around":  layout.AlignContentSpaceAround,
	"space-evenly":  layout.AlignContentSpaceEvenly,
	"stretch":       layout.AlignContentStretch,
	"overlap":       layout.AlignContentOverlap,
}

// Built is a document materialized into a tree.
type Built struct {
	Root  layout.NodeID
	IDs   map[string]layout.NodeID
	names map[layout.NodeID]string
}

// Name returns the fixture id of a node, or its path when it has none.
func (b *Built) Name(id layout.NodeID) string {
	if name, ok := b.names[id]; ok {
		return name
	}
	return id.String()
}

// Build validates doc and creates one tree node per fixture node.
func Build(tr *layout.Tree, doc *Document) (*Built, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	b := &Built{
		IDs:   map[string]layout.NodeID{},
		names: map[layout.NodeID]string{},
	}
	b.Root = b.node(tr, &doc.Root, "root")
	return b, nil
}

func (b *Built) node(tr *layout.Tree, n *Node, path string) layout.NodeID {
	style := n.Style()

	var id layout.NodeID
	if len(n.Content) == 2 {
		content := layout.Size{Width: n.Content[0], Height: n.Content[1]}
		id = tr.NewLeaf(style, func() layout.Size { return content })
	} else {
		id = tr.NewNode(style)
	}

	name := n.ID
	if name == "" {
		name = path
	} else {
		b.IDs[n.ID] = id
	}
	b.names[id] = name

	children := make([]layout.NodeID, len(n.Children))
	for i := range n.Children {
		children[i] = b.node(tr, &n.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
	}
	if len(children) > 0 {
		tr.AddChild(id, children...)
	}
	return id
}

// Style converts the node into a layout style. Unknown enumerations fall
// back to their defaults; Validate reports them.
func (n *Node) Style() layout.Style {
	s := layout.DefaultStyle()
	if d, ok := directions[n.Direction]; ok {
		s.Direction = d
	}
	if j, ok := justifies[n.Justify]; ok {
		s.JustifyContent = j
	}
	if a, ok := aligns[n.AlignItems]; ok {
		s.AlignItems = a
	}
	if a, ok := alignContents[n.AlignContent]; ok {
		s.AlignContent = a
	}
	if a, ok := aligns[n.AlignSelf]; ok {
		s.AlignSelf = &a
	}
	if n.Shrink != nil {
		s.Shrink = *n.Shrink
	}

	s.Reverse = n.Reverse
	s.Wrap = n.Wrap
	s.Gap = n.Gap
	s.Width, s.Height = n.Width, n.Height
	s.X, s.Y = n.X, n.Y
	s.MinWidth, s.MinHeight = n.MinWidth, n.MinHeight
	s.MaxWidth, s.MaxHeight = n.MaxWidth, n.MaxHeight
	s.Grow = n.Grow
	s.Absolute = n.Absolute
	s.Hidden = n.Hidden
	s.Padding = edges(n.Padding)
	s.Margin = edges(n.Margin)
	return s
}

func edges(v []float64) layout.Edges {
	switch len(v) {
	case 1:
		return layout.EdgeAll(v[0])
	case 2:
		return layout.EdgeSymmetric(v[0], v[1])
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3])
	default:
		return layout.Edges{}
	}
}
