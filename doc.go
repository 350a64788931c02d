// Package flex resolves flexbox layouts for trees of boxes.
//
// Build a Tree, give each node a Style, attach children, then call
// LayoutTree on the root. Every node's position is then available from
// Layout in absolute coordinates:
//
//	tr := flex.NewTree()
//	root := tr.NewNode(style)
//	tr.AddChild(root, tr.NewNode(childStyle))
//	tr.LayoutTree(root)
//	rect := tr.Layout(root).Rect
//
// Containers size themselves to their content unless a basis is set.
// Resizing one axis of a container relays out only what that axis
// affects, and unchanged subtrees are restored from cache. Containers
// that are not visible can be deferred with DeferLayout or Cull and are
// resolved again when next observed.
package flex
