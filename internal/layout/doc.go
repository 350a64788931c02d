// Package layout implements a flexbox layout resolver over an arena of nodes.
//
// A [Tree] owns every node. Containers lay their children out along a main
// axis (row or column, optionally reversed), break them into lines when
// wrapping is enabled, distribute free space by grow and shrink factors and
// align lines and items on the cross axis. Each container resolves its main
// axis first, then its cross axis, recursing into child containers while
// building its lines.
//
// The main entry point is [Tree.LayoutTree], which resolves a subtree and
// finalizes absolute [Layout] rectangles for every node in it. Subtrees
// that are not currently observable can be postponed with
// [Tree.DeferLayout]; size queries such as [Tree.AxisMinSize] resolve them
// on demand. Types are re-exported through the root flex package.
package layout
