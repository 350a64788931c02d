package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutLines_WrapPacking(t *testing.T) {
	type tc struct {
		width    float64
		gap      float64
		items    []float64
		want     [][]int
		wantMain []float64
	}

	tests := map[string]tc{
		"three fives in ten": {
			width:    10,
			items:    []float64{5, 5, 5},
			want:     [][]int{{0, 1}, {2}},
			wantMain: []float64{10, 5},
		},
		"everything fits": {
			width:    15,
			items:    []float64{5, 5, 5},
			want:     [][]int{{0, 1, 2}},
			wantMain: []float64{15},
		},
		"oversized item sits alone": {
			width:    10,
			items:    []float64{5, 15, 5},
			want:     [][]int{{0}, {1}, {2}},
			wantMain: []float64{5, 15, 5},
		},
		"gap pushes item to next line": {
			width:    10,
			gap:      1,
			items:    []float64{5, 5},
			want:     [][]int{{0}, {1}},
			wantMain: []float64{5, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			root := tr.NewNode(with(box(tt.width, 0), func(s *Style) {
				s.Wrap = true
				s.Gap = tt.gap
			}))
			ids := make([]NodeID, len(tt.items))
			for i, w := range tt.items {
				ids[i] = tr.NewNode(box(w, 1))
			}
			tr.AddChild(root, ids...)

			tr.LayoutTree(root)

			lines := tr.Lines(root)
			require.Len(t, lines, len(tt.want))
			for i, line := range lines {
				want := make([]NodeID, len(tt.want[i]))
				for j, idx := range tt.want[i] {
					want[j] = ids[idx]
				}
				assert.Equal(t, want, line.Items, "line %d", i)
				assert.Equal(t, tt.wantMain[i], line.MainSize, "line %d main size", i)
			}
		})
	}
}

func TestLayoutLines_OversizedWrapItemKeepsSize(t *testing.T) {
	tr := newTestTree(t)
	wrap := with(box(10, 0), func(s *Style) { s.Wrap = true })
	root, kids := build(tr, wrap, box(5, 1), box(15, 1), box(5, 1))

	tr.LayoutTree(root)

	assert.Equal(t, [][]NodeID{{kids[0]}, {kids[1]}, {kids[2]}}, lineItems(tr.Lines(root)))
	assert.Equal(t, 15.0, tr.Size(kids[1]).Width, "not shrunk to the container")
	assert.Equal(t, NewRect(0, 1, 15, 1), tr.Layout(kids[1]).Rect)
}

func TestLayoutLines_NoWrapSingleLine(t *testing.T) {
	tr := newTestTree(t)
	noShrink := with(box(8, 1), func(s *Style) { s.Shrink = 0 })
	root, kids := build(tr, box(10, 1), noShrink, noShrink, noShrink)

	tr.LayoutTree(root)

	assert.Equal(t, [][]NodeID{kids}, lineItems(tr.Lines(root)))
	assert.Equal(t, 24.0, tr.Lines(root)[0].MainSize)
	assert.Equal(t, 16.0, tr.Layout(kids[2]).Rect.X, "overflow runs past the end")
}

func TestLayoutLines_Grow(t *testing.T) {
	type tc struct {
		children  []Style
		wantWidth []float64
		wantX     []float64
	}

	grow := func(w, g float64, fn func(*Style)) Style {
		return with(box(w, 10), func(s *Style) {
			s.Grow = g
			if fn != nil {
				fn(s)
			}
		})
	}

	tests := map[string]tc{
		"single grower fills": {
			children:  []Style{box(30, 10), grow(0, 1, nil)},
			wantWidth: []float64{30, 70},
			wantX:     []float64{0, 30},
		},
		"proportional distribution": {
			children:  []Style{box(30, 10), grow(0, 1, nil), grow(0, 3, nil)},
			wantWidth: []float64{30, 17.5, 52.5},
			wantX:     []float64{0, 30, 47.5},
		},
		"max width freezes item": {
			children:  []Style{box(30, 10), grow(0, 1, func(s *Style) { s.MaxWidth = 10 }), grow(0, 1, nil)},
			wantWidth: []float64{30, 10, 60},
			wantX:     []float64{0, 30, 40},
		},
		"grow starts from basis": {
			children:  []Style{grow(20, 1, nil), grow(40, 1, nil)},
			wantWidth: []float64{40, 60},
			wantX:     []float64{0, 40},
		},
		"no growers leaves free space": {
			children:  []Style{box(30, 10), box(30, 10)},
			wantWidth: []float64{30, 30},
			wantX:     []float64{0, 30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			root, kids := build(tr, box(100, 10), tt.children...)

			tr.LayoutTree(root)

			for i, id := range kids {
				r := tr.Layout(id).Rect
				assert.InDelta(t, tt.wantWidth[i], r.Width, 1e-9, "child %d width", i)
				assert.InDelta(t, tt.wantX[i], r.X, 1e-9, "child %d x", i)
			}
		})
	}
}

func TestLayoutLines_Shrink(t *testing.T) {
	type tc struct {
		children  []Style
		wantWidth []float64
	}

	shrink := func(w, f float64, fn func(*Style)) Style {
		return with(box(w, 10), func(s *Style) {
			s.Shrink = f
			if fn != nil {
				fn(s)
			}
		})
	}

	tests := map[string]tc{
		"proportional to shrink factor": {
			children:  []Style{shrink(60, 1, nil), shrink(60, 3, nil)},
			wantWidth: []float64{55, 45},
		},
		"min width freezes item": {
			children:  []Style{shrink(60, 1, func(s *Style) { s.MinWidth = 58 }), shrink(60, 1, nil)},
			wantWidth: []float64{58, 42},
		},
		"no shrink overflows": {
			children:  []Style{shrink(60, 0, nil), shrink(60, 0, nil)},
			wantWidth: []float64{60, 60},
		},
		"never below zero": {
			children:  []Style{shrink(10, 1, nil), shrink(200, 1, nil)},
			wantWidth: []float64{0, 100},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			root, kids := build(tr, box(100, 10), tt.children...)

			tr.LayoutTree(root)

			for i, id := range kids {
				assert.InDelta(t, tt.wantWidth[i], tr.Size(id).Width, 1e-9, "child %d width", i)
			}
		})
	}
}

func TestLayoutLines_ShrinkNestedContainerToMinSize(t *testing.T) {
	tr := newTestTree(t)
	root := tr.NewNode(box(30, 10))
	inner := tr.NewNode(DefaultStyle())
	fixed := tr.NewNode(with(box(20, 10), func(s *Style) { s.Shrink = 0 }))
	flexible := tr.NewNode(box(20, 10))
	sibling := tr.NewNode(box(40, 10))
	tr.AddChild(inner, fixed, flexible)
	tr.AddChild(root, inner, sibling)

	tr.LayoutTree(root)

	// inner holds 40 but can only give up its shrinkable leaf.
	assert.Equal(t, 20.0, tr.AxisMinSize(inner, true))
	assert.InDelta(t, 20.0, tr.Size(inner).Width, 1e-9)
	assert.InDelta(t, 10.0, tr.Size(sibling).Width, 1e-9)
	assert.InDelta(t, 0.0, tr.Size(flexible).Width, 1e-9)
}

func TestJustifyContent(t *testing.T) {
	type tc struct {
		justify Justify
		width   float64
		wantX   []float64
	}

	tests := map[string]tc{
		"start":         {justify: JustifyStart, width: 100, wantX: []float64{0, 10}},
		"end":           {justify: JustifyEnd, width: 100, wantX: []float64{80, 90}},
		"center":        {justify: JustifyCenter, width: 100, wantX: []float64{40, 50}},
		"space between": {justify: JustifySpaceBetween, width: 100, wantX: []float64{0, 90}},
		"space around":  {justify: JustifySpaceAround, width: 100, wantX: []float64{20, 70}},
		"space evenly":  {justify: JustifySpaceEvenly, width: 110, wantX: []float64{30, 70}},
		"center overflow": {
			justify: JustifyCenter,
			width:   10,
			wantX:   []float64{-5, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			item := with(box(10, 10), func(s *Style) { s.Shrink = 0 })
			root, kids := build(tr, with(box(tt.width, 10), func(s *Style) { s.JustifyContent = tt.justify }), item, item)

			tr.LayoutTree(root)

			for i, id := range kids {
				assert.InDelta(t, tt.wantX[i], tr.Layout(id).Rect.X, 1e-9, "child %d x", i)
			}
		})
	}
}

func TestSpacing(t *testing.T) {
	type tc struct {
		justify     Justify
		count       int
		free        float64
		wantBefore  float64
		wantBetween float64
	}

	tests := map[string]tc{
		"no items":                  {justify: JustifyCenter, count: 0, free: 10},
		"space between single item": {justify: JustifySpaceBetween, count: 1, free: 10},
		"space between negative":    {justify: JustifySpaceBetween, count: 2, free: -10},
		"space around negative":     {justify: JustifySpaceAround, count: 2, free: -10, wantBefore: -5},
		"space evenly":              {justify: JustifySpaceEvenly, count: 3, free: 40, wantBefore: 10, wantBetween: 10},
		"end negative":              {justify: JustifyEnd, count: 2, free: -4, wantBefore: -4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before, between := spacing(tt.justify, tt.count, tt.free)
			assert.Equal(t, tt.wantBefore, before, "before")
			assert.Equal(t, tt.wantBetween, between, "between")
		})
	}
}

func TestAxisMinSize(t *testing.T) {
	t.Run("single line sums item minimums", func(t *testing.T) {
		tr := newTestTree(t)
		root, _ := build(tr, with(DefaultStyle(), func(s *Style) { s.Gap = 3 }),
			with(box(10, 4), func(s *Style) { s.Shrink = 0 }),
			with(box(10, 6), func(s *Style) { s.MinWidth = 2 }),
			with(box(10, 2), func(s *Style) {
				s.Shrink = 0
				s.Margin = EdgeSymmetric(1, 2)
			}),
		)
		tr.LayoutTree(root)

		assert.Equal(t, 10.0+3+2+3+14, tr.AxisMinSize(root, true))
		// The first leaf at 4, the last at 2 plus its vertical margin.
		assert.Equal(t, 4.0, tr.AxisMinSize(root, false))
	})

	t.Run("several lines use the current main size", func(t *testing.T) {
		tr := newTestTree(t)
		wrap := with(box(10, 0), func(s *Style) { s.Wrap = true })
		noShrink := with(box(5, 2), func(s *Style) { s.Shrink = 0 })
		root, _ := build(tr, wrap, noShrink, noShrink, noShrink)
		tr.LayoutTree(root)

		assert.Equal(t, 10.0, tr.AxisMinSize(root, true))
		assert.Equal(t, 4.0, tr.AxisMinSize(root, false))
	})

	t.Run("leaf", func(t *testing.T) {
		tr := newTestTree(t)
		leaf := tr.NewNode(with(box(10, 5), func(s *Style) { s.MinHeight = 3 }))

		assert.Equal(t, 0.0, tr.AxisMinSize(leaf, true))
		assert.Equal(t, 3.0, tr.AxisMinSize(leaf, false))
	})
}
