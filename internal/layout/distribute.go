package layout

// epsilon is the leftover space below which distribution stops.
const epsilon = 1e-6

// grow distributes amount along axis a across items in proportion to their
// Grow factors, freezing items that reach their maximum. It returns the
// space actually handed out.
func (t *Tree) grow(items []NodeID, a axis, amount float64) float64 {
	frozen := make([]bool, len(items))
	total := 0.0
	for i, id := range items {
		if g := t.nodes[id].style.Grow; g > 0 {
			total += g
		} else {
			frozen[i] = true
		}
	}

	grown := 0.0
	// Each round either spends everything or freezes at least one item.
	for round := 0; round <= len(items) && total > 0 && amount-grown > epsilon; round++ {
		perGrow := (amount - grown) / total
		for i, id := range items {
			if frozen[i] {
				continue
			}
			item := t.nodes[id]
			size := a.size(item)
			delta := item.style.Grow * perGrow
			if limit := a.maxSize(&item.style); limit > 0 && size+delta >= limit {
				delta = max(0, limit-size)
				frozen[i] = true
				total -= item.style.Grow
			}
			if delta > 0 {
				t.resizeItem(item, a.horizontal, size+delta)
				grown += delta
			}
		}
	}
	return grown
}

// shrink takes amount away along axis a from items in proportion to their
// Shrink factors, never below an item's minimum size. It returns the space
// actually recovered.
func (t *Tree) shrink(items []NodeID, a axis, amount float64) float64 {
	frozen := make([]bool, len(items))
	minSizes := make([]float64, len(items))
	total := 0.0
	for i, id := range items {
		item := t.nodes[id]
		minSizes[i] = t.itemMinSize(item, a.horizontal)
		if s := item.style.Shrink; s > 0 && a.size(item) > minSizes[i] {
			total += s
		} else {
			frozen[i] = true
		}
	}

	shrunk := 0.0
	for round := 0; round <= len(items) && total > 0 && amount-shrunk > epsilon; round++ {
		perShrink := (amount - shrunk) / total
		for i, id := range items {
			if frozen[i] {
				continue
			}
			item := t.nodes[id]
			size := a.size(item)
			delta := item.style.Shrink * perShrink
			if size-delta <= minSizes[i] {
				delta = max(0, size-minSizes[i])
				frozen[i] = true
				total -= item.style.Shrink
			}
			if delta > 0 {
				t.resizeItem(item, a.horizontal, size-delta)
				shrunk += delta
			}
		}
	}
	return shrunk
}
