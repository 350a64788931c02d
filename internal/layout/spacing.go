package layout

// spacing returns the offset before the first entry and the extra space
// between entries when free space is distributed among count entries.
// Negative free space overflows at the end for Start and SpaceBetween, at
// both ends for Center, SpaceAround and SpaceEvenly, and at the start for End.
func spacing(justify Justify, count int, free float64) (before, between float64) {
	if count == 0 {
		return 0, 0
	}

	switch justify {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if free <= 0 || count == 1 {
			return 0, 0
		}
		return 0, free / float64(count-1)
	case JustifySpaceAround:
		if free < 0 {
			return free / 2, 0
		}
		return free / float64(count*2), free / float64(count)
	case JustifySpaceEvenly:
		if free < 0 {
			return free / 2, 0
		}
		gap := free / float64(count+1)
		return gap, gap
	default: // JustifyStart
		return 0, 0
	}
}

// contentSpacing is spacing for lines on the cross axis. Stretch and
// Overlap place lines without spacing.
func contentSpacing(mode AlignContent, count int, free float64) (before, between float64) {
	switch mode {
	case AlignContentEnd:
		return spacing(JustifyEnd, count, free)
	case AlignContentCenter:
		return spacing(JustifyCenter, count, free)
	case AlignContentSpaceBetween:
		return spacing(JustifySpaceBetween, count, free)
	case AlignContentSpaceAround:
		return spacing(JustifySpaceAround, count, free)
	case AlignContentSpaceEvenly:
		return spacing(JustifySpaceEvenly, count, free)
	default: // AlignContentStart, AlignContentStretch, AlignContentOverlap
		return 0, 0
	}
}

// alignOffset returns the offset of an item of itemSize inside a line of
// lineSize on the cross axis.
func alignOffset(align Align, lineSize, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return lineSize - itemSize
	case AlignCenter:
		return (lineSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
