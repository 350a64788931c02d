package fixture

import (
	"errors"
	"fmt"
	"strconv"
)

// Validate reports every problem in the document, each wrapping
// ErrInvalid and prefixed with the node's path.
func (d *Document) Validate() error {
	v := validator{ids: map[string]string{}}
	v.node(&d.Root, "root")
	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
	ids  map[string]string // id -> path of first use
}

func (v *validator) fail(path, format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%s: %s: %w", path, fmt.Sprintf(format, args...), ErrInvalid))
}

func (v *validator) node(n *Node, path string) {
	if n.ID != "" {
		if first, ok := v.ids[n.ID]; ok {
			v.fail(path, "duplicate id %q (first used at %s)", n.ID, first)
		} else {
			v.ids[n.ID] = path
		}
	}

	enum(v, path, "direction", n.Direction, directions)
	enum(v, path, "justify", n.Justify, justifies)
	enum(v, path, "align_items", n.AlignItems, aligns)
	enum(v, path, "align_self", n.AlignSelf, aligns)
	enum(v, path, "align_content", n.AlignContent, alignContents)

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"width", n.Width},
		{"height", n.Height},
		{"gap", n.Gap},
		{"min_width", n.MinWidth},
		{"min_height", n.MinHeight},
		{"max_width", n.MaxWidth},
		{"max_height", n.MaxHeight},
		{"grow", n.Grow},
	} {
		if f.value < 0 {
			v.fail(path, "%s must not be negative, got %v", f.name, f.value)
		}
	}
	if n.Shrink != nil && *n.Shrink < 0 {
		v.fail(path, "shrink must not be negative, got %v", *n.Shrink)
	}
	if n.MaxWidth > 0 && n.MinWidth > n.MaxWidth {
		v.fail(path, "min_width %v exceeds max_width %v", n.MinWidth, n.MaxWidth)
	}
	if n.MaxHeight > 0 && n.MinHeight > n.MaxHeight {
		v.fail(path, "min_height %v exceeds max_height %v", n.MinHeight, n.MaxHeight)
	}

	v.edges(path, "padding", n.Padding)
	v.edges(path, "margin", n.Margin)

	if len(n.Content) > 0 {
		switch {
		case len(n.Content) != 2:
			v.fail(path, "content needs [width, height], got %d values", len(n.Content))
		case n.Content[0] < 0 || n.Content[1] < 0:
			v.fail(path, "content must not be negative")
		}
		if len(n.Children) > 0 {
			v.fail(path, "content is only allowed on leaves")
		}
	}

	for i := range n.Children {
		v.node(&n.Children[i], path+".children["+strconv.Itoa(i)+"]")
	}
}

func enum[T any](v *validator, path, field, value string, known map[string]T) {
	if value == "" {
		return
	}
	if _, ok := known[value]; !ok {
		v.fail(path, "unknown %s %q", field, value)
	}
}

func (v *validator) edges(path, field string, values []float64) {
	switch len(values) {
	case 0, 1, 2, 4:
	default:
		v.fail(path, "%s takes 1, 2 or 4 values, got %d", field, len(values))
		return
	}
	for _, e := range values {
		if e < 0 {
			v.fail(path, "%s must not be negative", field)
			return
		}
	}
}
