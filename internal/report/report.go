// Package report renders resolved layout trees as text or JSON.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Namer labels nodes in output.
type Namer interface {
	Name(id layout.NodeID) string
}

// Box is the resolved geometry of one node and its subtree.
type Box struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	State    string  `json:"state,omitempty"`
	Lines    int     `json:"lines,omitempty"`
	Hidden   bool    `json:"hidden,omitempty"`
	Children []*Box  `json:"children,omitempty"`
}

// Result is everything reported for one fixture.
type Result struct {
	File     string       `json:"file"`
	Root     *Box         `json:"root"`
	Stats    layout.Stats `json:"stats"`
	Deferred int          `json:"deferred,omitempty"`
	Revealed int          `json:"revealed,omitempty"`
}

// Collect walks the subtree at root. Containers carry their layout state
// and line count; leaves leave both empty.
func Collect(tr *layout.Tree, root layout.NodeID, namer Namer) *Box {
	r := tr.Layout(root).Rect
	b := &Box{
		Name:   namer.Name(root),
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
		Hidden: tr.Style(root).Hidden,
	}
	children := tr.Children(root)
	if len(children) > 0 {
		b.State = tr.LayoutState(root).String()
		b.Lines = len(tr.Lines(root))
	}
	for _, child := range children {
		b.Children = append(b.Children, Collect(tr, child, namer))
	}
	return b
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteText writes one block per result: a header line, then one
// indented line per box.
//
//	panel.toml (main 2, cross 2, cache hits 0)
//	panel 0,0 102x12 clean lines=1
//	  label 1,1 30x10
func WriteText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for i, res := range results {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "%s (main %d, cross %d, cache hits %d",
			res.File, res.Stats.MainLayouts, res.Stats.CrossLayouts, res.Stats.CacheHits)
		if res.Deferred > 0 || res.Revealed > 0 {
			fmt.Fprintf(bw, ", deferred %d, revealed %d", res.Deferred, res.Revealed)
		}
		bw.WriteString(")\n")
		if res.Root != nil {
			writeBox(bw, res.Root, 0)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeBox(w *bufio.Writer, b *Box, depth int) {
	w.WriteString(strings.Repeat("  ", depth))
	w.WriteString(b.Name)
	if b.Hidden {
		w.WriteString(" hidden\n")
		return
	}
	w.WriteByte(' ')
	w.WriteString(num(b.X))
	w.WriteByte(',')
	w.WriteString(num(b.Y))
	w.WriteByte(' ')
	w.WriteString(num(b.Width))
	w.WriteByte('x')
	w.WriteString(num(b.Height))
	if b.State != "" {
		w.WriteString(" " + b.State)
		w.WriteString(" lines=" + strconv.Itoa(b.Lines))
	}
	w.WriteByte('\n')
	for _, c := range b.Children {
		writeBox(w, c, depth+1)
	}
}

// num formats with the fewest digits that round-trip.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
