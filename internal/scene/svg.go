package scene

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"slices"
	"strconv"
)

var attrOrder = map[Kind][]string{
	KindCircle: {"cx", "cy", "r"},
	KindRect:   {"x", "y", "width", "height", "rx"},
}

// GroupClass tags the group holding every avatar shape.
const GroupClass = "person"

// WriteSVG writes the scene as a standalone SVG document whose viewBox
// matches the surface size.
func (s *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(bw, `  <g class="%s">`+"\n", GroupClass)
	for _, id := range s.order {
		writeNode(bw, s.nodes[id])
	}
	bw.WriteString("  </g>\n</svg>\n")
	return bw.Flush()
}

func writeNode(w *bufio.Writer, n *Node) {
	fmt.Fprintf(w, `    <%s id="%s" class="%s"`, n.Kind, html.EscapeString(n.ID), html.EscapeString(n.Class))
	for _, key := range orderedAttrs(n) {
		fmt.Fprintf(w, ` %s="%s"`, key, formatNumber(n.Attrs[key]))
	}
	if n.Fill != "" {
		fmt.Fprintf(w, ` fill="%s"`, html.EscapeString(n.Fill))
	}
	w.WriteString("/>\n")
}

func orderedAttrs(n *Node) []string {
	known := attrOrder[n.Kind]
	keys := make([]string, 0, len(n.Attrs))
	for _, k := range known {
		if _, ok := n.Attrs[k]; ok {
			keys = append(keys, k)
		}
	}
	for _, k := range sortedAttrKeys(n.Attrs) {
		if !slices.Contains(known, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// formatNumber renders v with at most two decimals and no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
