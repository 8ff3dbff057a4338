// Package scene is a retained-mode scene graph of avatar shapes keyed by
// stable identifiers. Changes are applied by diffing the desired node set
// against the retained one.
package scene

import (
	"maps"
	"sort"
)

// Kind is the primitive a node draws.
type Kind string

const (
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
)

// Node is one shape element. Attrs holds the numeric geometry attributes
// (cx, cy, r for circles; x, y, width, height, rx for rects).
type Node struct {
	ID    string
	Class string
	Kind  Kind
	Attrs map[string]float64
	Fill  string
}

func (n Node) clone() Node {
	n.Attrs = maps.Clone(n.Attrs)
	return n
}

// Patch lists the node IDs touched by a reconcile.
type Patch struct {
	Created []string
	Updated []string
	Removed []string
}

// Empty reports whether the reconcile changed nothing.
func (p Patch) Empty() bool {
	return len(p.Created) == 0 && len(p.Updated) == 0 && len(p.Removed) == 0
}

// Scene retains nodes between renders.
type Scene struct {
	width  int
	height int
	order  []string
	nodes  map[string]*Node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{nodes: make(map[string]*Node)}
}

// SetViewBox sets the surface size, reporting whether it changed.
func (s *Scene) SetViewBox(width, height int) bool {
	if s.width == width && s.height == height {
		return false
	}
	s.width, s.height = width, height
	return true
}

// ViewBox returns the surface size.
func (s *Scene) ViewBox() (int, int) {
	return s.width, s.height
}

// Reconcile makes the retained node set match desired. Nodes are matched by
// ID: unknown IDs are created, known IDs have changed attributes patched in
// place, and retained IDs absent from desired are removed. A node's fill is
// kept unless the desired node sets one.
func (s *Scene) Reconcile(desired []Node) Patch {
	var patch Patch
	seen := make(map[string]struct{}, len(desired))
	order := make([]string, 0, len(desired))

	for _, want := range desired {
		if _, dup := seen[want.ID]; dup {
			continue
		}
		seen[want.ID] = struct{}{}
		order = append(order, want.ID)

		have, ok := s.nodes[want.ID]
		if !ok {
			n := want.clone()
			s.nodes[want.ID] = &n
			patch.Created = append(patch.Created, want.ID)
			continue
		}
		if applyNode(have, want) {
			patch.Updated = append(patch.Updated, want.ID)
		}
	}

	for _, id := range s.order {
		if _, keep := seen[id]; !keep {
			delete(s.nodes, id)
			patch.Removed = append(patch.Removed, id)
		}
	}
	s.order = order
	return patch
}

func applyNode(have *Node, want Node) bool {
	changed := false
	if have.Class != want.Class {
		have.Class = want.Class
		changed = true
	}
	if have.Kind != want.Kind {
		have.Kind = want.Kind
		changed = true
	}
	if !maps.Equal(have.Attrs, want.Attrs) {
		have.Attrs = maps.Clone(want.Attrs)
		changed = true
	}
	if want.Fill != "" && have.Fill != want.Fill {
		have.Fill = want.Fill
		changed = true
	}
	return changed
}

// SetFill paints every node of class and returns how many fills changed.
func (s *Scene) SetFill(class, fill string) int {
	changed := 0
	for _, id := range s.order {
		n := s.nodes[id]
		if n.Class == class && n.Fill != fill {
			n.Fill = fill
			changed++
		}
	}
	return changed
}

// Len returns the number of retained nodes.
func (s *Scene) Len() int {
	return len(s.order)
}

// Node returns a copy of the node with the given ID.
func (s *Scene) Node(id string) (Node, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Nodes returns copies of all nodes in paint order.
func (s *Scene) Nodes() []Node {
	out := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id].clone())
	}
	return out
}

// ByClass returns copies of the nodes tagged with class.
func (s *Scene) ByClass(class string) []Node {
	var out []Node
	for _, id := range s.order {
		if n := s.nodes[id]; n.Class == class {
			out = append(out, n.clone())
		}
	}
	return out
}

func sortedAttrKeys(attrs map[string]float64) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
