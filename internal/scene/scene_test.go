package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleNodes(x float64) []Node {
	return []Node{
		{ID: "head", Class: "head", Kind: KindCircle, Attrs: map[string]float64{"cx": 300, "cy": 92, "r": 32}},
		{ID: "arm-0", Class: "arm", Kind: KindRect, Attrs: map[string]float64{"x": x, "y": 150, "width": 24, "height": 88, "rx": 8}},
		{ID: "arm-1", Class: "arm", Kind: KindRect, Attrs: map[string]float64{"x": x + 120, "y": 150, "width": 24, "height": 88, "rx": 8}},
	}
}

func TestReconcileCreatesThenIsIdempotent(t *testing.T) {
	t.Parallel()

	s := New()
	first := s.Reconcile(sampleNodes(200))
	require.Equal(t, []string{"head", "arm-0", "arm-1"}, first.Created)
	require.Empty(t, first.Updated)
	require.Equal(t, 3, s.Len())

	second := s.Reconcile(sampleNodes(200))
	require.True(t, second.Empty())
	require.Equal(t, 3, s.Len())
}

func TestReconcileUpdatesChangedAttributesOnly(t *testing.T) {
	t.Parallel()

	s := New()
	s.Reconcile(sampleNodes(200))

	patch := s.Reconcile(sampleNodes(210))
	require.Empty(t, patch.Created)
	require.ElementsMatch(t, []string{"arm-0", "arm-1"}, patch.Updated)

	arm, ok := s.Node("arm-0")
	require.True(t, ok)
	require.Equal(t, 210.0, arm.Attrs["x"])
}

func TestReconcileRemovesMissingNodes(t *testing.T) {
	t.Parallel()

	s := New()
	s.Reconcile(sampleNodes(200))

	patch := s.Reconcile(sampleNodes(200)[:1])
	require.ElementsMatch(t, []string{"arm-0", "arm-1"}, patch.Removed)
	require.Equal(t, 1, s.Len())
	_, ok := s.Node("arm-1")
	require.False(t, ok)
}

func TestReconcileKeepsFillAcrossGeometryChanges(t *testing.T) {
	t.Parallel()

	s := New()
	s.Reconcile(sampleNodes(200))
	require.Equal(t, 2, s.SetFill("arm", "#3b82f6"))
	require.Equal(t, 0, s.SetFill("arm", "#3b82f6"))

	s.Reconcile(sampleNodes(250))
	for _, n := range s.ByClass("arm") {
		require.Equal(t, "#3b82f6", n.Fill)
	}
}

func TestReconcileSkipsDuplicateIDs(t *testing.T) {
	t.Parallel()

	nodes := append(sampleNodes(200), sampleNodes(999)[1])
	s := New()
	patch := s.Reconcile(nodes)
	require.Len(t, patch.Created, 3)

	arm, _ := s.Node("arm-0")
	require.Equal(t, 200.0, arm.Attrs["x"])
}

func TestNodesAreCopies(t *testing.T) {
	t.Parallel()

	s := New()
	s.Reconcile(sampleNodes(200))
	nodes := s.Nodes()
	nodes[0].Attrs["r"] = 1

	head, _ := s.Node("head")
	require.Equal(t, 32.0, head.Attrs["r"])
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()

	s := New()
	require.True(t, s.SetViewBox(600, 400))
	require.False(t, s.SetViewBox(600, 400))
	s.Reconcile(sampleNodes(200.126))
	s.SetFill("head", "#f6d7b0")

	var buf bytes.Buffer
	require.NoError(t, s.WriteSVG(&buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 400"`))
	require.Contains(t, out, `<g class="person">`)
	require.Contains(t, out, `<circle id="head" class="head" cx="300" cy="92" r="32" fill="#f6d7b0"/>`)
	require.Contains(t, out, `<rect id="arm-0" class="arm" x="200.13" y="150" width="24" height="88" rx="8"/>`)
	require.Equal(t, 1, strings.Count(out, "<circle"))
	require.Equal(t, 2, strings.Count(out, "<rect"))
}
