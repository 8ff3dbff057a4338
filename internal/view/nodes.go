package view

import (
	"fmt"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/layout"
	"github.com/alexisbeaulieu97/avatint/internal/scene"
)

// Shape classes used in the rendered surface.
const (
	ClassHead = "head"
	ClassBody = "body"
	ClassArm  = "arm"
	ClassLeg  = "leg"
	ClassShoe = "shoe"
)

// partClasses maps each part to the shape classes it colors.
var partClasses = map[avatar.Key][]string{
	avatar.KeyHead: {ClassHead},
	avatar.KeyBody: {ClassBody, ClassArm},
	avatar.KeyLeg:  {ClassLeg},
	avatar.KeyShoe: {ClassShoe},
}

// ClassesFor returns the shape classes painted with a part's color.
func ClassesFor(k avatar.Key) []string {
	return partClasses[k]
}

// Nodes converts a geometry snapshot into the scene's desired node set.
func Nodes(g layout.Geometry) []scene.Node {
	nodes := make([]scene.Node, 0, 8)
	nodes = append(nodes, scene.Node{
		ID:    ClassHead,
		Class: ClassHead,
		Kind:  scene.KindCircle,
		Attrs: map[string]float64{"cx": g.Head.CX, "cy": g.Head.CY, "r": g.Head.R},
	})
	nodes = append(nodes, rectNode(ClassBody, ClassBody, g.Torso))
	for i, r := range g.Arms {
		nodes = append(nodes, rectNode(fmt.Sprintf("%s-%d", ClassArm, i), ClassArm, r))
	}
	for i, r := range g.Legs {
		nodes = append(nodes, rectNode(fmt.Sprintf("%s-%d", ClassLeg, i), ClassLeg, r))
	}
	for i, r := range g.Shoes {
		nodes = append(nodes, rectNode(fmt.Sprintf("%s-%d", ClassShoe, i), ClassShoe, r))
	}
	return nodes
}

func rectNode(id, class string, r layout.Rect) scene.Node {
	return scene.Node{
		ID:    id,
		Class: class,
		Kind:  scene.KindRect,
		Attrs: map[string]float64{"x": r.X, "y": r.Y, "width": r.Width, "height": r.Height, "rx": r.RX},
	}
}
