package generate

import (
	"dungeonforge/internal/dungeon"
	"dungeonforge/internal/grid"
)

// bspMaxDepth caps the partition recursion.
const bspMaxDepth = 5

// bspNode is one node of the partition tree. The tree lives in a flat
// slice with child indices instead of pointers, which keeps ownership
// obvious and makes the tree trivial to dump when debugging.
type bspNode struct {
	x, y, w, h  int
	left, right int // node indices, -1 for a leaf
	room        int // room ID, -1 when the leaf hosts none
}

// runBSP partitions the map, seeds one room per leaf, and connects sibling
// subtrees pairwise with L-shaped corridors.
func (g *Generator) runBSP() {
	nodes := []bspNode{{x: 0, y: 0, w: g.params.Width, h: g.params.Height, left: -1, right: -1, room: -1}}
	g.splitNode(&nodes, 0, 0)

	for i := range nodes {
		if nodes[i].left == -1 && nodes[i].right == -1 {
			g.requested++
			nodes[i].room = g.createRoomInRect(nodes[i].x, nodes[i].y, nodes[i].w, nodes[i].h)
		}
	}

	g.connectSubtrees(nodes, 0)
}

// splitNode recursively bisects the node at idx. The split axis follows
// the aspect ratio: a node more than 25% wider than tall splits
// vertically, more than 25% taller splits horizontally, otherwise the
// axis is a coin flip.
func (g *Generator) splitNode(nodes *[]bspNode, idx, depth int) {
	if depth >= bspMaxDepth {
		return
	}
	n := (*nodes)[idx]

	minW := g.params.MinRoomW
	minH := g.params.MinRoomH

	canVertical := n.w >= 2*minW+2
	canHorizontal := n.h >= 2*minH+2

	var horizontal bool
	switch {
	case float64(n.w) > float64(n.h)*1.25:
		horizontal = false
	case float64(n.h) > float64(n.w)*1.25:
		horizontal = true
	default:
		horizontal = g.rng.Intn(2) == 0
	}
	if horizontal && !canHorizontal {
		if !canVertical {
			return // leaf: too small to split on either axis
		}
		horizontal = false
	}
	if !horizontal && !canVertical {
		if !canHorizontal {
			return
		}
		horizontal = true
	}

	var leftIdx, rightIdx int
	if horizontal {
		// Split coordinate leaves at least minH+1 cells on each side.
		split := g.randRange(minH+1, n.h-minH-1)
		*nodes = append(*nodes,
			bspNode{x: n.x, y: n.y, w: n.w, h: split, left: -1, right: -1, room: -1},
			bspNode{x: n.x, y: n.y + split, w: n.w, h: n.h - split, left: -1, right: -1, room: -1})
		leftIdx, rightIdx = len(*nodes)-2, len(*nodes)-1
	} else {
		split := g.randRange(minW+1, n.w-minW-1)
		*nodes = append(*nodes,
			bspNode{x: n.x, y: n.y, w: split, h: n.h, left: -1, right: -1, room: -1},
			bspNode{x: n.x + split, y: n.y, w: n.w - split, h: n.h, left: -1, right: -1, room: -1})
		leftIdx, rightIdx = len(*nodes)-2, len(*nodes)-1
	}
	(*nodes)[idx].left = leftIdx
	(*nodes)[idx].right = rightIdx

	g.splitNode(nodes, leftIdx, depth+1)
	g.splitNode(nodes, rightIdx, depth+1)
}

// createRoomInRect places one room inside a leaf rectangle with a one-cell
// margin from the leaf border. Returns -1 when the leaf cannot host the
// minimum room size; the validator later surfaces under-generation.
func (g *Generator) createRoomInRect(x, y, w, h int) int {
	maxW := g.params.MaxRoomW
	if w-2 < maxW {
		maxW = w - 2
	}
	maxH := g.params.MaxRoomH
	if h-2 < maxH {
		maxH = h - 2
	}
	if maxW < g.params.MinRoomW || maxH < g.params.MinRoomH {
		return -1
	}

	rw := g.randRange(g.params.MinRoomW, maxW)
	rh := g.randRange(g.params.MinRoomH, maxH)
	rx := x + g.randRange(1, w-rw-1)
	ry := y + g.randRange(1, h-rh-1)

	room := g.addRoom(grid.NewRect(rx, ry, rw, rh), dungeon.ShapeRectangle, true)
	return room.ID
}

// connectSubtrees walks internal nodes and connects one room from each
// child subtree with an L-shaped corridor.
func (g *Generator) connectSubtrees(nodes []bspNode, idx int) {
	n := nodes[idx]
	if n.left == -1 || n.right == -1 {
		return
	}
	g.connectSubtrees(nodes, n.left)
	g.connectSubtrees(nodes, n.right)

	a := g.pickRoom(nodes, n.left)
	b := g.pickRoom(nodes, n.right)
	if a >= 0 && b >= 0 {
		g.connectPair(a, b)
	}
}

// pickRoom descends the subtree at idx, choosing a random branch at every
// internal node, until it finds a leaf with a room. Returns -1 when the
// subtree hosts no rooms at all.
func (g *Generator) pickRoom(nodes []bspNode, idx int) int {
	n := nodes[idx]
	if n.left == -1 && n.right == -1 {
		return n.room
	}

	first, second := n.left, n.right
	if g.rng.Intn(2) == 0 {
		first, second = second, first
	}
	if r := g.pickRoom(nodes, first); r >= 0 {
		return r
	}
	return g.pickRoom(nodes, second)
}
