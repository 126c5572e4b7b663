package worldmap

import (
	"shatteredmirror/internal/rng"
)

// NodeType classifies an encounter node on the act map.
type NodeType string

const (
	NodeStart  NodeType = "start"
	NodeCombat NodeType = "combat"
	NodeElite  NodeType = "elite"
	NodeRest   NodeType = "rest"
	NodeShop   NodeType = "shop"
	NodeEvent  NodeType = "event"
	NodeBoss   NodeType = "boss"
)

// RowCount is the fixed height of an act map: row 0 is the single start
// node, row RowCount-1 the single boss node.
const RowCount = 15

// Node is one encounter slot. Next holds column indices into the row
// above, sorted ascending.
type Node struct {
	Type NodeType `json:"type"`
	Next []int    `json:"next"`
}

// Map is the per-act directed layered graph. Immutable after generation;
// the run tracks its own visited set.
type Map struct {
	Act  int      `json:"act"`
	Rows [][]Node `json:"rows"`
}

// typeWeights returns the weighted node-type table for intermediate rows.
// Elites never appear before row 4, so early floors stay survivable.
func typeWeights(act, row int) ([]NodeType, []int) {
	types := []NodeType{NodeCombat, NodeElite, NodeRest, NodeShop, NodeEvent}
	var weights []int
	switch act {
	case 1:
		weights = []int{52, 8, 12, 8, 20}
	case 2:
		weights = []int{46, 14, 12, 10, 18}
	default:
		weights = []int{44, 18, 14, 10, 14}
	}
	if row < 4 {
		weights[1] = 0
	}
	return types, weights
}

// Generate lays out the act map from the run's generator. Identical
// (act, generator state) pairs yield identical maps.
func Generate(act int, r *rng.Source) *Map {
	m := &Map{Act: act, Rows: make([][]Node, RowCount)}

	m.Rows[0] = []Node{{Type: NodeStart}}
	for row := 1; row < RowCount-1; row++ {
		width := r.Between(2, 4)
		if row == 1 {
			// The lone start node can reach at most 3 nodes, so row 1
			// must not be wider than that.
			width = r.Between(2, 3)
		}
		nodes := make([]Node, width)
		types, weights := typeWeights(act, row)
		for col := range nodes {
			nodes[col] = Node{Type: types[r.WeightedIndex(weights)]}
		}
		m.Rows[row] = nodes
	}
	m.Rows[RowCount-1] = []Node{{Type: NodeBoss}}

	ensureType(m, r, NodeRest)
	ensureType(m, r, NodeShop)

	for row := 0; row < RowCount-1; row++ {
		connectRow(m, r, row)
	}

	return m
}

// ensureType guarantees at least one node of the given type somewhere in
// rows 2..12, overwriting a combat node if none rolled naturally.
func ensureType(m *Map, r *rng.Source, t NodeType) {
	for row := 1; row < RowCount-1; row++ {
		for _, n := range m.Rows[row] {
			if n.Type == t {
				return
			}
		}
	}
	for attempts := 0; attempts < 64; attempts++ {
		row := r.Between(2, RowCount-3)
		col := r.Intn(len(m.Rows[row]))
		if m.Rows[row][col].Type == NodeCombat {
			m.Rows[row][col].Type = t
			return
		}
	}
	// Degenerate roll streak: take the first combat node.
	for row := 1; row < RowCount-1; row++ {
		for col, n := range m.Rows[row] {
			if n.Type == NodeCombat {
				m.Rows[row][col].Type = t
				return
			}
		}
	}
}

// connectRow wires every node of the row to 1..3 nodes of the next row
// using proportional windows, so each next-row node is guaranteed an
// incoming edge and windows never cross.
func connectRow(m *Map, r *rng.Source, row int) {
	w := len(m.Rows[row])
	wNext := len(m.Rows[row+1])

	for j := 0; j < w; j++ {
		lo := j * wNext / w
		hi := (j+1)*wNext/w - 1
		if hi < lo {
			hi = lo
		}
		// Widen for variety while staying in bounds and under the
		// 3-edge cap.
		if hi-lo+1 < 3 && hi+1 < wNext && r.Chance(0.4) {
			hi++
		}
		if hi-lo+1 < 3 && lo > 0 && r.Chance(0.25) {
			lo--
		}
		edges := make([]int, 0, hi-lo+1)
		for k := lo; k <= hi; k++ {
			edges = append(edges, k)
		}
		m.Rows[row][j].Next = edges
	}
}

// Valid checks the structural invariants: 15 rows, single start and boss,
// in-bounds edges, no orphan nodes, at least one rest and one shop.
func (m *Map) Valid() bool {
	if len(m.Rows) != RowCount {
		return false
	}
	if len(m.Rows[0]) != 1 || m.Rows[0][0].Type != NodeStart {
		return false
	}
	last := m.Rows[RowCount-1]
	if len(last) != 1 || last[0].Type != NodeBoss {
		return false
	}

	haveRest, haveShop := false, false
	for row := 0; row < RowCount; row++ {
		incoming := map[int]bool{}
		if row > 0 {
			for _, n := range m.Rows[row-1] {
				for _, k := range n.Next {
					if k < 0 || k >= len(m.Rows[row]) {
						return false
					}
					incoming[k] = true
				}
			}
			if len(incoming) != len(m.Rows[row]) {
				return false
			}
		}
		for _, n := range m.Rows[row] {
			switch n.Type {
			case NodeRest:
				haveRest = true
			case NodeShop:
				haveShop = true
			}
			if row < RowCount-1 && (len(n.Next) < 1 || len(n.Next) > 3) {
				return false
			}
			if row == RowCount-1 && len(n.Next) != 0 {
				return false
			}
		}
	}
	return haveRest && haveShop
}
