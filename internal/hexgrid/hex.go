package hexgrid

// Hex is an axial coordinate on a pointy-top hex grid.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// directions lists the six axial neighbors in a fixed order. The order
// matters: StepToward breaks ties by it, so changing it changes replays.
var directions = [6]Hex{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Add returns a + b component-wise.
func Add(a, b Hex) Hex {
	return Hex{a.Q + b.Q, a.R + b.R}
}

// Distance returns the hex distance between a and b.
func Distance(a, b Hex) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Neighbors returns the six hexes adjacent to h.
func Neighbors(h Hex) []Hex {
	out := make([]Hex, 6)
	for i, d := range directions {
		out[i] = Add(h, d)
	}
	return out
}

// AllHexes returns every hex within the given radius of the origin,
// 3r^2 + 3r + 1 in total.
func AllHexes(radius int) []Hex {
	if radius < 0 {
		return nil
	}
	out := make([]Hex, 0, 3*radius*radius+3*radius+1)
	for q := -radius; q <= radius; q++ {
		rMin := max(-radius, -q-radius)
		rMax := min(radius, -q+radius)
		for r := rMin; r <= rMax; r++ {
			out = append(out, Hex{q, r})
		}
	}
	return out
}

// InRange reports whether b lies within r hexes of a.
func InRange(a, b Hex, r int) bool {
	return Distance(a, b) <= r
}

// Range returns every hex within r of center.
func Range(center Hex, r int) []Hex {
	base := AllHexes(r)
	out := make([]Hex, len(base))
	for i, h := range base {
		out[i] = Add(center, h)
	}
	return out
}

// StepToward returns the neighbor of from that is closest to to, taking
// one step along a shortest path. Ties resolve to the first direction in
// table order. Returns from unchanged when already at to.
func StepToward(from, to Hex) Hex {
	if from == to {
		return from
	}
	best := from
	bestDist := Distance(from, to)
	for _, n := range Neighbors(from) {
		if d := Distance(n, to); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
