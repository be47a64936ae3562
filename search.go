package linebreak

import (
	"fmt"
	"math"
)

// Line is one output line: the half-open item range [Start, End) that
// fills it, plus the adjustment ratio and fitness class it was set at.
type Line struct {
	Start    int
	End      int
	AdjRatio float64
	Fitness  int
}

// Result is the outcome of a successful BreakLines call.
type Result struct {
	Lines []Line
	// TotalDemerits is the paragraph-wide cost of the chosen partition.
	TotalDemerits float64
}

// BreakLines partitions items into lines of (approximately) targetWidth,
// minimizing total demerits over the whole paragraph. items must start
// with a Box and end with a forced Penalty (p = -Inf); see NewPenalty.
//
// A targetWidth of +Inf requests the degenerate "one line per forced
// break" layout: every line is exactly as wide as it needs to be, with
// adjustment ratio 0, and no search is performed.
func BreakLines(items []Item, targetWidth float64, opts Options) (*Result, error) {
	if err := validate(items); err != nil {
		T().Errorf(err.Error())
		return nil, err
	}
	opts = opts.withDefaults()

	if math.IsInf(targetWidth, 1) {
		T().Debugf("break_lines: target width is +Inf, using one line per forced break")
		return breakForcedOnly(items), nil
	}

	return search(items, targetWidth, opts)
}

func validate(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if items[0].Type != TypeBox {
		return fmt.Errorf("%w: items[0] is %s", ErrInvalidStart, items[0].Type)
	}
	last := items[len(items)-1]
	if !isForcedBreak(items, len(items)-1) {
		return fmt.Errorf("%w: items[%d] is %s", ErrInvalidTerminator, len(items)-1, last.Type)
	}
	return nil
}

// breakForcedOnly lays out one line per forced break, used for the
// +Inf target-width special case (spec's "no active-list search").
func breakForcedOnly(items []Item) *Result {
	var lines []Line
	start := 0
	for b := 0; b < len(items); b++ {
		if isForcedBreak(items, b) {
			lines = append(lines, Line{Start: start, End: b, AdjRatio: 0, Fitness: FitnessNormal})
			start = after(items, b)
		}
	}
	return &Result{Lines: lines, TotalDemerits: 0}
}

// candidate is a provisional extension of an active node a to break b,
// kept only until the best-per-fitness-class selection at the end of
// processing index b.
type candidate struct {
	parent *node
	r      float64
	fit    int
	tot    float64
}

// search runs the Knuth-Plass active-list dynamic program described by
// spec.md §4.8: scan every legal break left to right, keep at most one
// surviving node per fitness class at each step, and fall back to an
// overfull line if the active set would otherwise empty out.
func search(items []Item, W float64, opts Options) (*Result, error) {
	ps := newPrefixSums(items)
	ar := newArena()

	sentinel := startSentinel()
	ar.nodes = append(ar.nodes, sentinel)
	active := []*node{sentinel}

	T().Debugf("search: %d items, target width %.2f, tolerance %.2f", len(items), W, opts.PTolerance)

	n := len(items)
	for b := 0; b < n; b++ {
		if !isLegalBreak(items, b) {
			continue
		}
		forced := isForcedBreak(items, b)
		prevActive := active

		var passive []int
		var feasible []candidate

		for idx, a := range active {
			L := ps.lineLength(items, a.after, b)
			Y := ps.sumStretch(a.after, b)
			Z := ps.sumShrink(a.after, b)
			r := adjustmentRatio(L, W, Y, Z)

			if r < -1 || forced {
				passive = append(passive, idx)
			}
			if r >= -1 && r < opts.PTolerance {
				feasible = append(feasible, makeCandidate(items, opts, a, b, r))
			}
		}
		T().Debugf("  b=%d forced=%v: %d active, %d feasible, %d passivated", b, forced, len(active), len(feasible), len(passive))

		active = removeIndices(active, passive)

		newNodes := bestPerFitness(ar, items, feasible, b)
		if len(newNodes) > 0 {
			active = append(active, newNodes...)
		} else if len(active) == 0 {
			T().Infof("  b=%d: active set emptied, falling back to an overfull line", b)
			active = overfullFallback(ar, items, ps, opts, prevActive, b, W)
		}
	}

	if len(active) == 0 {
		T().Errorf(ErrNoSolution.Error())
		return nil, ErrNoSolution
	}

	best := active[0]
	for _, nd := range active[1:] {
		if nd.totDemerits < best.totDemerits {
			best = nd
		}
	}

	lines := reconstruct(best)
	T().Infof("search: found %d lines, total demerits %.2f", len(lines), best.totDemerits)
	return &Result{Lines: lines, TotalDemerits: best.totDemerits}, nil
}

func makeCandidate(items []Item, opts Options, a *node, b int, r float64) candidate {
	beta := badness(r)
	p := penaltyAt(items, b)
	fit := fitnessClass(r)

	alpha := 0.0
	if flaggedAt(items, a.position) && flaggedAt(items, b) {
		alpha = opts.Alpha
	}
	gamma := 0.0
	if abs(fit-a.fitness) > 1 {
		gamma = opts.Gamma
	}

	d := demerits(opts.LinePenalty, beta, p, alpha, gamma)
	return candidate{parent: a, r: r, fit: fit, tot: a.totDemerits + d}
}

// bestPerFitness keeps, for each of the four fitness classes, only the
// feasible candidate with the lowest total demerits, and allocates a
// node for each survivor.
func bestPerFitness(ar *arena, items []Item, feasible []candidate, b int) []*node {
	var best [4]*candidate
	for i := range feasible {
		c := &feasible[i]
		if best[c.fit] == nil || c.tot < best[c.fit].tot {
			best[c.fit] = c
		}
	}

	var out []*node
	for fit := 0; fit < 4; fit++ {
		c := best[fit]
		if c == nil {
			continue
		}
		nd := ar.alloc(node{
			position:    b,
			after:       after(items, b),
			line:        c.parent.line + 1,
			adjRatio:    c.r,
			fitness:     fit,
			totDemerits: c.tot,
			previous:    c.parent,
		})
		out = append(out, nd)
	}
	return out
}

// overfullFallback handles the case where every node active before
// processing b was passivated and no feasible candidate survived: the
// paragraph must still break somewhere, so every previously-active
// node is force-extended with r clamped to the feasible floor of -1,
// and the best survivor per fitness class becomes the new active set.
func overfullFallback(ar *arena, items []Item, ps *prefixSums, opts Options, prevActive []*node, b int, targetWidth float64) []*node {
	var feasible []candidate
	for _, a := range prevActive {
		L := ps.lineLength(items, a.after, b)
		Y := ps.sumStretch(a.after, b)
		Z := ps.sumShrink(a.after, b)
		r := adjustmentRatio(L, targetWidth, Y, Z)
		rPrime := math.Max(-1, r)
		T().Debugf("    overfull candidate from line=%d: r=%.3f clamped to %.3f", a.line, r, rPrime)
		feasible = append(feasible, makeCandidate(items, opts, a, b, rPrime))
	}
	return bestPerFitness(ar, items, feasible, b)
}

func removeIndices(nodes []*node, indices []int) []*node {
	if len(indices) == 0 {
		return nodes
	}
	skip := make(map[int]bool, len(indices))
	for _, i := range indices {
		skip[i] = true
	}
	out := make([]*node, 0, len(nodes)-len(indices))
	for i, nd := range nodes {
		if !skip[i] {
			out = append(out, nd)
		}
	}
	return out
}

func reconstruct(n *node) []Line {
	var lines []Line
	for cur := n; cur.previous != nil; cur = cur.previous {
		lines = append(lines, Line{
			Start:    cur.previous.after,
			End:      cur.position,
			AdjRatio: cur.adjRatio,
			Fitness:  cur.fitness,
		})
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
