package linebreak

// node is one surviving breakpoint candidate in the active-list search.
// previous chains back to the node this one extends, ultimately to the
// sentinel (previous == nil), letting the final choice reconstruct its
// whole line partition by walking backward once.
type node struct {
	position    int // index into items, or -1 for the sentinel
	after       int // after(position): first content index of the next line
	line        int // 1-based line number this node terminates
	adjRatio    float64
	fitness     int
	totDemerits float64
	previous    *node
}

// arena owns every node allocated during one BreakLines call. Nothing
// escapes it except the []Line produced by reconstruct, per spec's
// recommendation that node storage be released in bulk at end of call.
type arena struct {
	nodes []*node
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) alloc(n node) *node {
	p := &n
	a.nodes = append(a.nodes, p)
	return p
}

func startSentinel() *node {
	return &node{
		position:    -1,
		after:       0,
		line:        0,
		adjRatio:    1,
		fitness:     FitnessNormal,
		totDemerits: 0,
		previous:    nil,
	}
}
