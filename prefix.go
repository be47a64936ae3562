package linebreak

// prefixSums holds cumulative width, stretch, and shrink totals over
// the item stream so that any range [a,b) can be summed in O(1),
// rather than rescanning items on every candidate break pair.
type prefixSums struct {
	width   []float64
	stretch []float64
	shrink  []float64
}

// newPrefixSums builds the three prefix tables for items. Entry i holds
// the sum over items[0:i], so the sum over [a,b) is table[b]-table[a].
func newPrefixSums(items []Item) *prefixSums {
	n := len(items)
	p := &prefixSums{
		width:   make([]float64, n+1),
		stretch: make([]float64, n+1),
		shrink:  make([]float64, n+1),
	}
	for i, it := range items {
		p.width[i+1] = p.width[i] + it.Width
		p.stretch[i+1] = p.stretch[i] + it.Stretch
		p.shrink[i+1] = p.shrink[i] + it.Shrink
	}
	return p
}

// sumWidth returns the total width of items[a:b).
func (p *prefixSums) sumWidth(a, b int) float64 {
	return p.width[b] - p.width[a]
}

// sumStretch returns the total stretch of items[a:b).
func (p *prefixSums) sumStretch(a, b int) float64 {
	return p.stretch[b] - p.stretch[a]
}

// sumShrink returns the total shrink of items[a:b).
func (p *prefixSums) sumShrink(a, b int) float64 {
	return p.shrink[b] - p.shrink[a]
}

// lineLength returns the natural width of a line running from item
// index a up to a break at b. Glue at the break point is discarded (it
// never renders), but a penalty's width (e.g. a hyphen) is only paid
// when the break actually happens there, so it is added in.
func (p *prefixSums) lineLength(items []Item, a, b int) float64 {
	L := p.sumWidth(a, b)
	if b >= 0 && b < len(items) && items[b].Type == TypePenalty {
		L += items[b].Width
	}
	return L
}
