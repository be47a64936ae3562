package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the package's core tracer, following the gtrace.CoreTracer
// convention npillmayer/tyse's own Knuth-Plass packages use (see
// engine/frame/khipu/linebreak/knuthplass). Callers that want visibility
// into the search loop point gtrace.CoreTracer at a real adapter
// (gologadapter, gotestingadapter, ...); by default it is a no-op.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
