package cabac

// maxContextLen is how many preceding samples condition the next one.
const maxContextLen = 4

// Context is a causal coding context: up to the 4 most recent quantized
// samples preceding the current index within one flattened block, oldest
// first. It is fixed-width and comparable, so it keys the frequency table
// directly instead of the delimited strings the scheme originated with.
type Context struct {
	vals [maxContextLen]float64
	n    uint8
}

// Len returns how many samples the context holds (0 at the start of a block).
func (c Context) Len() int { return int(c.n) }

// ContextOf derives the context for index i of a flattened block.
func ContextOf(samples []float64, i int) Context {
	start := i - maxContextLen
	if start < 0 {
		start = 0
	}
	var ctx Context
	for j := start; j < i; j++ {
		ctx.vals[ctx.n] = samples[j]
		ctx.n++
	}
	return ctx
}

// Interval is a half-open probability range within [0, 1).
type Interval struct {
	Low  float64
	High float64
}

// observation keys one (context, value) pair in the frequency table.
type observation struct {
	ctx   Context
	value float64
}

// ContextModel holds the frequency statistics shared across every block of
// an image. The table is never reset between blocks. In its stock form the
// model records nothing: counts stay zero, every interval is the full [0,1),
// and the coder spends exactly one bit per sample. An adaptive model counts
// each coded pair, which narrows intervals as statistics accumulate.
type ContextModel struct {
	counts   map[observation]uint64
	total    uint64
	adaptive bool
}

// NewContextModel creates an empty model.
func NewContextModel(adaptive bool) *ContextModel {
	return &ContextModel{
		counts:   make(map[observation]uint64),
		adaptive: adaptive,
	}
}

// Probability returns the coding interval for value conditioned on ctx:
// [count/(total+1), (count+1)/(total+1)). total is the global sum of all
// recorded counts across every context, not the sum within ctx.
func (m *ContextModel) Probability(value float64, ctx Context) Interval {
	count := m.counts[observation{ctx: ctx, value: value}]
	denom := float64(m.total + 1)
	return Interval{
		Low:  float64(count) / denom,
		High: float64(count+1) / denom,
	}
}

// Observe records a coded (context, value) pair. No-op on a non-adaptive
// model.
func (m *ContextModel) Observe(value float64, ctx Context) {
	if !m.adaptive {
		return
	}
	m.counts[observation{ctx: ctx, value: value}]++
	m.total++
}

// Total returns the global observation count.
func (m *ContextModel) Total() uint64 { return m.total }
