package rendezvous

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkopriv2/rendezvous/common"
	"github.com/pkopriv2/rendezvous/session"
	metrics "github.com/rcrowley/go-metrics"
)

const (
	confMatchHighest = "rendezvous.match.highest"
)

type MatcherOptions struct {
	logger   common.Logger
	registry metrics.Registry
	highest  bool
}

func (o *MatcherOptions) WithLogger(l common.Logger) *MatcherOptions {
	o.logger = l
	return o
}

func (o *MatcherOptions) WithRegistry(r metrics.Registry) *MatcherOptions {
	o.registry = r
	return o
}

// Prefer the offer that sorts highest instead of lowest.
func (o *MatcherOptions) WithHighest(h bool) *MatcherOptions {
	o.highest = h
	return o
}

func buildMatcherOptions(conf common.Config, fns []func(*MatcherOptions)) *MatcherOptions {
	opts := &MatcherOptions{
		highest: conf.OptionalBool(confMatchHighest, false),
	}

	for _, fn := range fns {
		fn(opts)
	}

	if opts.logger == nil {
		opts.WithLogger(common.NewStandardLogger(conf))
	}

	if opts.registry == nil {
		opts.WithRegistry(metrics.DefaultRegistry)
	}

	return opts
}

// A matcher decides which of a set of offers should satisfy a request.
// Only compatible offers are considered and, among those, the preferred
// one is the lowest (or highest) under the canonical offer order.  Peers
// running a matcher over the same offers pick the same winner.
//
// Matchers hold no mutable state beyond their counters and are safe for
// concurrent use.
type Matcher struct {
	request session.Opts
	highest bool
	logger  common.Logger
	stats   *MatcherStats
}

func NewMatcher(conf common.Config, req session.Opts, fns ...func(*MatcherOptions)) *Matcher {
	opts := buildMatcherOptions(conf, fns)
	return &Matcher{
		request: req,
		highest: opts.highest,
		logger:  common.FormatLogger(opts.logger, req),
		stats:   NewMatcherStats(opts.registry, req),
	}
}

func (m *Matcher) Request() session.Opts {
	return m.request
}

func (m *Matcher) Stats() *MatcherStats {
	return m.stats
}

// Returns true if the offer can satisfy the request.
func (m *Matcher) Accepts(o Offer) bool {
	m.stats.offersChecked.Inc(1)
	if !m.request.IsCompatible(o.Opts) {
		m.stats.offersRejected.Inc(1)
		m.logger.Debug("Rejected offer [%v]", o)
		return false
	}

	m.stats.offersAccepted.Inc(1)
	return true
}

// Returns the compatible offers, most preferred first.
func (m *Matcher) Rank(offers []Offer) []Offer {
	heap := m.rank(offers)

	ret := make([]Offer, 0, heap.Size())
	for {
		val, ok := heap.Pop()
		if !ok {
			return ret
		}
		ret = append(ret, val.(Offer))
	}
}

// Returns the most preferred compatible offer.  ok is false when no
// offer is compatible.
func (m *Matcher) Best(offers []Offer) (best Offer, ok bool) {
	val, ok := m.rank(offers).Peek()
	if !ok {
		m.stats.misses.Inc(1)
		m.logger.Info("No compatible offer among [%v]", len(offers))
		return Offer{}, false
	}

	m.stats.selections.Inc(1)
	best = val.(Offer)
	m.logger.Debug("Selected offer [%v]", best)
	return best, true
}

// Returns the options of the session that would be formed by joining
// the offer.  ok is false if the offer is incompatible.
func (m *Matcher) Join(o Offer) (opts session.Opts, ok bool) {
	if !m.Accepts(o) {
		return session.Opts{}, false
	}

	return session.Intersect(m.request, o.Opts), true
}

func (m *Matcher) rank(offers []Offer) *binaryheap.Heap {
	heap := binaryheap.NewWith(m.comparator)
	for _, o := range offers {
		if m.Accepts(o) {
			heap.Push(o)
		}
	}
	return heap
}

func (m *Matcher) comparator(a, b interface{}) int {
	if m.highest {
		return offerComparator(b, a)
	}
	return offerComparator(a, b)
}
