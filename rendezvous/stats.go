package rendezvous

import (
	"fmt"

	"github.com/pkopriv2/rendezvous/session"
	metrics "github.com/rcrowley/go-metrics"
)

type MatcherStats struct {
	offersChecked  metrics.Counter
	offersAccepted metrics.Counter
	offersRejected metrics.Counter
	selections     metrics.Counter
	misses         metrics.Counter
}

// Counters are shared by every matcher for the same request within a
// registry.
func NewMatcherStats(r metrics.Registry, req session.Opts) *MatcherStats {
	return &MatcherStats{
		offersChecked: metrics.GetOrRegisterCounter(
			NewMatcherMetricName(req, "matcher.OffersChecked"), r),
		offersAccepted: metrics.GetOrRegisterCounter(
			NewMatcherMetricName(req, "matcher.OffersAccepted"), r),
		offersRejected: metrics.GetOrRegisterCounter(
			NewMatcherMetricName(req, "matcher.OffersRejected"), r),

		selections: metrics.GetOrRegisterCounter(
			NewMatcherMetricName(req, "matcher.Selections"), r),
		misses: metrics.GetOrRegisterCounter(
			NewMatcherMetricName(req, "matcher.Misses"), r)}
}

func NewMatcherMetricName(req session.Opts, name string) string {
	return fmt.Sprintf("-- %016x --: %s", req.Hash(), name)
}

func (s *MatcherStats) OffersChecked() int64 {
	return s.offersChecked.Count()
}

func (s *MatcherStats) OffersAccepted() int64 {
	return s.offersAccepted.Count()
}

func (s *MatcherStats) OffersRejected() int64 {
	return s.offersRejected.Count()
}

func (s *MatcherStats) Selections() int64 {
	return s.selections.Count()
}

func (s *MatcherStats) Misses() int64 {
	return s.misses.Count()
}
