package session

import "slices"

// Sorts the options in place using the canonical order.
func Sort(opts []Opts) {
	slices.SortFunc(opts, Compare)
}

// Returns the lowest and highest options under the canonical order.
// ok is false when opts is empty.
func Bounds(opts []Opts) (lo Opts, hi Opts, ok bool) {
	if len(opts) == 0 {
		return
	}

	return slices.MinFunc(opts, Compare), slices.MaxFunc(opts, Compare), true
}
