package ranged_search

type (
	_SearchOptions struct {
		ProbeHook func(index int, ord Ordering)
	}
	SearchOption func(o *_SearchOptions)
)

// UseProbeHook calls the given function after each comparison,
// with the probed index and the Ordering the comparator returned.
//
// The hook is called in probe order, on the calling goroutine.
func UseProbeHook(hook func(index int, ord Ordering)) SearchOption {
	return func(o *_SearchOptions) {
		o.ProbeHook = hook
	}
}
