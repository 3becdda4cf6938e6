package board

// Prefetcher is the opaque collaborator MakeMove calls into after
// updating each hash so the owning thread can warm the transposition,
// pawn-hash, and material-hash caches before the position is probed.
// None of those caches are owned by this package; a nil Prefetcher
// (the default for a freshly parsed Position) makes every call a
// silent no-op, which is exactly right for single-threaded tests that
// never attach one.
type Prefetcher interface {
	PrefetchTT(key uint64)
	PrefetchPawnCache(key uint64)
	PrefetchMaterialCache(key uint64)
}

func (p *Position) prefetchTT(key uint64) {
	if p.thread != nil {
		p.thread.PrefetchTT(key)
	}
}

func (p *Position) prefetchPawnCache(key uint64) {
	if p.thread != nil {
		p.thread.PrefetchPawnCache(key)
	}
}

func (p *Position) prefetchMaterialCache(key uint64) {
	if p.thread != nil {
		p.thread.PrefetchMaterialCache(key)
	}
}
