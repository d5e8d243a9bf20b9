package gc

// sweep runs a strict four-step order: purge weak entries, purge the
// oblist, sweep pages (finalize + reclaim), then check whether to grow.
// Nothing here may allocate a GC object.
func (h *Heap) sweep() {
	h.purgeWeaks()
	h.oblist.purge(h)

	inuse, total := h.backend.sweepPages()
	h.stats.InUse = inuse
	h.stats.Total = total
	h.stats.Pages = h.backend.pageCount()

	h.maybeGrow(inuse, total)
}

// purgeWeaks deletes every weak-map entry whose key didn't survive marking,
// draining heap.weakChainHead as it goes.
func (h *Heap) purgeWeaks() {
	w := h.weakChainHead
	h.weakChainHead = nil
	for w != nil {
		wk := w.payload.(*Weak)
		next := wk.chainNext
		wk.chainNext = nil
		for k := range wk.Table {
			if !h.isMarked(k) {
				delete(wk.Table, k)
			}
		}
		w = next
	}
}

// maybeGrow requests one more page once inuse*denominator >= total*numerator.
func (h *Heap) maybeGrow(inuse, total int) {
	if total == 0 {
		h.backend.morecore(h.alloc, h.opts.UnitsPerPage)
		h.stats.Pages = h.backend.pageCount()
		return
	}
	if inuse*h.opts.GrowthDenominator >= total*h.opts.GrowthNumerator {
		h.backend.morecore(h.alloc, h.opts.UnitsPerPage)
		h.stats.Pages = h.backend.pageCount()
		h.debugf("grew heap to %d pages (inuse=%d total=%d)", h.stats.Pages, inuse, total)
	}
}
