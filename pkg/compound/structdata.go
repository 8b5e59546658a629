// Package compound implements the shared-data memory manager backing
// every non-primitive value: refcounted allocation (StructData), and for
// values that may participate in reference cycles, a parent-set
// extension (CompoundData) enabling cycle reclamation without a tracing
// collector (spec §3, §4.3).
package compound

// StructHeader is the minimal shared-data header: just a reference
// count. Struct subtypes that cannot hold other values (the extended
// Status form, Iterator) use this directly and never need adopt/abandon.
type StructHeader struct {
	refcount int32
}

// NewStructHeader returns a header with refcount 1, as freshly allocated
// shared data always starts owned by its creator.
func NewStructHeader() *StructHeader {
	return &StructHeader{refcount: 1}
}

// Ref increments the refcount; used by Clone.
func (h *StructHeader) Ref() {
	h.refcount++
}

// RefCount returns the current refcount.
func (h *StructHeader) RefCount() int32 {
	return h.refcount
}

// Release decrements the refcount and invokes fini when it reaches zero.
func (h *StructHeader) Release(fini func()) {
	if h.refcount <= 0 {
		panic("compound: StructHeader refcount underflow")
	}
	h.refcount--
	if h.refcount == 0 {
		fini()
	}
}
