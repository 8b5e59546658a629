package compound

// Node is implemented by every compound-subtype container (Array, Map,
// and any Socket/File/SockAddr/StringIO-like type that can hold or be
// held by other values) so the cycle-reclamation machinery can walk the
// parent graph generically, without importing those concrete types.
type Node interface {
	Header() *Header
}

// Header is CompoundData: a StructHeader plus parent-set bookkeeping
// enabling cycle reclamation (spec §3, §4.3). Unlike StructHeader's
// refcount (which any holder may legitimately decrement to zero and
// free), Header's refcount is the "external root" count: references held
// by other compound values as their *child* are tracked separately via
// the parent set and never touch this field (spec's Invariants: "the
// refcount counts non-parent references").
type Header struct {
	extRefcount int32
	destroying  bool
	parents     parentSet
}

// NewHeader returns a header representing a freshly created value with
// external refcount 1 (held by its creator) and no parents.
func NewHeader() *Header {
	return &Header{extRefcount: 1}
}

// RefCount returns the external (non-parent) refcount.
func (h *Header) RefCount() int32 {
	return h.extRefcount
}

// IsDestroying reports whether this value's teardown is in progress (the
// reentrancy guard from spec §3's Lifecycle section).
func (h *Header) IsDestroying() bool {
	return h.destroying
}

// HasParents reports whether any compound value has adopted this one as
// a child.
func (h *Header) HasParents() bool {
	return !h.parents.empty()
}

// Clone increments the external refcount, mirroring spec §4.3's
// "clone for a struct subtype increments the refcount... the shared
// block is untouched."
func Clone(n Node) {
	n.Header().extRefcount++
}

// Adopt records that parent has taken ownership of child as a contained
// value (spec §4.3). If parent == child (a self-referential container
// adopting itself), the external reference that was about to be adopted
// is simply released — no parent edge is recorded, since the plain
// refcount arithmetic alone reclaims a purely self-referential value once
// its last external reference is dropped (see Release).
//
// Otherwise, child's external refcount is decremented (the reference
// moved from "external root" to "held by parent") and a parent edge is
// recorded (or its per-edge refcount bumped if parent had already
// adopted child once before, e.g. appending the same array twice into
// itself... into another array).
func Adopt(parent, child Node) {
	ch := child.Header()
	if sameNode(parent, child) {
		ch.extRefcount--
		return
	}
	ch.parents.bumpOrInsert(parent)
	ch.extRefcount--
}

// Abandon removes one edge parent->child (decrementing its per-edge
// refcount, removing the edge entirely once it hits zero). It returns
// true when the edge was removed, meaning parent no longer references
// child at all.
func Abandon(parent, child Node) bool {
	return child.Header().parents.decrementAndMaybeRemove(parent)
}

// Release drops one external reference to n (the counterpart of a plain
// destroy() call on a value that isn't owned by any container). When the
// external refcount reaches zero, Release attempts to finalize n via the
// cycle-safe procedure below; fini is called exactly once, when (and if)
// n is actually collected.
func Release(n Node, fini func()) {
	h := n.Header()
	if h.extRefcount <= 0 {
		panic("compound: Header refcount underflow")
	}
	h.extRefcount--
	if h.extRefcount == 0 {
		attemptFinalize(n, fini)
	}
}

// ReleaseAsChild is called by a dying parent's fini, once per owned
// compound child, instead of Release: the child's external refcount was
// already decremented back when Adopt first recorded the parent edge, so
// tearing down the parent must not decrement it a second time. Instead it
// removes the parent edge and, if that was the child's last parent *and*
// its external refcount is already zero, re-attempts finalizing the
// child now that one of its blockers is gone (spec §4.3: "children that
// participated in the cycle will abandon the dying parent and, on their
// own refcount reaching zero, recurse through the same procedure").
func ReleaseAsChild(parent, child Node, childFini func()) {
	ch := child.Header()
	lastParent := Abandon(parent, child)
	if lastParent && ch.extRefcount == 0 {
		attemptFinalize(child, childFini)
	}
}

// attemptFinalize implements spec §4.3's reachability walk: a compound
// value with external refcount zero is only actually freed once no
// ancestor reachable through its parent set still holds a nonzero
// external refcount (such an ancestor would make n transitively
// reachable from a live root). The walk also naturally terminates on
// cycles via the visited set; re-entering n itself is not special-cased
// separately since a node can't be its own live root (plain recursion
// with `visited` suffices).
func attemptFinalize(n Node, fini func()) {
	h := n.Header()
	if h.destroying || h.extRefcount != 0 {
		return
	}
	if h.parents.empty() {
		h.destroying = true
		fini()
		return
	}

	visited := map[*Header]bool{h: true}
	live := false
	var walk func(cur Node)
	walk = func(cur Node) {
		for _, e := range cur.Header().parents.all() {
			if live {
				return
			}
			ph := e.parent.Header()
			if ph.extRefcount > 0 {
				live = true
				return
			}
			if visited[ph] {
				continue
			}
			visited[ph] = true
			walk(e.parent)
		}
	}
	walk(n)
	if live {
		return
	}
	h.destroying = true
	fini()
}

func sameNode(a, b Node) bool {
	return a.Header() == b.Header()
}
