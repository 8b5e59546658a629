// Package pwmap implements the insertion-ordered Map container (spec
// §4.4): a key-value pair array in insertion order plus an
// open-addressed hash index keyed by hash(key) & (capacity-1).
package pwmap

import (
	"github.com/petbrain/petway/pkg/compound"
	"github.com/petbrain/petway/pkg/hashengine"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

const initialIndexCapacity = 8

// Map is a Struct/Compound subtype: insertion-ordered key-value pairs
// plus a hash index for O(1)-amortized lookup.
type Map struct {
	hdr  *compound.Header
	keys []pwvalue.Value
	vals []pwvalue.Value

	index      []byte // packed at indexWidth bytes/slot; 0 means empty, else 1-based position
	indexWidth byte   // 1, 2, 4, or 8 — narrowest width that can index len(index)
}

// New returns an empty map with external refcount 1.
func New() *Map {
	m := &Map{hdr: compound.NewHeader()}
	m.resizeIndex(initialIndexCapacity)
	return m
}

// Header implements compound.Node.
func (m *Map) Header() *compound.Header { return m.hdr }

// Len returns the number of key-value pairs.
func (m *Map) Len() int { return len(m.keys) }

func widthForCapacity(cap int) byte {
	switch {
	case cap <= 0xFF:
		return 1
	case cap <= 0xFFFF:
		return 2
	case cap <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

func getSlot(data []byte, width byte, i int) uint64 {
	off := i * int(width)
	var v uint64
	for k := 0; k < int(width); k++ {
		v |= uint64(data[off+k]) << (8 * k)
	}
	return v
}

func putSlot(data []byte, width byte, i int, v uint64) {
	off := i * int(width)
	for k := 0; k < int(width); k++ {
		data[off+k] = byte(v >> (8 * k))
	}
}

func (m *Map) slotCount() int {
	if m.indexWidth == 0 {
		return 0
	}
	return len(m.index) / int(m.indexWidth)
}

func (m *Map) resizeIndex(newCap int) {
	width := widthForCapacity(newCap)
	newIndex := make([]byte, newCap*int(width))
	oldIndex, oldWidth := m.index, m.indexWidth
	oldCount := 0
	if oldWidth != 0 {
		oldCount = len(oldIndex) / int(oldWidth)
	}
	m.index = newIndex
	m.indexWidth = width
	for i := 0; i < oldCount; i++ {
		pos := getSlot(oldIndex, oldWidth, i)
		if pos == 0 {
			continue
		}
		key := m.keys[pos-1]
		m.insertIntoIndex(key, pos)
	}
}

func hashOf(v pwvalue.Value) uint64 {
	acc := hashengine.New()
	pwvalue.Hash(v, acc)
	return acc.Sum()
}

// insertIntoIndex places the 1-based position `pos` for key into the
// index via linear probing, growing first if the probe sequence runs
// too long (spec: "or when a probe sequence for an insertion has
// already walked more than a quarter of the capacity").
func (m *Map) insertIntoIndex(key pwvalue.Value, pos uint64) {
	cap := m.slotCount()
	mask := cap - 1
	idx := int(hashOf(key)) & mask
	probes := 0
	for {
		if getSlot(m.index, m.indexWidth, idx) == 0 {
			putSlot(m.index, m.indexWidth, idx, pos)
			return
		}
		idx = (idx + 1) & mask
		probes++
		if probes > cap/4 {
			m.resizeIndex(cap * 2)
			m.insertIntoIndex(key, pos)
			return
		}
	}
}

// findSlot returns the index-array slot number holding key's position,
// or -1 if key isn't present.
func (m *Map) findSlot(key pwvalue.Value) int {
	cap := m.slotCount()
	if cap == 0 {
		return -1
	}
	mask := cap - 1
	idx := int(hashOf(key)) & mask
	for probes := 0; probes < cap; probes++ {
		pos := getSlot(m.index, m.indexWidth, idx)
		if pos == 0 {
			return -1
		}
		if pwvalue.Equal(m.keys[pos-1], key) {
			return idx
		}
		idx = (idx + 1) & mask
	}
	return -1
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key pwvalue.Value) (pwvalue.Value, bool) {
	slot := m.findSlot(key)
	if slot < 0 {
		return pwvalue.Null, false
	}
	pos := getSlot(m.index, m.indexWidth, slot)
	return m.vals[pos-1], true
}

// Update deep-copies key and inserts or replaces its value
// (ref-cloned), per spec §4.4.
func (m *Map) Update(key, value pwvalue.Value) {
	key = deepCopyKey(key)
	if n, ok := value.Data().(compound.Node); ok {
		compound.Clone(n)
	} else if value.Type == typereg.String && value.AsString() != nil {
		value = pwvalue.NewString(value.AsString().Clone())
	}
	adoptIfCompound(m, value)
	if slot := m.findSlot(key); slot >= 0 {
		pos := getSlot(m.index, m.indexWidth, slot)
		old := m.vals[pos-1]
		abandonIfCompound(m, old)
		m.vals[pos-1] = value
		return
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	pos := uint64(len(m.keys))

	if len(m.keys)*4 > m.slotCount()*3 {
		m.resizeIndex(m.slotCount() * 2)
	}
	m.insertIntoIndex(key, pos)
}

// Del removes key's pair, preserving insertion order among the
// remainder by decrementing every index slot's position that pointed
// past the deleted entry (spec §4.4 del).
func (m *Map) Del(key pwvalue.Value) bool {
	slot := m.findSlot(key)
	if slot < 0 {
		return false
	}
	pos := getSlot(m.index, m.indexWidth, slot)

	abandonIfCompound(m, m.vals[pos-1])

	m.keys = append(m.keys[:pos-1], m.keys[pos:]...)
	m.vals = append(m.vals[:pos-1], m.vals[pos:]...)

	putSlot(m.index, m.indexWidth, slot, 0)
	cnt := m.slotCount()
	for i := 0; i < cnt; i++ {
		p := getSlot(m.index, m.indexWidth, i)
		if p > pos {
			putSlot(m.index, m.indexWidth, i, p-1)
		}
	}
	// Close the probe chain: re-insert every slot after the removed one
	// in its probe cluster, since linear probing relies on no gaps.
	m.rehashCluster(slot)
	return true
}

func (m *Map) rehashCluster(from int) {
	cap := m.slotCount()
	mask := cap - 1
	idx := (from + 1) & mask
	for {
		pos := getSlot(m.index, m.indexWidth, idx)
		if pos == 0 {
			return
		}
		putSlot(m.index, m.indexWidth, idx, 0)
		key := m.keys[pos-1]
		m.insertIntoIndex(key, pos)
		idx = (idx + 1) & mask
	}
}

// Item returns the key/value pair at insertion-order position i.
func (m *Map) Item(i int) (key, value pwvalue.Value) {
	return m.keys[i], m.vals[i]
}

func deepCopyKey(v pwvalue.Value) pwvalue.Value {
	// Primitives are plain Go values, so a struct copy already satisfies
	// "keys are immutable from the map's perspective". Strings need more
	// care: an allocated string at refcount 1 is mutable in place by its
	// owner (spec §4.5), so merely copying the Value struct would leave
	// the map aliasing the caller's buffer — a later in-place mutation by
	// the caller would silently rewrite the stored key out from under the
	// hash index. Cloning bumps the buffer's refcount, so any subsequent
	// mutation by either side goes through copy-on-write instead.
	if v.Type == typereg.String && v.AsString() != nil {
		return pwvalue.NewString(v.AsString().Clone())
	}
	return v
}

func adoptIfCompound(m *Map, v pwvalue.Value) {
	if n, ok := v.Data().(compound.Node); ok {
		compound.Adopt(m, n)
	}
}

func abandonIfCompound(m *Map, v pwvalue.Value) {
	if n, ok := v.Data().(compound.Node); ok {
		compound.Abandon(m, n)
	}
}

// Destroy tears the map down, abandoning every compound value it holds.
func (m *Map) Destroy() {
	for _, v := range m.vals {
		if n, ok := v.Data().(compound.Node); ok {
			compound.ReleaseAsChild(m, n, func() {})
		}
	}
	m.keys, m.vals, m.index = nil, nil, nil
}

// Release drops one external reference to m.
func Release(m *Map) {
	compound.Release(m, m.Destroy)
}

// Clone bumps m's external refcount.
func Clone(m *Map) *Map {
	compound.Clone(m)
	return m
}
