// Package pwarray implements the Array container (spec §4.4): a
// growable sequence of pwvalue.Value, wired into pkg/compound
// for adopt/abandon bookkeeping so arrays can safely participate in
// (and be reclaimed from) reference cycles.
package pwarray

import (
	"github.com/petbrain/petway/pkg/compound"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

const initialCapacity = 4
const growAlignment = 16

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// Array is a Struct/Compound subtype: a refcounted, cycle-aware slice of
// values whose capacity starts at 4 and grows to multiples of 16.
type Array struct {
	hdr       *compound.Header
	items     []pwvalue.Value
	iterCount int
}

// New returns an empty array with external refcount 1.
func New() *Array {
	return &Array{hdr: compound.NewHeader(), items: make([]pwvalue.Value, 0, initialCapacity)}
}

// Header implements compound.Node.
func (a *Array) Header() *compound.Header { return a.hdr }

// Len returns the element count.
func (a *Array) Len() int { return len(a.items) }

// Get returns the value at index i. Callers in this module trust
// internal callers to stay in bounds; pwmap and jsonvalue only ever
// index within Len().
func (a *Array) Get(i int) pwvalue.Value { return a.items[i] }

// Item is array_item from spec §6/§8: like Get, but a negative index
// counts back from the end (-1 is the last item).
func (a *Array) Item(i int) pwvalue.Value {
	if i < 0 {
		i += len(a.items)
	}
	return a.items[i]
}

func (a *Array) growIfNeeded(extra int) {
	need := len(a.items) + extra
	if need <= cap(a.items) {
		return
	}
	newCap := initialCapacity
	if need > initialCapacity {
		newCap = alignUp(need, growAlignment)
	}
	grown := make([]pwvalue.Value, len(a.items), newCap)
	copy(grown, a.items)
	a.items = grown
}

func (a *Array) guardMutation() {
	if a.iterCount > 0 {
		panic("pwarray: mutation while an iterator is active")
	}
}

// Append moves v into the array: a Status value is rejected (fatal, per
// spec §4.4's "Array items are never of Status type"), and a compound
// value is adopted so the array is recorded as its parent.
func (a *Array) Append(v pwvalue.Value) {
	a.guardMutation()
	if v.Type == typereg.Status {
		panic("pwarray: cannot insert a Status value into an array")
	}
	a.growIfNeeded(1)
	a.items = append(a.items, v)
	adoptIfCompound(a, v)
}

// Insert splices v into position i, shifting subsequent elements right.
func (a *Array) Insert(i int, v pwvalue.Value) {
	a.guardMutation()
	if v.Type == typereg.Status {
		panic("pwarray: cannot insert a Status value into an array")
	}
	a.growIfNeeded(1)
	a.items = append(a.items, pwvalue.Null)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
	adoptIfCompound(a, v)
}

// Set overwrites index i, abandoning/destroying the previous occupant
// if it was compound and adopting the new one.
func (a *Array) Set(i int, v pwvalue.Value) {
	a.guardMutation()
	if v.Type == typereg.Status {
		panic("pwarray: cannot insert a Status value into an array")
	}
	old := a.items[i]
	a.items[i] = v
	abandonIfCompound(a, old)
	adoptIfCompound(a, v)
}

// Delete removes the element at index i, abandoning and releasing it if
// compound.
func (a *Array) Delete(i int) {
	a.guardMutation()
	old := a.items[i]
	copy(a.items[i:], a.items[i+1:])
	a.items = a.items[:len(a.items)-1]
	abandonIfCompound(a, old)
}

// BeginIteration/EndIteration implement the itercount mutation guard
// (spec §4.4: "mutations are refused while itercount > 0; readers may
// coexist").
func (a *Array) BeginIteration() { a.iterCount++ }
func (a *Array) EndIteration()   { a.iterCount-- }

func adoptIfCompound(a *Array, v pwvalue.Value) {
	if n, ok := v.Data().(compound.Node); ok {
		compound.Adopt(a, n)
	}
}

func abandonIfCompound(a *Array, v pwvalue.Value) {
	if n, ok := v.Data().(compound.Node); ok {
		compound.ReleaseAsChild(a, n, func() {})
	}
}

// Destroy tears the array down: every remaining compound item abandons
// this array as a parent and, if that was its last parent, recurses
// through the cycle-safe finalize procedure in pkg/compound.
func (a *Array) Destroy() {
	for _, v := range a.items {
		if n, ok := v.Data().(compound.Node); ok {
			compound.ReleaseAsChild(a, n, func() {})
		}
	}
	a.items = nil
}

// Release drops one external reference to a, finalizing via Destroy
// when (and if) the cycle-safe refcount procedure decides to.
func Release(a *Array) {
	compound.Release(a, a.Destroy)
}

// Clone bumps a's external refcount and returns a itself (arrays, like
// every compound subtype, are reference types — "clone" shares the
// backing block rather than copying it).
func Clone(a *Array) *Array {
	compound.Clone(a)
	return a
}

// Join concatenates the string items of a with sep between them,
// silently skipping non-string entries (spec §4.4 Join, resolved open
// question in DESIGN.md).
func Join(a *Array, sep *pwstring.String) *pwstring.String {
	var parts []*pwstring.String
	for _, v := range a.items {
		if v.Type == typereg.String {
			parts = append(parts, v.AsString())
		}
	}
	return pwstring.Join(sep, parts)
}

// Dedent finds the minimum common leading run of spaces/tabs across
// non-empty string entries and erases that prefix from every entry in
// place.
func Dedent(a *Array) {
	common := -1
	for _, v := range a.items {
		if v.Type != typereg.String {
			continue
		}
		s := v.AsString()
		if s.Len() == 0 {
			continue
		}
		n := leadingBlankRun(s)
		if n == s.Len() {
			continue
		}
		if common == -1 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return
	}
	for _, v := range a.items {
		if v.Type != typereg.String {
			continue
		}
		s := v.AsString()
		if s.Len() >= common {
			pwstring.Erase(s, 0, common)
		}
	}
}

func leadingBlankRun(s *pwstring.String) int {
	n := 0
	for n < s.Len() {
		c := s.CharAt(n)
		if c != ' ' && c != '\t' {
			break
		}
		n++
	}
	return n
}
