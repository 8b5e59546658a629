package compound

// edge is one (parent, per-edge-refcount) entry in a child's parent set.
// A zero refcount marks an unoccupied slot.
type edge struct {
	parent   Node
	refcount uint32
}

// parentSet is the inline-2 / chunked-8 hybrid from spec §3/§4.3: the
// common case (zero, one, or two parents) needs no allocation; a third
// distinct parent promotes storage to 8-slot chunks. Go doesn't need the
// "low bit of the pointer" trick the C source uses to tell the two forms
// apart (spec §9); a nil chunk slice already means "inline form".
type parentSet struct {
	inline [2]edge
	chunks [][8]edge
}

func (s *parentSet) empty() bool {
	for _, e := range s.inline {
		if e.refcount > 0 {
			return false
		}
	}
	for _, chunk := range s.chunks {
		for _, e := range chunk {
			if e.refcount > 0 {
				return false
			}
		}
	}
	return true
}

// all returns every occupied edge, inline entries first.
func (s *parentSet) all() []edge {
	out := make([]edge, 0, 2)
	for _, e := range s.inline {
		if e.refcount > 0 {
			out = append(out, e)
		}
	}
	for _, chunk := range s.chunks {
		for _, e := range chunk {
			if e.refcount > 0 {
				out = append(out, e)
			}
		}
	}
	return out
}

// bumpOrInsert locates parent in the set (bumping its edge refcount) or
// inserts a fresh edge with refcount 1, extending to chunked form if both
// inline slots are occupied by other parents.
func (s *parentSet) bumpOrInsert(parent Node) {
	for i := range s.inline {
		if s.inline[i].refcount > 0 && s.inline[i].parent == parent {
			s.inline[i].refcount++
			return
		}
	}
	for ci := range s.chunks {
		for i := range s.chunks[ci] {
			if s.chunks[ci][i].refcount > 0 && s.chunks[ci][i].parent == parent {
				s.chunks[ci][i].refcount++
				return
			}
		}
	}
	for i := range s.inline {
		if s.inline[i].refcount == 0 {
			s.inline[i] = edge{parent: parent, refcount: 1}
			return
		}
	}
	for ci := range s.chunks {
		for i := range s.chunks[ci] {
			if s.chunks[ci][i].refcount == 0 {
				s.chunks[ci][i] = edge{parent: parent, refcount: 1}
				return
			}
		}
	}
	var chunk [8]edge
	chunk[0] = edge{parent: parent, refcount: 1}
	s.chunks = append(s.chunks, chunk)
}

// decrementAndMaybeRemove decrements parent's edge refcount, removing the
// edge entirely when it hits zero (and contracting back to inline form if
// at most two edges remain overall). Returns true iff the edge was
// removed (the parent no longer references the child at all). Returns
// false both when the edge refcount is still positive and when parent
// was not found at all (a no-op either way from the caller's point of
// view: the parent still/never held a reference).
func (s *parentSet) decrementAndMaybeRemove(parent Node) bool {
	for i := range s.inline {
		if s.inline[i].refcount > 0 && s.inline[i].parent == parent {
			s.inline[i].refcount--
			removed := s.inline[i].refcount == 0
			if removed {
				s.inline[i] = edge{}
			}
			s.maybeContract()
			return removed
		}
	}
	for ci := range s.chunks {
		for i := range s.chunks[ci] {
			if s.chunks[ci][i].refcount > 0 && s.chunks[ci][i].parent == parent {
				s.chunks[ci][i].refcount--
				removed := s.chunks[ci][i].refcount == 0
				if removed {
					s.chunks[ci][i] = edge{}
				}
				s.maybeContract()
				return removed
			}
		}
	}
	return false
}

func (s *parentSet) maybeContract() {
	if len(s.chunks) == 0 {
		return
	}
	all := s.all()
	if len(all) > 2 {
		return
	}
	s.inline = [2]edge{}
	for i, e := range all {
		s.inline[i] = e
	}
	s.chunks = nil
}
