// Package typereg implements the runtime type and interface registry:
// a global, append-only table of type descriptors that supports single
// inheritance, subtype creation, and composition of interface method
// tables from an ancestor's.
//
// The design generalizes the registration-by-name pattern used elsewhere
// in this codebase's ancestry (a global map populated by constructors
// registered at init time) to numeric type and interface ids assigned in
// call order.
package typereg

import (
	"fmt"
	"sync"
)

// TypeID identifies a registered type. Type 0 is always Null and acts as
// the sentinel "no ancestor".
type TypeID uint16

// InterfaceID identifies a registered interface. Ids are assigned in the
// order RegisterInterface is called and are permanent for the process.
type InterfaceID uint16

// Built-in interface ids, assigned by the package init below.
var (
	Reader        InterfaceID
	Writer        InterfaceID
	LineReader    InterfaceID
	File          InterfaceID
	BufferedFile  InterfaceID
	Socket        InterfaceID
	Append        InterfaceID
	RandomAccess  InterfaceID
)

// Built-in type ids, assigned by the package init below.
const (
	Null TypeID = iota
	Bool
	Int // abstract ancestor of Signed/Unsigned
	Signed
	Unsigned
	Float
	DateTime
	Timestamp
	Ptr
	CharPtr
	String
	Struct
	Compound
	Status
	Iterator
	Array
	Map
)

// InterfaceBinding pairs an interface id with its method vector. The
// concrete shape of "method vector" is left to callers (an any holding
// whatever function-pointer struct the interface defines); the registry
// only stores and looks it up.
type InterfaceBinding struct {
	ID      InterfaceID
	Methods any
}

// Descriptor is an immutable record bound to a type id.
type Descriptor struct {
	ID         TypeID
	Name       string
	Ancestor   TypeID
	HasAncestor bool

	// DataOffset/DataSize describe how this type's fields extend the
	// ancestor's shared block, mirroring the C source's layout
	// computation; Go code doesn't need the offset for field access
	// (structs do that), but subtype composition still needs it to
	// reason about "does this override which bytes".
	DataOffset uintptr
	DataSize   uintptr

	interfaces []InterfaceBinding
}

// Interfaces returns a copy of the type's composed interface bindings.
func (d *Descriptor) Interfaces() []InterfaceBinding {
	out := make([]InterfaceBinding, len(d.interfaces))
	copy(out, d.interfaces)
	return out
}

type interfaceDescriptor struct {
	name        string
	methodCount int
}

var (
	mu         sync.Mutex
	types      []*Descriptor
	interfaces []interfaceDescriptor
)

func init() {
	// Built-in type 0 is Null, registered with no ancestor.
	types = append(types, &Descriptor{ID: Null, Name: "Null"})

	register := func(id TypeID, name string, ancestor TypeID) {
		if int(id) != len(types) {
			panic(fmt.Sprintf("typereg: built-in type %s registered out of order", name))
		}
		types = append(types, &Descriptor{ID: id, Name: name, Ancestor: ancestor, HasAncestor: true})
	}
	register(Bool, "Bool", Null)
	register(Int, "Int", Null)
	register(Signed, "Signed", Int)
	register(Unsigned, "Unsigned", Int)
	register(Float, "Float", Null)
	register(DateTime, "DateTime", Null)
	register(Timestamp, "Timestamp", Null)
	register(Ptr, "Ptr", Null)
	register(CharPtr, "CharPtr", Null)
	register(String, "String", Null)
	register(Struct, "Struct", Null)
	register(Compound, "Compound", Struct)
	register(Status, "Status", Struct)
	register(Iterator, "Iterator", Struct)
	register(Array, "Array", Compound)
	register(Map, "Map", Compound)

	Reader = RegisterInterface("Reader", 1)
	Writer = RegisterInterface("Writer", 1)
	LineReader = RegisterInterface("LineReader", 6)
	File = RegisterInterface("File", 4)
	BufferedFile = RegisterInterface("BufferedFile", 2)
	Socket = RegisterInterface("Socket", 3)
	Append = RegisterInterface("Append", 1)
	RandomAccess = RegisterInterface("RandomAccess", 2)
}

// RegisterInterface appends a new interface descriptor and returns its
// permanent id.
func RegisterInterface(name string, methodCount int) InterfaceID {
	mu.Lock()
	defer mu.Unlock()
	id := InterfaceID(len(interfaces))
	interfaces = append(interfaces, interfaceDescriptor{name: name, methodCount: methodCount})
	return id
}

// AddType registers a brand-new root type (ancestor Null) with the given
// interface bindings and returns its fresh id.
func AddType(name string, bindings ...InterfaceBinding) TypeID {
	return subtype(name, Null, false, 0, bindings)
}

// Subtype creates a new type descended from ancestor. dataSize is the
// number of additional bytes (informational in this Go port — struct
// layout is handled by Go itself) this subtype's own fields add atop the
// ancestor's shared block.
//
// For each passed interface binding: if the ancestor already implements
// that interface, the binding is recorded as an *overlay* — callers are
// expected to have already filled in inherited method slots themselves
// (Go has no null-function-pointer inheritance trick); if the ancestor
// does not implement it, the binding is appended as a new interface
// entry.
func Subtype(name string, ancestor TypeID, dataSize uintptr, bindings ...InterfaceBinding) TypeID {
	return subtype(name, ancestor, true, dataSize, bindings)
}

func subtype(name string, ancestor TypeID, hasAncestor bool, dataSize uintptr, bindings []InterfaceBinding) TypeID {
	mu.Lock()
	defer mu.Unlock()

	var offset uintptr
	if hasAncestor {
		if int(ancestor) >= len(types) {
			panic("typereg: unknown ancestor type id")
		}
		anc := types[ancestor]
		offset = alignUp(anc.DataOffset+anc.DataSize, 8)
	}

	id := TypeID(len(types))
	desc := &Descriptor{
		ID:          id,
		Name:        name,
		Ancestor:    ancestor,
		HasAncestor: hasAncestor,
		DataOffset:  offset,
		DataSize:    dataSize,
	}

	// Copy the ancestor's interface array, then overlay/append.
	if hasAncestor {
		desc.interfaces = append(desc.interfaces, types[ancestor].interfaces...)
	}
	for _, b := range bindings {
		overlaid := false
		for i, existing := range desc.interfaces {
			if existing.ID == b.ID {
				desc.interfaces[i] = b
				overlaid = true
				break
			}
		}
		if !overlaid {
			desc.interfaces = append(desc.interfaces, b)
		}
	}

	types = append(types, desc)
	return id
}

// LookupInterface performs a linear search (the arrays are small) over
// typeID's composed interface bindings.
func LookupInterface(typeID TypeID, iface InterfaceID) (any, bool) {
	mu.Lock()
	defer mu.Unlock()
	if int(typeID) >= len(types) {
		return nil, false
	}
	for _, b := range types[typeID].interfaces {
		if b.ID == iface {
			return b.Methods, true
		}
	}
	return nil, false
}

// Describe returns the descriptor for a type id, or nil if unregistered.
func Describe(id TypeID) *Descriptor {
	mu.Lock()
	defer mu.Unlock()
	if int(id) >= len(types) {
		return nil
	}
	return types[id]
}

// Name returns the human name of a type id, or "?" if unregistered.
func Name(id TypeID) string {
	d := Describe(id)
	if d == nil {
		return "?"
	}
	return d.Name
}

// IsSubtype walks the ancestor chain from id up to Null, returning true
// if ancestor appears in it (or id == ancestor).
func IsSubtype(id TypeID, ancestor TypeID) bool {
	for {
		if id == ancestor {
			return true
		}
		d := Describe(id)
		if d == nil || !d.HasAncestor {
			return false
		}
		id = d.Ancestor
	}
}

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
