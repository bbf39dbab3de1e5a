package core

import (
	"fmt"
	"sync/atomic"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// The process-wide registry of types, shared by all contexts.
var typeRegistry = cmap.New[*Type]()

// The root of the type hierarchy, implicit base of every type created with a
// nil base list.
var OBJECT_TYPE = newRootObjectType()

type TypeFlag uint32

const (
	// NotASequence excludes instances of the type from sequence method table
	// resolution, even if an ancestor provides one. Mapping-like types whose
	// iteration (over keys) must not surface through the sequence protocol
	// carry this flag.
	NotASequence TypeFlag = 1 << iota
)

// Providers map an instance to the method table of its type for one protocol.
// A provider is resolved at most once per type and then published in the
// type's slot cell.
type (
	SequenceProvider func(obj Value) *SequenceMethods
	MappingProvider  func(obj Value) *MappingMethods
	IteratorProvider func(ctx *Context, obj Value) (Iterator, error)
	NumberProvider   func(obj Value) *NumberMethods
)

// A SlotCell is a lazily populated, compare-and-publish once-cell. Concurrent
// first accesses may race to compute the entry but exactly one computation is
// published; later reads are idempotent and lock-free.
type SlotCell[T any] struct {
	ptr atomic.Pointer[slotEntry[T]]
}

type slotEntry[T any] struct {
	value T
	ok    bool
}

func (c *SlotCell[T]) GetOrInit(compute func() (T, bool)) (T, bool) {
	if entry := c.ptr.Load(); entry != nil {
		return entry.value, entry.ok
	}

	value, ok := compute()
	entry := &slotEntry[T]{value: value, ok: ok}

	if !c.ptr.CompareAndSwap(nil, entry) {
		//another goroutine published first, single-writer-wins
		published := c.ptr.Load()
		return published.value, published.ok
	}
	return value, ok
}

func (c *SlotCell[T]) Get() (T, bool) {
	if entry := c.ptr.Load(); entry != nil {
		return entry.value, entry.ok
	}
	var zero T
	return zero, false
}

type TypeSpec struct {
	Name string

	//optional, defaults to []*Type{OBJECT_TYPE}
	Bases []*Type

	Flags TypeFlag

	//optional protocol providers
	Sequence SequenceProvider
	Mapping  MappingProvider
	Iterator IteratorProvider
	Number   NumberProvider
}

// A Type describes a runtime type: its name, its ancestry and the protocol
// providers its instances support. Types are immutable after creation apart
// from the slot cells, which are lazily published.
type Type struct {
	name  string
	bases []*Type
	mro   []*Type //most-derived first, always starts with the type itself
	flags TypeFlag

	spec TypeSpec

	sequenceCell SlotCell[SequenceProvider]
	mappingCell  SlotCell[MappingProvider]
	iteratorCell SlotCell[IteratorProvider]
	numberCell   SlotCell[NumberProvider]
}

func newRootObjectType() *Type {
	t := &Type{
		name: "object",
		spec: TypeSpec{Name: "object"},
	}
	t.mro = []*Type{t}
	registerType(t)
	return t
}

// NewType creates and registers a type. It panics if the name is already
// registered or if the base list has no valid linearization.
func NewType(spec TypeSpec) *Type {
	bases := spec.Bases
	if bases == nil {
		bases = []*Type{OBJECT_TYPE}
	}

	t := &Type{
		name:  spec.Name,
		bases: bases,
		flags: spec.Flags,
		spec:  spec,
	}
	t.mro = linearize(t)
	registerType(t)
	return t
}

func registerType(t *Type) {
	if !typeRegistry.SetIfAbsent(t.name, t) {
		panic(fmt.Errorf("%w: %q", ErrTypeAlreadyRegistered, t.name))
	}
}

// GetType retrieves a registered type by name.
func GetType(name string) (*Type, bool) {
	return typeRegistry.Get(name)
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Bases() []*Type {
	return t.bases
}

// Mro returns the type's linearized ancestry, most-derived first.
// The caller should not modify the result.
func (t *Type) Mro() []*Type {
	return t.mro
}

func (t *Type) Flags() TypeFlag {
	return t.flags
}

// Is reports type identity.
func (t *Type) Is(other *Type) bool {
	return t == other
}

func (t *Type) IsSubtypeOf(other *Type) bool {
	for _, ancestor := range t.mro {
		if ancestor == other {
			return true
		}
	}
	return false
}

// linearize computes the C3 linearization of a type's ancestry: the type
// itself followed by the merge of its bases' linearizations and the base list.
func linearize(t *Type) []*Type {
	sequences := make([][]*Type, 0, len(t.bases)+2)
	sequences = append(sequences, []*Type{t})
	for _, base := range t.bases {
		sequences = append(sequences, base.mro)
	}
	sequences = append(sequences, t.bases)
	return mergeLinearizations(t, sequences)
}

func mergeLinearizations(t *Type, sequences [][]*Type) []*Type {
	var result []*Type

	remaining := make([][]*Type, len(sequences))
	for i, seq := range sequences {
		remaining[i] = append([]*Type(nil), seq...)
	}

	for {
		nonEmptyCount := 0
		for _, seq := range remaining {
			nonEmptyCount += len(seq)
		}
		if nonEmptyCount == 0 {
			return result
		}

		candidate := (*Type)(nil)
	search:
		for _, seq := range remaining {
			if len(seq) == 0 {
				continue
			}
			head := seq[0]
			//a head is a good candidate if it appears in no other sequence's tail
			for _, other := range remaining {
				if len(other) == 0 {
					continue
				}
				for _, inTail := range other[1:] {
					if inTail == head {
						continue search
					}
				}
			}
			candidate = head
			break
		}

		if candidate == nil {
			panic(fmt.Errorf("%w: %q", ErrInconsistentTypeHierarchy, t.name))
		}

		result = append(result, candidate)
		for i, seq := range remaining {
			if len(seq) > 0 && seq[0] == candidate {
				remaining[i] = seq[1:]
			}
		}
	}
}

// ResolveSequenceProvider walks the type's ancestry (most-derived first) and
// returns the first sequence provider found. Types flagged NotASequence never
// resolve a provider for their instances.
func (t *Type) ResolveSequenceProvider() (SequenceProvider, bool) {
	if t.flags&NotASequence != 0 {
		return nil, false
	}
	for _, ancestor := range t.mro {
		provider, ok := ancestor.sequenceCell.GetOrInit(func() (SequenceProvider, bool) {
			return ancestor.spec.Sequence, ancestor.spec.Sequence != nil
		})
		if ok {
			return provider, true
		}
	}
	return nil, false
}

func (t *Type) ResolveMappingProvider() (MappingProvider, bool) {
	for _, ancestor := range t.mro {
		provider, ok := ancestor.mappingCell.GetOrInit(func() (MappingProvider, bool) {
			return ancestor.spec.Mapping, ancestor.spec.Mapping != nil
		})
		if ok {
			return provider, true
		}
	}
	return nil, false
}

func (t *Type) ResolveIteratorProvider() (IteratorProvider, bool) {
	for _, ancestor := range t.mro {
		provider, ok := ancestor.iteratorCell.GetOrInit(func() (IteratorProvider, bool) {
			return ancestor.spec.Iterator, ancestor.spec.Iterator != nil
		})
		if ok {
			return provider, true
		}
	}
	return nil, false
}

func (t *Type) ResolveNumberProvider() (NumberProvider, bool) {
	for _, ancestor := range t.mro {
		provider, ok := ancestor.numberCell.GetOrInit(func() (NumberProvider, bool) {
			return ancestor.spec.Number, ancestor.spec.Number != nil
		})
		if ok {
			return provider, true
		}
	}
	return nil, false
}
