package registry

import (
	"errors"
	"fmt"

	"github.com/docukit/folio/core"
)

// ErrObjectNotFound is returned when an indirect reference has no
// target object in the registry.
var ErrObjectNotFound = errors.New("registry: object not found")

// Registry is an arena-style store of indirect objects addressed by
// their reference.
type Registry struct {
	objects map[core.IndirectRef]core.Object
	next    int
}

// New creates an empty registry. Object numbers start at 1.
func New() *Registry {
	return &Registry{
		objects: make(map[core.IndirectRef]core.Object),
		next:    1,
	}
}

// Add stores obj under the next free object number and returns its
// reference.
func (r *Registry) Add(obj core.Object) core.IndirectRef {
	ref := core.IndirectRef{Number: r.next}
	r.next++
	r.objects[ref] = obj
	return ref
}

// Put installs obj under a caller-chosen reference, replacing any
// existing target. Subsequent Add calls allocate numbers above it.
func (r *Registry) Put(ref core.IndirectRef, obj core.Object) {
	r.objects[ref] = obj
	if ref.Number >= r.next {
		r.next = ref.Number + 1
	}
}

// Get returns the object ref points at. It fails with
// ErrObjectNotFound when the reference has no target.
func (r *Registry) Get(ref core.IndirectRef) (core.Object, error) {
	obj, ok := r.objects[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, ref)
	}
	return obj, nil
}

// Has reports whether ref has a target object.
func (r *Registry) Has(ref core.IndirectRef) bool {
	_, ok := r.objects[ref]
	return ok
}

// Len returns the number of stored objects.
func (r *Registry) Len() int { return len(r.objects) }
