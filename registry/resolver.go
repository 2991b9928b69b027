package registry

import (
	"fmt"

	"github.com/docukit/folio/core"
)

// Resolver follows indirect references down to concrete objects.
// It bounds its own traversal, so a malformed reference cycle fails
// deterministically instead of looping.
type Resolver struct {
	reg      *Registry
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets the maximum reference chain length (default 100).
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		r.maxDepth = depth
	}
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	r := &Resolver{
		reg:      reg,
		maxDepth: 100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the backing registry.
func (r *Resolver) Registry() *Registry { return r.reg }

// Resolve follows obj through any chain of indirect references and
// returns the first non-reference object. Non-reference inputs are
// returned unchanged; a nil input resolves to nil.
func (r *Resolver) Resolve(obj core.Object) (core.Object, error) {
	visited := make(map[core.IndirectRef]bool)

	for depth := 0; ; depth++ {
		ref, ok := obj.(core.IndirectRef)
		if !ok {
			return obj, nil
		}
		if depth >= r.maxDepth {
			return nil, fmt.Errorf("registry: reference chain exceeds depth %d at %s", r.maxDepth, ref)
		}
		if visited[ref] {
			return nil, fmt.Errorf("registry: circular reference at %s", ref)
		}
		visited[ref] = true

		target, err := r.reg.Get(ref)
		if err != nil {
			return nil, err
		}
		obj = target
	}
}

// ResolveDict resolves obj and asserts the result is a dictionary.
func (r *Resolver) ResolveDict(obj core.Object) (core.Dict, error) {
	resolved, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	dict, ok := resolved.(core.Dict)
	if !ok {
		return nil, fmt.Errorf("registry: resolved to %s, want Dict", kindOf(resolved))
	}
	return dict, nil
}

// ResolveArray resolves obj and asserts the result is an array.
func (r *Resolver) ResolveArray(obj core.Object) (core.Array, error) {
	resolved, err := r.Resolve(obj)
	if err != nil {
		return nil, err
	}
	arr, ok := resolved.(core.Array)
	if !ok {
		return nil, fmt.Errorf("registry: resolved to %s, want Array", kindOf(resolved))
	}
	return arr, nil
}

func kindOf(obj core.Object) string {
	if obj == nil {
		return "nothing"
	}
	return obj.Kind().String()
}
