package pages

import (
	"github.com/docukit/folio/core"
	"github.com/docukit/folio/model"
	"github.com/docukit/folio/registry"
)

// Page represents a single page node in the document graph.
//
// A Page carries its dictionary, its identity reference and a
// snapshot of its ancestor Pages dictionaries (nearest first), which
// inheritable attribute lookups scan. Derived values such as boxes
// and the document ordinal are computed on every call, never cached,
// since ancestor attributes may change between calls.
type Page struct {
	ref     core.IndirectRef
	dict    core.Dict
	parents []core.Dict
	index   int

	reg *registry.Registry
	res *registry.Resolver

	resources *Resources
	contents  *Contents
}

// NewPage creates a fresh page node of the given size and adds it to
// the registry. The rectangle becomes the page's MediaBox.
func NewPage(reg *registry.Registry, size model.Rect) *Page {
	dict := core.Dict{
		"Type":     core.Name("Page"),
		"MediaBox": size.ToArray(),
	}
	ref := reg.Add(dict)
	return newPage(ref, dict, nil, 0, reg)
}

// PageFromDict wraps an existing page dictionary. parents is the
// page's ancestor chain, ordered nearest ancestor first; it may be
// nil for a root-level page. ref must be the dictionary's identity
// in the registry.
func PageFromDict(ref core.IndirectRef, dict core.Dict, parents []core.Dict, reg *registry.Registry) *Page {
	return newPage(ref, dict, parents, 0, reg)
}

func newPage(ref core.IndirectRef, dict core.Dict, parents []core.Dict, index int, reg *registry.Registry) *Page {
	res := registry.NewResolver(reg)
	p := &Page{
		ref:     ref,
		dict:    dict,
		parents: parents,
		index:   index,
		reg:     reg,
		res:     res,
	}
	p.resources = resourcesFor(res, dict, parents)
	p.contents = contentsFor(res, dict)
	return p
}

// Ref returns the page's identity reference.
func (p *Page) Ref() core.IndirectRef { return p.ref }

// Dict returns the page's own dictionary.
func (p *Page) Dict() core.Dict { return p.dict }

// Index returns the page's 0-based creation-order index. It is
// distinct from the 1-based document ordinal computed by PageNumber.
func (p *Page) Index() int { return p.index }
