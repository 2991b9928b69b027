package pages

import (
	"fmt"
	"io"

	"github.com/docukit/folio/core"
	"github.com/docukit/folio/registry"
)

// Resources is a handle to a page's resource dictionary: the named
// fonts, color spaces, external objects and graphics states the page
// content refers to. The handle is bound to the dictionary it
// resolved to, which may live on an ancestor when the page inherits
// its resources.
type Resources struct {
	dict core.Dict
}

// resourcesFor resolves the effective resource dictionary for a node:
// the local Resources value when present, otherwise the first one
// found on the ancestor chain. It returns nil when no node on the
// chain exposes resources.
func resourcesFor(res *registry.Resolver, dict core.Dict, parents []core.Dict) *Resources {
	obj, err := res.Resolve(findInherited(dict, parents, "Resources"))
	if err != nil {
		return nil
	}
	resDict, ok := obj.(core.Dict)
	if !ok {
		return nil
	}
	return &Resources{dict: resDict}
}

// Dict returns the backing resource dictionary.
func (r *Resources) Dict() core.Dict { return r.dict }

// Category returns a resource category dictionary such as "Font" or
// "ColorSpace", or nil when the category is absent.
func (r *Resources) Category(name string) core.Dict {
	dict, _ := r.dict.GetDict(name)
	return dict
}

// SetCategory stores a resource category dictionary.
func (r *Resources) SetCategory(name string, dict core.Dict) {
	r.dict.Set(name, dict)
}

// ensureCategory returns the named category, creating it when absent.
func (r *Resources) ensureCategory(name string) core.Dict {
	if dict := r.Category(name); dict != nil {
		return dict
	}
	dict := core.Dict{}
	r.dict.Set(name, dict)
	return dict
}

// Resources returns the page's effective resource handle, which may
// be bound to an ancestor's storage. Nil means no node on the chain
// has resources; see EnsureResourcesCreated.
func (p *Page) Resources() *Resources { return p.resources }

// EnsureResourcesCreated returns the page's resource handle, lazily
// attaching an empty resource dictionary to the page itself when no
// resources resolved. The dictionary is always created locally, never
// on an ancestor. Idempotent: later calls return the same handle.
func (p *Page) EnsureResourcesCreated() *Resources {
	if p.resources == nil {
		dict := core.Dict{}
		p.dict.Set("Resources", dict)
		p.resources = &Resources{dict: dict}
	}
	return p.resources
}

// SetICCProfile embeds an ICC color profile and registers it under
// csTag in the page resources' ColorSpace category. colorComponents
// must be 1, 3 or 4; anything else fails with ErrValueOutOfRange
// before any mutation.
func (p *Page) SetICCProfile(csTag string, profile io.Reader, colorComponents int, alternate core.Name) error {
	switch colorComponents {
	case 1, 3, 4:
	default:
		return fmt.Errorf("%w: ICC profile has %d color components, want 1, 3 or 4", ErrValueOutOfRange, colorComponents)
	}

	data, err := io.ReadAll(profile)
	if err != nil {
		return fmt.Errorf("reading ICC profile: %w", err)
	}

	stream := core.NewStream(core.Dict{
		"Alternate": alternate,
		"N":         core.Int(colorComponents),
	}, data)
	ref := p.reg.Add(stream)

	colorSpaces := p.EnsureResourcesCreated().ensureCategory("ColorSpace")
	colorSpaces.Set(csTag, core.Array{core.Name("ICCBased"), ref})
	return nil
}
