package pages

import "github.com/docukit/folio/core"

// findInherited returns the value for key on dict, or the nearest
// value found on the given ancestor chain. parents is a pre-built
// snapshot ordered nearest ancestor first, so the walk is bounded by
// its length; no cycle protection is needed here.
func findInherited(dict core.Dict, parents []core.Dict, key string) core.Object {
	if obj := dict.Get(key); obj != nil {
		return obj
	}
	for _, parent := range parents {
		if obj := parent.Get(key); obj != nil {
			return obj
		}
	}
	return nil
}

// FindInherited returns the effective value of an attribute: the
// local value when present, otherwise the nearest ancestor's value.
// Nil means the attribute is absent everywhere on the chain.
func (p *Page) FindInherited(key string) core.Object {
	return findInherited(p.dict, p.parents, key)
}
