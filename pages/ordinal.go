package pages

import (
	"fmt"

	"github.com/docukit/folio/core"
	"github.com/docukit/folio/logging"
)

// PageNumber computes the page's 1-based document ordinal.
//
// The ordinal is derived on every call by walking the live Parent
// chain: at each ancestor, the Kids preceding the current node
// contribute their cached subtree Count when they are Pages
// containers (absent Count counts as 0) and 1 when they are leaf
// pages. The walk carries a hard depth ceiling so a Parent chain
// that cycles back on itself fails with ErrBrokenStructure instead
// of looping; a Kid reference with no target object is a fatal
// registry.ErrObjectNotFound, never a silent skip.
func (p *Page) PageNumber() (int, error) {
	pageNumber := 0
	ref := p.ref
	parentObj := p.dict.Get("Parent")

	for depth := 0; parentObj != nil; depth++ {
		if depth >= maxTreeDepth {
			return 0, fmt.Errorf("%w: loop in Parent chain", ErrBrokenStructure)
		}

		parentRef, ok := parentObj.(core.IndirectRef)
		if !ok {
			return 0, fmt.Errorf("%w: Parent is %s, want a reference", ErrBrokenStructure, parentObj.Kind())
		}
		obj, err := p.reg.Get(parentRef)
		if err != nil {
			return 0, fmt.Errorf("resolving Parent %s: %w", parentRef, err)
		}
		parent, ok := obj.(core.Dict)
		if !ok {
			return 0, fmt.Errorf("%w: Parent %s is %s, want a dictionary", ErrBrokenStructure, parentRef, obj.Kind())
		}

		if kidsObj := parent.Get("Kids"); kidsObj != nil {
			kids, err := p.res.ResolveArray(kidsObj)
			if err != nil {
				return 0, fmt.Errorf("resolving Kids of %s: %w", parentRef, err)
			}
			n, err := p.countPrecedingKids(kids, ref)
			if err != nil {
				return 0, err
			}
			pageNumber += n
		}

		ref = parentRef
		parentObj = parent.Get("Parent")
	}

	pageNumber++
	logging.Logger().Debug("computed document ordinal", "page", p.ref.String(), "ordinal", pageNumber)
	return pageNumber, nil
}

// countPrecedingKids sums the page counts of the kids preceding ref
// in a Kids array: the cached Count for Pages containers, 1 for leaf
// pages.
func (p *Page) countPrecedingKids(kids core.Array, ref core.IndirectRef) (int, error) {
	total := 0
	for _, kid := range kids {
		kidRef, ok := kid.(core.IndirectRef)
		if !ok {
			return 0, fmt.Errorf("%w: Kids entry is %s, want a reference", ErrBrokenStructure, kid.Kind())
		}
		if kidRef == ref {
			break
		}

		obj, err := p.reg.Get(kidRef)
		if err != nil {
			return 0, fmt.Errorf("resolving Kids entry %s: %w", kidRef, err)
		}

		if node, ok := obj.(core.Dict); ok && isPagesNode(node) {
			if count, ok := node.GetInt("Count"); ok {
				total += int(count)
			}
		} else {
			// Not a container, so a single leaf page.
			total++
		}
	}
	return total, nil
}

func isPagesNode(dict core.Dict) bool {
	name, ok := dict.GetName("Type")
	return ok && name == "Pages"
}
