package pages

import (
	"fmt"

	"github.com/docukit/folio/core"
	"github.com/docukit/folio/logging"
	"github.com/docukit/folio/registry"
)

// Catalog wraps the document catalog, the root of the document
// structure.
type Catalog struct {
	dict core.Dict
	reg  *registry.Registry
}

// NewCatalog creates a catalog from its dictionary.
func NewCatalog(dict core.Dict, reg *registry.Registry) *Catalog {
	return &Catalog{dict: dict, reg: reg}
}

// Type returns the catalog type name, normally "Catalog".
func (c *Catalog) Type() string {
	name, _ := c.dict.GetName("Type")
	return string(name)
}

// PageTree returns the tree rooted at the catalog's Pages entry.
func (c *Catalog) PageTree() (*PageTree, error) {
	ref, ok := c.dict.GetRef("Pages")
	if !ok {
		return nil, fmt.Errorf("%w: catalog has no Pages reference", ErrBrokenStructure)
	}
	return NewPageTree(ref, c.reg)
}

// PageTree traverses the hierarchy of Pages container nodes and Page
// leaves, building the flattened page list together with each page's
// ancestor chain snapshot.
type PageTree struct {
	ref   core.IndirectRef
	root  core.Dict
	reg   *registry.Registry
	res   *registry.Resolver
	pages []*Page
}

// NewPageTree creates a page tree rooted at the referenced Pages
// node and traverses it. Traversal fails when the structure is
// malformed: a Kids entry that resolves to nothing, a node of an
// unexpected type, or a tree deep enough to imply a cycle.
func NewPageTree(root core.IndirectRef, reg *registry.Registry) (*PageTree, error) {
	t := &PageTree{
		ref: root,
		reg: reg,
		res: registry.NewResolver(reg),
	}

	dict, err := t.res.ResolveDict(root)
	if err != nil {
		return nil, fmt.Errorf("resolving page tree root: %w", err)
	}
	t.root = dict

	if err := t.walk(root, dict, nil, 0); err != nil {
		return nil, err
	}
	logging.Logger().Debug("page tree loaded", "root", root.String(), "pages", len(t.pages))
	return t, nil
}

// Count returns the root node's cached subtree page count, or 0 when
// the attribute is absent.
func (t *PageTree) Count() int {
	count, _ := t.root.GetInt("Count")
	return int(count)
}

// Len returns the number of pages actually found by traversal.
func (t *PageTree) Len() int { return len(t.pages) }

// Page returns the page at the given 0-based creation index.
func (t *PageTree) Page(index int) (*Page, error) {
	if index < 0 || index >= len(t.pages) {
		return nil, fmt.Errorf("pages: index %d out of range [0, %d)", index, len(t.pages))
	}
	return t.pages[index], nil
}

// Pages returns all pages in creation order.
func (t *PageTree) Pages() []*Page { return t.pages }

// walk visits a node, accumulating the ancestor chain (nearest
// first) that pages hand to inheritable attribute lookups.
func (t *PageTree) walk(ref core.IndirectRef, node core.Dict, parents []core.Dict, depth int) error {
	if depth >= maxTreeDepth {
		return fmt.Errorf("%w: page tree exceeds depth %d", ErrBrokenStructure, maxTreeDepth)
	}

	name, _ := node.GetName("Type")
	switch name {
	case "Pages":
		kids, err := t.res.ResolveArray(node.Get("Kids"))
		if err != nil {
			return fmt.Errorf("resolving Kids of %s: %w", ref, err)
		}

		chain := make([]core.Dict, 0, len(parents)+1)
		chain = append(chain, node)
		chain = append(chain, parents...)

		for i, kid := range kids {
			kidRef, ok := kid.(core.IndirectRef)
			if !ok {
				return fmt.Errorf("%w: Kids entry %d of %s is %s, want a reference", ErrBrokenStructure, i, ref, kid.Kind())
			}
			obj, err := t.reg.Get(kidRef)
			if err != nil {
				return fmt.Errorf("resolving Kids entry %d of %s: %w", i, ref, err)
			}
			kidDict, ok := obj.(core.Dict)
			if !ok {
				return fmt.Errorf("%w: Kids entry %s is %s, want a dictionary", ErrBrokenStructure, kidRef, obj.Kind())
			}
			if err := t.walk(kidRef, kidDict, chain, depth+1); err != nil {
				return err
			}
		}

	case "Page":
		t.pages = append(t.pages, newPage(ref, node, parents, len(t.pages), t.reg))

	default:
		return fmt.Errorf("%w: node %s has type %q", ErrBrokenStructure, ref, string(name))
	}

	return nil
}
