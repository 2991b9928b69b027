// Package registry provides the document-wide object registry and
// indirect reference resolution.
//
// A [Registry] is an arena-style store of objects addressed by
// [core.IndirectRef]. Objects are added with [Registry.Add] (which
// allocates the next object number) or [Registry.Put] (which installs
// an object under a caller-chosen reference, as when reconstructing a
// deserialized graph). Looking up a reference that has no target
// fails with [ErrObjectNotFound]; a dangling reference is never a
// silent nil.
//
// A [Resolver] follows chains of indirect references down to a
// concrete object. Reference chains in a well-formed document are
// short, but the resolver never trusts that: it tracks visited
// references and bounds its own depth, so a reference cycle degrades
// to a deterministic error instead of non-termination:
//
//	res := registry.NewResolver(reg, registry.WithMaxDepth(50))
//	obj, err := res.Resolve(dict.Get("MediaBox"))
package registry
