// Package pages resolves effective page-level attributes in the
// hierarchical document graph.
//
// Attributes on a page may be declared locally or inherited from
// ancestor Pages nodes. This package combines the inheritance lookup
// with the geometry rules that reconcile page boxes with the page
// rotation before exposing them to callers.
//
// # Page Tree
//
// Documents organize pages in a tree of Pages container nodes with
// Page leaves. [PageTree] traverses the hierarchy, building each
// page's ancestor chain as it goes:
//
//	tree, err := pages.NewPageTree(pagesRef, reg)
//	count, _ := tree.Count()
//	page, _ := tree.Page(0) // 0-indexed creation order
//
// # Page Boxes
//
// Each page exposes five named boxes: MediaBox, CropBox, TrimBox,
// BleedBox and ArtBox. A missing ArtBox, BleedBox or TrimBox falls
// back to the CropBox; a missing CropBox falls back to the MediaBox;
// a missing MediaBox is a zero rectangle. Unless the raw variant is
// requested, a page rotation of 90 or 270 degrees swaps the reported
// width and height.
//
// # Rotation
//
// Stored rotations are clockwise-positive degrees. They may only be
// written as one of 0, 90, 180 or 270, but arbitrary integers are
// tolerated on read and normalized into [0, 360) before use.
// [Page.HasRotation] exposes the angle in radians under the usual
// counterclockwise convention.
//
// # Hardening
//
// The document ordinal computation ([Page.PageNumber]) and the tree
// traversal walk live parent/child links, which in a corrupt or
// malicious document may form cycles. Both carry an explicit depth
// ceiling and fail with [ErrBrokenStructure] instead of looping.
package pages
