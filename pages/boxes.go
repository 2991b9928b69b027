package pages

import (
	"github.com/docukit/folio/core"
	"github.com/docukit/folio/model"
)

// Box returns the named page box. The attribute is resolved through
// the ancestor chain; a missing ArtBox, BleedBox or TrimBox falls
// back to the CropBox, a missing CropBox falls back to the MediaBox,
// and a missing MediaBox is a zero rectangle.
//
// When raw is false the stored rotation is reconciled with the box:
// rotations normalizing to 90 or 270 swap width and height, 0 and
// 180 leave them unchanged, and any other stored rotation fails with
// ErrInvalidRotation. The fallback chain itself is resolved in
// unrotated space, so the adjustment is applied exactly once.
func (p *Page) Box(name string, raw bool) (model.Rect, error) {
	rect, err := p.boxRaw(name)
	if err != nil {
		return model.Rect{}, err
	}
	if raw {
		return rect, nil
	}

	swap, err := p.rotationSwap()
	if err != nil {
		return model.Rect{}, err
	}
	if swap {
		rect = rect.Swapped()
	}
	return rect, nil
}

// boxRaw resolves the box fallback chain without rotation handling.
func (p *Page) boxRaw(name string) (model.Rect, error) {
	obj, err := p.res.Resolve(p.FindInherited(name))
	if err != nil {
		return model.Rect{}, err
	}
	if arr, ok := obj.(core.Array); ok {
		return model.RectFromArray(arr)
	}

	switch name {
	case "ArtBox", "BleedBox", "TrimBox":
		return p.boxRaw("CropBox")
	case "CropBox":
		return p.boxRaw("MediaBox")
	}

	// MediaBox is the terminal default: absent means a zero rect.
	return model.Rect{}, nil
}

// SetBox stores the named page box locally, never on an ancestor.
// When raw is false the stored rectangle swaps width and height
// relative to the caller-supplied one under the same rotation classes
// and error policy as Box.
func (p *Page) SetBox(name string, rect model.Rect, raw bool) error {
	if !raw {
		swap, err := p.rotationSwap()
		if err != nil {
			return err
		}
		if swap {
			rect = rect.Swapped()
		}
	}
	p.dict.Set(name, rect.ToArray())
	return nil
}

// MediaBox returns the page media box.
func (p *Page) MediaBox(raw bool) (model.Rect, error) { return p.Box("MediaBox", raw) }

// CropBox returns the page crop box.
func (p *Page) CropBox(raw bool) (model.Rect, error) { return p.Box("CropBox", raw) }

// TrimBox returns the page trim box.
func (p *Page) TrimBox(raw bool) (model.Rect, error) { return p.Box("TrimBox", raw) }

// BleedBox returns the page bleed box.
func (p *Page) BleedBox(raw bool) (model.Rect, error) { return p.Box("BleedBox", raw) }

// ArtBox returns the page art box.
func (p *Page) ArtBox(raw bool) (model.Rect, error) { return p.Box("ArtBox", raw) }

// SetMediaBox stores the page media box.
func (p *Page) SetMediaBox(rect model.Rect, raw bool) error { return p.SetBox("MediaBox", rect, raw) }

// SetCropBox stores the page crop box.
func (p *Page) SetCropBox(rect model.Rect, raw bool) error { return p.SetBox("CropBox", rect, raw) }

// SetTrimBox stores the page trim box.
func (p *Page) SetTrimBox(rect model.Rect, raw bool) error { return p.SetBox("TrimBox", rect, raw) }

// SetBleedBox stores the page bleed box.
func (p *Page) SetBleedBox(rect model.Rect, raw bool) error { return p.SetBox("BleedBox", rect, raw) }

// SetArtBox stores the page art box.
func (p *Page) SetArtBox(rect model.Rect, raw bool) error { return p.SetBox("ArtBox", rect, raw) }

// Rect returns the rotation-adjusted media box.
func (p *Page) Rect() (model.Rect, error) { return p.MediaBox(false) }

// SetRect stores the media box from a rotation-adjusted rectangle.
func (p *Page) SetRect(rect model.Rect) error { return p.SetMediaBox(rect, false) }

// SetPageWidth sets the page width by moving the right edge of the
// MediaBox, keeping its left edge in place, and mirrors the change
// into the CropBox the same way. It reports false without touching
// anything when no MediaBox resolves, and false after updating only
// the MediaBox when no CropBox exists to mirror into. TrimBox,
// BleedBox and ArtBox are left alone.
func (p *Page) SetPageWidth(width float64) bool {
	return p.setPageExtent(0, 2, width)
}

// SetPageHeight sets the page height by moving the top edge of the
// MediaBox, keeping its bottom edge in place, and mirrors the change
// into the CropBox. Reporting mirrors SetPageWidth.
func (p *Page) SetPageHeight(height float64) bool {
	return p.setPageExtent(1, 3, height)
}

// setPageExtent moves one edge of the MediaBox and CropBox arrays in
// place: the element at hi becomes the element at lo plus extent.
func (p *Page) setPageExtent(lo, hi int, extent float64) bool {
	mediaBox, ok := p.inheritedArray("MediaBox")
	if !ok || mediaBox.Len() != 4 {
		return false
	}
	origin, ok := mediaBox.NumberAt(lo)
	if !ok {
		return false
	}
	mediaBox[hi] = core.Real(origin + extent)

	cropBox, ok := p.inheritedArray("CropBox")
	if !ok || cropBox.Len() != 4 {
		return false
	}
	origin, ok = cropBox.NumberAt(lo)
	if !ok {
		return false
	}
	cropBox[hi] = core.Real(origin + extent)
	return true
}

// inheritedArray resolves an inherited attribute down to its array
// storage, so element writes land in the array wherever it lives.
func (p *Page) inheritedArray(key string) (core.Array, bool) {
	obj, err := p.res.Resolve(p.FindInherited(key))
	if err != nil {
		return nil, false
	}
	arr, ok := obj.(core.Array)
	return arr, ok
}
