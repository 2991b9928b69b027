package pages

import (
	"fmt"
	"math"

	"github.com/docukit/folio/core"
)

// Normalize maps value into the half-open range [start, end) using
// mathematical modulo, so negative inputs wrap into range: -90 over
// [0, 360) normalizes to 270. It is total over all integer inputs.
func Normalize(value, start, end int) int {
	width := end - start
	offset := (value - start) % width
	if offset < 0 {
		offset += width
	}
	return offset + start
}

// Rotation returns the raw stored rotation in degrees, inherited
// from an ancestor when not set locally. Malformed documents may
// store any integer here; 0 is returned when the attribute is absent
// or not numeric.
func (p *Page) Rotation() int {
	obj, err := p.res.Resolve(p.FindInherited("Rotate"))
	if err != nil {
		return 0
	}
	if n, ok := core.Number(obj); ok {
		return int(n)
	}
	return 0
}

// SetRotation stores the page rotation locally. Only 0, 90, 180 and
// 270 are accepted; anything else fails with ErrValueOutOfRange and
// leaves the page unchanged.
func (p *Page) SetRotation(degrees int) error {
	switch degrees {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("%w: rotation %d, want 0, 90, 180 or 270", ErrValueOutOfRange, degrees)
	}
	p.dict.Set("Rotate", core.Int(degrees))
	return nil
}

// HasRotation reports whether the page has an effective rotation,
// and if so the angle in radians. Stored rotations are
// clockwise-positive, so the returned angle is negated to follow the
// usual counterclockwise mathematical convention. It never fails,
// whatever integer is stored.
func (p *Page) HasRotation() (bool, float64) {
	rotation := Normalize(p.Rotation(), 0, 360)
	if rotation == 0 {
		return false, 0
	}
	return true, -float64(rotation) * math.Pi / 180
}

// rotationSwap reports whether the page rotation exchanges box width
// and height. A stored rotation that does not normalize to a
// multiple of 90 fails with ErrInvalidRotation.
func (p *Page) rotationSwap() (bool, error) {
	rotation := p.Rotation()
	switch Normalize(rotation, 0, 360) {
	case 90, 270:
		return true, nil
	case 0, 180:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d degrees", ErrInvalidRotation, rotation)
	}
}
