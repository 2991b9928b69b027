package model

import (
	"fmt"

	"github.com/docukit/folio/core"
)

// Rect represents a rectangle in unrotated page-space units,
// described by its lower-left origin plus width and height.
type Rect struct {
	Left   float64
	Bottom float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from an origin and extent.
func NewRect(left, bottom, width, height float64) Rect {
	return Rect{Left: left, Bottom: bottom, Width: width, Height: height}
}

// RectFromArray converts a stored [left, bottom, right, top] array
// into a Rect. Coordinates are normalized so that width and height
// are non-negative regardless of the order the corners were stored
// in. It fails when the array does not hold exactly four numbers.
func RectFromArray(arr core.Array) (Rect, error) {
	if arr.Len() != 4 {
		return Rect{}, fmt.Errorf("model: rectangle array has %d elements, want 4", arr.Len())
	}

	var c [4]float64
	for i := range c {
		n, ok := arr.NumberAt(i)
		if !ok {
			return Rect{}, fmt.Errorf("model: rectangle element %d is %s, want a number", i, arr.At(i).Kind())
		}
		c[i] = n
	}

	left, right := c[0], c[2]
	if right < left {
		left, right = right, left
	}
	bottom, top := c[1], c[3]
	if top < bottom {
		bottom, top = top, bottom
	}

	return Rect{
		Left:   left,
		Bottom: bottom,
		Width:  right - left,
		Height: top - bottom,
	}, nil
}

// ToArray converts the rectangle into its stored
// [left, bottom, right, top] form.
func (r Rect) ToArray() core.Array {
	return core.Array{
		core.Real(r.Left),
		core.Real(r.Bottom),
		core.Real(r.Right()),
		core.Real(r.Top()),
	}
}

// Right returns the right edge X coordinate.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Top returns the top edge Y coordinate.
func (r Rect) Top() float64 { return r.Bottom + r.Height }

// Swapped returns the rectangle with width and height exchanged,
// keeping the same origin.
func (r Rect) Swapped() Rect {
	r.Width, r.Height = r.Height, r.Width
	return r
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.Left, r.Bottom, r.Right(), r.Top())
}
