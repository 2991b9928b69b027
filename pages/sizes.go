package pages

import "github.com/docukit/folio/model"

// PageSize names a standard paper size.
type PageSize int

const (
	SizeA0 PageSize = iota
	SizeA1
	SizeA2
	SizeA3
	SizeA4
	SizeA5
	SizeA6
	SizeLetter
	SizeLegal
	SizeTabloid
)

// StandardPageSize returns the media box rectangle for a standard
// paper size, in page units with the origin at (0, 0). landscape
// exchanges width and height. Unknown sizes yield a zero rectangle.
func StandardPageSize(size PageSize, landscape bool) model.Rect {
	var rect model.Rect

	switch size {
	case SizeA0:
		rect.Width, rect.Height = 2384, 3370
	case SizeA1:
		rect.Width, rect.Height = 1684, 2384
	case SizeA2:
		rect.Width, rect.Height = 1191, 1684
	case SizeA3:
		rect.Width, rect.Height = 842, 1190
	case SizeA4:
		rect.Width, rect.Height = 595, 842
	case SizeA5:
		rect.Width, rect.Height = 420, 595
	case SizeA6:
		rect.Width, rect.Height = 297, 420
	case SizeLetter:
		rect.Width, rect.Height = 612, 792
	case SizeLegal:
		rect.Width, rect.Height = 612, 1008
	case SizeTabloid:
		rect.Width, rect.Height = 792, 1224
	}

	if landscape {
		rect = rect.Swapped()
	}
	return rect
}
