package render

// Surface receives the renderer's output. Colours are 8-bit palette indices.
// The renderer only writes; it never reads pixels back.
type Surface interface {
	SetColor(c uint8)

	// FillRect fills w by h pixels with the current colour, starting at x, y.
	FillRect(x, y, w, h int)

	// VertLine draws length pixels downward from x, y in the current colour.
	VertLine(x, y, length int)
}
