package render

import "image/color"

// Context holds the parameters for rendering operations.
//
// If multiple diagrams are rendered, they should share the same
// Context so the output stays visually consistent.
type Context struct {
	// Width and Height are the output size, in pixels for PNG and in
	// points for PDF.
	Width  int
	Height int
	// Margin is added around the diagram coordinates on all sides.
	Margin float64
	// LineWidth is the stroke width for paths.
	LineWidth float64
	// Stroke, Fill and Background are the drawing colors. Closed paths
	// are filled and stroked, open paths only stroked.
	Stroke     color.Color
	Fill       color.Color
	Background color.Color
}

// NewContext creates a rendering context with default settings.
func NewContext() *Context {
	return &Context{
		Width:      640,
		Height:     480,
		Margin:     24,
		LineWidth:  2,
		Stroke:     color.Black,
		Fill:       color.RGBA{127, 127, 127, 255},
		Background: color.White,
	}
}

// device maps a diagram coordinate to a device coordinate.
// Diagram space is y-up, device space (image and PDF) is y-down.
func (c *Context) device(x, y float64) (float64, float64) {
	return c.Margin + x, float64(c.Height) - c.Margin - y
}
