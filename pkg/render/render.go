// Package render draws diagrams onto raster (PNG) and vector (PDF)
// backends. The geometric core hands shapes to a dia.Renderer; this
// package supplies the backend implementations.
package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/arlet/dia"
	"github.com/arlet/dia/internal/logging"
)

// RenderPNG paints the given diagram and writes PNG data to the given
// writer.
func RenderPNG(c *Context, d dia.Diagram, w io.Writer) error {
	logging.Debug("render PNG, %v primitives", d.NumPrims())

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetStrokeColor(c.Stroke)
	gc.SetFillColor(c.Fill)
	gc.SetLineWidth(c.LineWidth)

	d.Render(&pngRenderer{gc: gc, ctx: c})

	err := png.Encode(w, img)
	if err != nil {
		return dia.Wrap(err, "failed to encode PNG")
	}
	return nil
}

// pngRenderer strokes paths onto a draw2d graphic context.
type pngRenderer struct {
	gc  *draw2dimg.GraphicContext
	ctx *Context
}

func (r *pngRenderer) Path(p dia.Path) {
	pts := p.Points()
	if len(pts) < 2 {
		return
	}

	r.gc.BeginPath()
	x, y := r.ctx.device(pts[0].X, pts[0].Y)
	r.gc.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = r.ctx.device(pt.X, pt.Y)
		r.gc.LineTo(x, y)
	}

	if p.Closed() {
		r.gc.Close()
		r.gc.FillStroke()
	} else {
		r.gc.Stroke()
	}
}
