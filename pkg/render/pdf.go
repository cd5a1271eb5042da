package render

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/arlet/dia"
	"github.com/arlet/dia/internal/logging"
)

// RenderPDF paints the given diagram as vector graphics and writes PDF
// data to the given writer.
func RenderPDF(c *Context, d dia.Diagram, w io.Writer) error {
	logging.Debug("render PDF, %v primitives", d.NumPrims())

	pdf := setupPDF(c)
	d.Render(&pdfRenderer{pdf: pdf, ctx: c})

	if pdf.Err() {
		return dia.Wrap(pdf.Error(), "failed to render PDF")
	}
	return pdf.Output(w)
}

func setupPDF(c *Context) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(c.Width), Ht: float64(c.Height)},
	})
	pdf.AddPage()
	pdf.SetLineWidth(c.LineWidth)
	pdf.SetDrawColor(rgb(c.Stroke))
	pdf.SetFillColor(rgb(c.Fill))
	return pdf
}

// pdfRenderer strokes paths onto a PDF page.
type pdfRenderer struct {
	pdf *gofpdf.Fpdf
	ctx *Context
}

func (r *pdfRenderer) Path(p dia.Path) {
	pts := p.Points()
	if len(pts) < 2 {
		return
	}

	x, y := r.ctx.device(pts[0].X, pts[0].Y)
	r.pdf.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = r.ctx.device(pt.X, pt.Y)
		r.pdf.LineTo(x, y)
	}

	if p.Closed() {
		r.pdf.ClosePath()
		r.pdf.DrawPath("FD")
	} else {
		r.pdf.DrawPath("D")
	}
}

// rgb converts a color to the 8-bit channel triple gofpdf expects.
func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
