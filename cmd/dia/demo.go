package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/arlet/dia"
	"github.com/arlet/dia/pkg/render"
)

// buildDemo constructs an arrow whose head is wrapped scale-invariant,
// then distorts the whole composite. The shaft and the surrounding box
// stretch; the arrowhead only rotates and moves.
func buildDemo(stretch float64, turn dia.Angle) dia.Diagram {
	a := dia.Pt(60, 80)
	b := dia.Pt(260, 180)
	dir := b.Sub(a)

	shaft := dia.Line(a, b)
	box := dia.Rect(dia.Pt(40, 60), dia.Pt(280, 200))

	// Author the head in place: tip at b, pointing along the shaft.
	place := dia.Translation(b.Sub(dia.Origin)).Mult(dia.Rotation(dia.DirectionOf(dir).Angle()))
	head := dia.NewScaleInvariantAt(dia.Arrowhead(18).ApplyTransform(place), dir, b)

	t := dia.Rotation(turn).Mult(dia.Scaling(stretch, 1))

	return dia.Compose(
		dia.PathPrim(box.ApplyTransform(t)),
		dia.PathPrim(shaft.ApplyTransform(t)),
		dia.Prim(head.ApplyTransform(t), dia.EmptyEnvelope()),
	)
}

func doDemo(outDir string, stretch, turn float64, validate bool) error {
	d := buildDemo(stretch, dia.Deg(turn))
	rc := render.NewContext()

	pngPath := filepath.Join(outDir, "demo.png")
	pdfPath := filepath.Join(outDir, "demo.pdf")

	var group errgroup.Group
	group.Go(func() error {
		return writeFile(pngPath, func(f *os.File) error {
			return render.RenderPNG(rc, d, f)
		})
	})
	group.Go(func() error {
		return writeFile(pdfPath, func(f *os.File) error {
			return render.RenderPDF(rc, d, f)
		})
	})
	err := group.Wait()
	if err != nil {
		return err
	}

	if validate {
		err = api.ValidateFile(pdfPath, nil)
		if err != nil {
			return dia.Wrap(err, "validation failed for %q", pdfPath)
		}
		fmt.Printf("%v is valid\n", pdfPath)
	}

	fmt.Printf("wrote %v and %v\n", pngPath, pdfPath)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = write(f)
	if err != nil {
		return dia.Wrap(err, "failed to write %q", path)
	}
	return nil
}
