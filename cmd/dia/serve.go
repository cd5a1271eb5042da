package main

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/arlet/dia"
	"github.com/arlet/dia/pkg/preview"
	"github.com/arlet/dia/pkg/render"
)

// doServe runs the live preview with an animated version of the demo
// diagram: the composite breathes between stretched and compressed
// while slowly rotating. The arrowhead visibly keeps its shape.
func doServe(addr string, maxWidth int) error {
	rc := render.NewContext()
	srv := preview.NewServer(rc)
	srv.MaxWidth = maxWidth

	go animate(srv)

	fmt.Printf("preview on http://%v/\n", addr)
	return http.ListenAndServe(addr, srv.Handler())
}

func animate(srv *preview.Server) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var phase float64
	for range ticker.C {
		phase += 0.03
		stretch := 1.5 + 0.8*math.Sin(phase)
		turn := dia.Rad(0.4 * math.Sin(phase/3))

		err := srv.Update(buildDemo(stretch, turn))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
}
