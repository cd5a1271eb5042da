package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/arlet/dia"
)

func main() {
	app := kingpin.New("dia", "Diagram rendering tool")
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "Verbose log output").Short('v').Bool()

	demo := app.Command("demo", "Render the demo diagram").Default()
	var (
		outDir   = demo.Flag("output", "Output directory").Short('o').Default(".").String()
		stretch  = demo.Flag("stretch", "Horizontal scale factor applied to the composite").Default("2.0").Float64()
		turn     = demo.Flag("turn", "Rotation applied to the composite (degrees)").Default("15").Float64()
		validate = demo.Flag("validate", "Validate the generated PDF").Bool()
	)

	serve := app.Command("serve", "Serve an animated live preview")
	var (
		addr     = serve.Flag("addr", "Listen address").Default("localhost:8080").String()
		maxWidth = serve.Flag("max-width", "Scale preview images down to this width").Default("0").Int()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		dia.SetLogLevel("debug")
	} else {
		dia.SetLogLevel("warning")
	}

	var err error
	switch command {
	case "demo":
		err = doDemo(*outDir, *stretch, *turn, *validate)
	case "serve":
		err = doServe(*addr, *maxWidth)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
