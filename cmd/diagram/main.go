// Command diagram renders the network for a given parameter setting to
// image files, for embedding in course notes.
//
//	diagram -out notes InputA=1 WeightAH1=-0.5 BiasOut=1.5
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gurulost/neural-network-vizu/nn"
	"github.com/gurulost/neural-network-vizu/render"
)

func main() {
	outDir := flag.String("out", ".", "output directory")
	palName := flag.String("palette", "cool", "colour palette (cool or warm)")
	flag.Parse()

	p := nn.Default()
	for _, arg := range flag.Args() {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "usage: diagram [opts] [Field=value ...]")
			os.Exit(1)
		}
		var err error
		p, err = p.Set(key, val)
		nn.CheckErr(err)
	}
	fmt.Println(p)

	svg, err := render.SVG(p, p.Activations(), render.PaletteByName(*palName))
	nn.CheckErr(err)
	nn.CheckErr(os.WriteFile(filepath.Join(*outDir, "diagram.svg"), svg, 0644))

	for layer, name := range []string{"hidden.png", "output.png"} {
		f, err := os.Create(filepath.Join(*outDir, name))
		nn.CheckErr(err)
		err = png.Encode(f, render.LayerImage(p, layer))
		f.Close()
		nn.CheckErr(err)
	}
	fmt.Println("wrote diagram.svg, hidden.png and output.png to", *outDir)
}
