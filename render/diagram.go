// Package render draws the network: a node and edge diagram as SVG plus
// per-layer weight heatmaps as raster images.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/gurulost/neural-network-vizu/nn"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Canvas size and fixed node layout, in points. vg puts the origin at the
// bottom left.
const (
	Width      = 460
	Height     = 300
	NodeRadius = 22
)

var nodePos = map[string]vg.Point{
	"A":   {X: 80, Y: 210},
	"B":   {X: 80, Y: 90},
	"H1":  {X: 230, Y: 210},
	"H2":  {X: 230, Y: 90},
	"Out": {X: 385, Y: 150},
}

var nodeLabel = map[string]string{
	"A": "input A", "B": "input B", "H1": "hidden 1", "H2": "hidden 2", "Out": "output",
}

// Palette fixes the two node fill endpoints and the edge sign colours.
type Palette struct {
	Name      string
	Low, High color.NRGBA
	Positive  color.NRGBA
	Negative  color.NRGBA
}

var Palettes = []Palette{
	{
		Name: "cool",
		Low:  color.NRGBA{237, 242, 247, 255}, High: color.NRGBA{43, 108, 176, 255},
		Positive: color.NRGBA{47, 158, 79, 255}, Negative: color.NRGBA{197, 48, 40, 255},
	},
	{
		Name: "warm",
		Low:  color.NRGBA{255, 250, 240, 255}, High: color.NRGBA{192, 86, 33, 255},
		Positive: color.NRGBA{56, 142, 60, 255}, Negative: color.NRGBA{211, 47, 47, 255},
	},
}

// PaletteByName falls back to the first palette for unknown names.
func PaletteByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

// NodeFill interpolates between the palette endpoints by val in [0,1].
func (pal Palette) NodeFill(val float64) color.NRGBA {
	if val < 0 {
		val = 0
	} else if val > 1 {
		val = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + val*(float64(b)-float64(a)))
	}
	return color.NRGBA{
		lerp(pal.Low.R, pal.High.R),
		lerp(pal.Low.G, pal.High.G),
		lerp(pal.Low.B, pal.High.B),
		255,
	}
}

// EdgeColor encodes the weight sign in the hue and its magnitude in the
// alpha channel, clamped to 1.
func (pal Palette) EdgeColor(weight float64) color.NRGBA {
	col := pal.Positive
	if weight < 0 {
		col = pal.Negative
	}
	mag := math.Abs(weight)
	if mag > 1 {
		mag = 1
	}
	col.A = uint8(255 * mag)
	return col
}

// Diagram draws the five nodes and six edges onto c. A nil canvas is
// silently skipped.
func Diagram(c vg.Canvas, p nn.Params, a nn.Activations, pal Palette) error {
	if c == nil {
		return nil
	}
	labelFont, err := vg.MakeFont("Helvetica", 9)
	if err != nil {
		return err
	}
	valueFont, err := vg.MakeFont("Helvetica-Bold", 11)
	if err != nil {
		return err
	}
	// edges first so the node discs cover the line ends
	c.SetLineWidth(2.5)
	for _, e := range p.Edges() {
		c.SetColor(pal.EdgeColor(e.Weight))
		var path vg.Path
		path.Move(nodePos[e.From])
		path.Line(nodePos[e.To])
		c.Stroke(path)
	}
	for _, node := range nn.Nodes {
		pos := nodePos[node]
		val := a.Value(p, node)
		var disc vg.Path
		disc.Arc(pos, NodeRadius, 0, 2*math.Pi)
		disc.Close()
		c.SetColor(pal.NodeFill(val))
		c.Fill(disc)
		c.SetColor(color.NRGBA{45, 55, 72, 255})
		c.SetLineWidth(1.5)
		c.Stroke(disc)

		text := fmt.Sprintf("%.2f", val)
		c.SetColor(textColor(val))
		c.FillString(valueFont, vg.Point{X: pos.X - valueFont.Width(text)/2, Y: pos.Y - 4}, text)
		c.SetColor(color.NRGBA{45, 55, 72, 255})
		label := nodeLabel[node]
		c.FillString(labelFont, vg.Point{X: pos.X - labelFont.Width(label)/2, Y: pos.Y - NodeRadius - 12}, label)
	}
	return nil
}

// light text on dark fills
func textColor(val float64) color.NRGBA {
	if val > 0.55 {
		return color.NRGBA{255, 255, 255, 255}
	}
	return color.NRGBA{45, 55, 72, 255}
}

// SVG renders the diagram to an SVG document.
func SVG(p nn.Params, a nn.Activations, pal Palette) ([]byte, error) {
	c := vgsvg.New(vg.Points(Width), vg.Points(Height))
	if err := Diagram(c, p, a, pal); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
