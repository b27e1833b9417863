package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gurulost/neural-network-vizu/nn"
)

func TestNodeFillEndpoints(t *testing.T) {
	pal := Palettes[0]
	if got := pal.NodeFill(0); got != pal.Low {
		t.Errorf("fill at 0: got %v want %v", got, pal.Low)
	}
	if got := pal.NodeFill(1); got != pal.High {
		t.Errorf("fill at 1: got %v want %v", got, pal.High)
	}
	// out of range values clamp rather than wrap
	if got := pal.NodeFill(-3); got != pal.Low {
		t.Errorf("fill at -3: got %v want %v", got, pal.Low)
	}
	if got := pal.NodeFill(7); got != pal.High {
		t.Errorf("fill at 7: got %v want %v", got, pal.High)
	}
}

func TestEdgeColor(t *testing.T) {
	pal := PaletteByName("cool")
	pos := pal.EdgeColor(0.5)
	if pos.R != pal.Positive.R || pos.G != pal.Positive.G || pos.B != pal.Positive.B {
		t.Errorf("positive weight should use the positive hue, got %v", pos)
	}
	if pos.A != 127 {
		t.Errorf("opacity for |w|=0.5: got %d want 127", pos.A)
	}
	neg := pal.EdgeColor(-1)
	if neg.R != pal.Negative.R || neg.A != 255 {
		t.Errorf("negative full weight: got %v", neg)
	}
	if a := pal.EdgeColor(-4.2).A; a != 255 {
		t.Errorf("opacity clamps at 1, got alpha %d", a)
	}
	if a := pal.EdgeColor(0).A; a != 0 {
		t.Errorf("zero weight is invisible, got alpha %d", a)
	}
}

func TestPaletteByNameFallback(t *testing.T) {
	if got := PaletteByName("no-such"); got.Name != Palettes[0].Name {
		t.Errorf("unknown palette should fall back, got %s", got.Name)
	}
	if got := PaletteByName("warm"); got.Name != "warm" {
		t.Errorf("got %s want warm", got.Name)
	}
}

func TestDiagramNilCanvas(t *testing.T) {
	p := nn.Default()
	if err := Diagram(nil, p, p.Activations(), Palettes[0]); err != nil {
		t.Errorf("nil canvas must be a no-op, got %v", err)
	}
}

func TestSVG(t *testing.T) {
	p := nn.Default()
	out, err := SVG(p, p.Activations(), PaletteByName("cool"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("<svg")) {
		t.Error("output does not look like an SVG document")
	}
}

func TestMapColorEndpoints(t *testing.T) {
	lo := mapColor(-1, -1, 1)
	want := color.NRGBA{uint8(cmap[0][0] * 255), uint8(cmap[0][1] * 255), uint8(cmap[0][2] * 255), 255}
	if lo != want {
		t.Errorf("cmin colour: got %v want %v", lo, want)
	}
	hi := mapColor(2, -1, 1)
	last := cmap[len(cmap)-1]
	want = color.NRGBA{uint8(last[0] * 255), uint8(last[1] * 255), uint8(last[2] * 255), 255}
	if hi != want {
		t.Errorf("cmax colour: got %v want %v", hi, want)
	}
}

func TestHeatmapShape(t *testing.T) {
	p := nn.Default()
	img := HiddenLayerImage(p)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("hidden layer image: got %dx%d want 3x2", b.Dx(), b.Dy())
	}
	img = OutputLayerImage(p)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Errorf("output layer image: got %dx%d want 3x1", b.Dx(), b.Dy())
	}
	if LayerImage(p, 2) != nil {
		t.Error("layer 2 should not exist")
	}
	if Heatmap(nil, nil) != nil {
		t.Error("empty heatmap should be nil")
	}
}
