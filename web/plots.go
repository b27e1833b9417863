package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gurulost/neural-network-vizu/nn"
	"github.com/gurulost/neural-network-vizu/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const sigmoidSpan = 8.0

type PlotPage struct {
	*Templates
	net *State
}

// Base data for handler functions to display the sigmoid curve and the
// session statistics
func NewPlotPage(t *Templates, net *State) *PlotPage {
	p := &PlotPage{net: net}
	p.Templates = t.Select("/plots")
	return p
}

// Handler function for the plots template
func (p *PlotPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Exec(w, "plots", p)
	}
}

func (p *PlotPage) Heading() template.HTML {
	s := fmt.Sprintf(`session output: mean %s, trend %.2f over %d updates`,
		p.net.Avg.HTML(), p.net.Ema.Value(), int(p.net.Avg.Count))
	return template.HTML(s)
}

// SigmoidPlot draws the activation function with each neuron's current
// operating point marked on the curve.
func (p *PlotPage) SigmoidPlot(width, height int) template.HTML {
	plt := newPlot()
	plt.X.Label.Text = "weighted input sum"
	plt.Y.Label.Text = "activation"
	plt.X.Min, plt.X.Max = -sigmoidSpan, sigmoidSpan
	plt.Y.Min, plt.Y.Max = 0, 1

	curve := sigmoidCurve()
	plt.Add(curve)
	plt.Legend.Add("sigmoid ", curve)

	a := p.net.Act
	names := []string{"H1", "H2", "out"}
	points := plotter.XYs{
		{X: a.SumH1, Y: a.H1},
		{X: a.SumH2, Y: a.H2},
		{X: a.SumOut, Y: a.Out},
	}
	for i, pt := range points {
		s, err := plotter.NewScatter(plotter.XYs{pt})
		if err != nil {
			log.Fatal("Plot error: ", err)
		}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Color = plotutil.Color(i + 1)
		plt.Add(s)
		plt.Legend.Add(names[i]+" ", s)
	}
	return writePlot(plt, width, height)
}

// HistoryPlot draws the output activation over the session's updates.
func (p *PlotPage) HistoryPlot(width, height int) template.HTML {
	plt := newPlot()
	plt.X.Label.Text = "update"
	plt.Y.Label.Text = "output"
	line := newLinePlot(p.net.Hist.Samples())
	plt.Add(line)
	plt.Legend.Add("output ", line)
	return writePlot(plt, width, height)
}

func sigmoidCurve() *plotter.Line {
	var pts plotter.XYs
	for x := -sigmoidSpan; x <= sigmoidSpan; x += 0.25 {
		pts = append(pts, plotter.XY{X: x, Y: nn.Sigmoid(x)})
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal("Plot error: ", err)
	}
	l.Width = 2
	l.Color = plotutil.Color(0)
	return l
}

func newPlot() *plot.Plot {
	p, err := plot.New()
	if err != nil {
		log.Fatal("Plot error: ", err)
	}
	fontSmall := newFont(10)
	fontMedium := newFont(12)
	p.X.Padding, p.Y.Padding = 0, 0
	p.X.Tick.Label.Font = fontSmall
	p.Y.Tick.Label.Font = fontSmall
	p.X.Label.Font = fontMedium
	p.Y.Label.Font = fontMedium
	p.Legend.Top = true
	p.Legend.Font = fontMedium
	p.Add(plotter.NewGrid())
	return p
}

func writePlot(p *plot.Plot, w, h int) template.HTML {
	var buf bytes.Buffer
	writer, err := p.WriterTo(vg.Inch*vg.Length(w)/vgsvg.DPI, vg.Inch*vg.Length(h)/vgsvg.DPI, "svg")
	if err != nil {
		log.Fatal("Error writing plot: ", err)
	}
	writer.WriteTo(&buf)
	return template.HTML(buf.String())
}

func newFont(size vg.Length) vg.Font {
	font, err := vg.MakeFont("Helvetica", size)
	if err != nil {
		log.Fatal("Plot: failed loading font", err)
	}
	return font
}

func newLinePlot(samples []stats.Sample) linePlot {
	var pts plotter.XYs
	for _, s := range samples {
		pts = append(pts, plotter.XY{X: float64(s.Step), Y: s.Value})
	}
	xmin, xmax := 1.0, 1.0
	if len(samples) > 0 {
		xmin = float64(samples[0].Step)
		xmax = float64(samples[len(samples)-1].Step)
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal("Plot error: ", err)
	}
	l.Width = 2
	l.Color = plotutil.Color(1)
	return linePlot{Line: l, xmin: xmin, xmax: xmax, ymin: 0, ymax: 1}
}

// modified plotter.Line with a fixed scale: output activations always plot
// on a 0:1 axis
type linePlot struct {
	*plotter.Line
	xmin, xmax, ymin, ymax float64
}

func (l linePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return l.xmin, l.xmax, l.ymin, l.ymax
}
