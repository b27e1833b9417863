package web

import (
	"fmt"
	"html/template"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/gurulost/neural-network-vizu/nn"
	"github.com/gurulost/neural-network-vizu/render"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var controlLabels = map[string]string{
	"InputA":      "input A",
	"InputB":      "input B",
	"WeightAH1":   "A → H1",
	"WeightBH1":   "B → H1",
	"WeightAH2":   "A → H2",
	"WeightBH2":   "B → H2",
	"WeightH1Out": "H1 → out",
	"WeightH2Out": "H2 → out",
	"BiasH1":      "bias H1",
	"BiasH2":      "bias H2",
	"BiasOut":     "bias out",
}

type ViewPage struct {
	*Templates
	Palette string
	Float   bool
	net     *State
}

// Control describes one slider: current value plus its documented range and
// step.
type Control struct {
	Name, Label           string
	Value, Min, Max, Step float64
}

// Base data for handler functions to view and adjust the network
func NewViewPage(t *Templates, net *State) *ViewPage {
	p := &ViewPage{net: net}
	p.Templates = t.Select("/view")
	p.AddOption(Link{Name: "reset", Url: "/view/reset"})
	p.AddOption(Link{Name: "palette", Url: "/view/palette"})
	p.AddOption(Link{Name: "float", Url: "/view/float"})
	return p
}

// Handler function for the main view page with the sliders and diagram
func (p *ViewPage) Base() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		p.Palette = p.option(r, "palette", "cool")
		p.Float = p.option(r, "float", "on") == "on"
		p.Exec(w, "view", p)
	}
}

// Set option from top menu
func (p *ViewPage) Setopt() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		switch mux.Vars(r)["opt"] {
		case "reset":
			p.net.Reset()
			p.net.notify()
		case "palette":
			if p.option(r, "palette", "cool") == "cool" {
				p.setOption(w, r, "palette", "warm")
			} else {
				p.setOption(w, r, "palette", "cool")
			}
		case "float":
			if p.option(r, "float", "on") == "on" {
				p.setOption(w, r, "float", "off")
			} else {
				p.setOption(w, r, "float", "on")
			}
		}
		http.Redirect(w, r, "/view", http.StatusFound)
	}
}

func (p *ViewPage) Heading() template.HTML {
	s := fmt.Sprintf(`output <span id="out">%.4f</span> after <span id="step">%d</span> updates`,
		p.net.Act.Out, p.net.Step)
	return template.HTML(s)
}

func (p *ViewPage) Act() nn.Activations { return p.net.Act }

func (p *ViewPage) Inputs() []Control  { return p.controls("Input") }
func (p *ViewPage) Weights() []Control { return p.controls("Weight") }
func (p *ViewPage) Biases() []Control  { return p.controls("Bias") }

func (p *ViewPage) controls(prefix string) []Control {
	var list []Control
	for _, key := range p.net.Params.Fields() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		rng, err := nn.FieldRange(key)
		if err != nil {
			log.Println("controls:", err)
			continue
		}
		val, _ := p.net.Params.Get(key)
		list = append(list, Control{
			Name: key, Label: controlLabels[key],
			Value: val, Min: rng.Min, Max: rng.Max, Step: rng.Step,
		})
	}
	return list
}

// Handler function for the diagram image
func (p *ViewPage) Diagram() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		pal := render.PaletteByName(p.option(r, "palette", "cool"))
		svg, err := render.SVG(p.net.Params, p.net.Act, pal)
		if err != nil {
			logError(w, err)
			return
		}
		w.Header().Set("Content-type", "image/svg+xml")
		w.Write(svg)
	}
}

// Handler function for the per layer weight heatmap images
func (p *ViewPage) Heatmap() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		p.net.Lock()
		defer p.net.Unlock()
		layer, _ := strconv.Atoi(mux.Vars(r)["layer"])
		img := render.LayerImage(p.net.Params, layer)
		if img == nil {
			log.Printf("heatmap: no such layer %d\n", layer)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-type", "image/png")
		png.Encode(w, img)
	}
}

// Handler function for the websocket connection carrying the slider updates
func (p *ViewPage) Websocket() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logError(w, err)
			return
		}
		p.net.Lock()
		p.net.conn = conn
		p.net.Unlock()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			key, val, ok := strings.Cut(string(msg), " ")
			if !ok {
				log.Printf("websocket: malformed update %q\n", msg)
				continue
			}
			p.net.Lock()
			if err := p.net.Update(key, val); err != nil {
				log.Println("websocket:", err)
			} else {
				p.net.notify()
			}
			p.net.Unlock()
		}
		p.net.Lock()
		if p.net.conn == conn {
			p.net.conn = nil
		}
		p.net.Unlock()
		conn.Close()
	}
}
