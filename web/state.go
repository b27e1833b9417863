// Package web has a web based interface for the interactive network
// visualiser.
package web

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gurulost/neural-network-vizu/nn"
	"github.com/gurulost/neural-network-vizu/stats"
)

const (
	historySize = 200
	emaWindow   = 20
)

// State is the shared network state behind all handlers: the current
// parameters plus everything derived from them. It lives only for the
// lifetime of the process; reset restores the documented defaults.
type State struct {
	Params nn.Params
	Act    nn.Activations
	Step   int
	Avg    stats.Average
	Ema    stats.EMA
	Hist   *stats.History
	conn   *websocket.Conn
	sync.Mutex
}

// Frame is one websocket update pushed after a recompute.
type Frame struct {
	H1   float64 `json:"h1"`
	H2   float64 `json:"h2"`
	Out  float64 `json:"out"`
	Step int     `json:"step"`
	Ts   int64   `json:"ts"`
}

func NewState() *State {
	s := &State{Params: nn.Default(), Ema: stats.EMA{Window: emaWindow}, Hist: stats.NewHistory(historySize)}
	s.recompute()
	return s
}

// Update parses and applies one slider change and recomputes the
// activations. The caller holds the lock.
func (s *State) Update(key, val string) error {
	p, err := s.Params.Set(key, val)
	if err != nil {
		return err
	}
	s.Params = p
	s.recompute()
	return nil
}

// Reset restores the documented defaults and clears the session statistics.
func (s *State) Reset() {
	s.Params = nn.Default()
	s.Step = 0
	s.Avg = stats.Average{}
	s.Ema = stats.EMA{Window: emaWindow}
	s.Hist = stats.NewHistory(historySize)
	s.recompute()
}

// recompute derives the activations from the current parameters and records
// the output in the session statistics.
func (s *State) recompute() {
	s.Act = s.Params.Activations()
	s.Step++
	s.Avg.Add(s.Act.Out)
	s.Ema.Add(s.Act.Out)
	s.Hist.Add(s.Step, s.Act.Out)
}

func (s *State) frame() Frame {
	return Frame{
		H1:   s.Act.H1,
		H2:   s.Act.H2,
		Out:  s.Act.Out,
		Step: s.Step,
		Ts:   time.Now().UnixNano(),
	}
}

// notify pushes the current frame over the websocket, if one is connected.
func (s *State) notify() {
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteJSON(s.frame()); err != nil {
		log.Println("notify: error writing to websocket", err)
	}
}
