package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, 0.5, s.Act.H1)
	assert.Equal(t, 0.5, s.Act.H2)
	assert.InDelta(t, 0.6225, s.Act.Out, 1e-4)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, 1.0, s.Avg.Count)
}

func TestUpdate(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Update("InputA", "0.8"))
	v, _ := s.Params.Get("InputA")
	assert.Equal(t, 0.8, v)
	assert.Equal(t, 2, s.Step)
	assert.Equal(t, 2.0, s.Avg.Count)
	assert.Equal(t, 2, s.Hist.Len())

	// out of range values clamp
	require.NoError(t, s.Update("WeightAH1", "99"))
	v, _ = s.Params.Get("WeightAH1")
	assert.Equal(t, 1.0, v)

	assert.Error(t, s.Update("Nope", "1"), "unknown fields are rejected")
	assert.Equal(t, 3, s.Step, "failed updates do not recompute")
}

func TestReset(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Update("InputA", "1"))
	require.NoError(t, s.Update("BiasOut", "-2"))
	s.Reset()
	assert.Equal(t, NewState().Params, s.Params)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, 1.0, s.Avg.Count, "reset clears the session statistics")
	assert.Equal(t, 1, s.Hist.Len())
}

func TestFrame(t *testing.T) {
	s := NewState()
	f := s.frame()
	assert.Equal(t, s.Act.Out, f.Out)
	assert.Equal(t, s.Act.H1, f.H1)
	assert.Equal(t, s.Step, f.Step)
	assert.NotZero(t, f.Ts)
}
