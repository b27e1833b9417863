// Package nn implements the fixed 2-2-1 feed forward network behind the
// visualiser: two inputs, two hidden neurons and one output, all sigmoid.
package nn

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Slider ranges per parameter group.
var (
	InputRange  = Range{Min: 0, Max: 1, Step: 0.01}
	WeightRange = Range{Min: -1, Max: 1, Step: 0.01}
	BiasRange   = Range{Min: -2, Max: 2, Step: 0.1}
)

// Documented default values restored by the reset action.
const (
	defaultInput  = 0
	defaultWeight = 0.5
	defaultBias   = 0
)

// Params holds the eleven user settable scalars. The topology itself is fixed:
// four weights input->hidden, two weights hidden->output, one bias per
// non-input node.
type Params struct {
	InputA      float64
	InputB      float64
	WeightAH1   float64
	WeightBH1   float64
	WeightAH2   float64
	WeightBH2   float64
	WeightH1Out float64
	WeightH2Out float64
	BiasH1      float64
	BiasH2      float64
	BiasOut     float64
}

// Range gives the valid interval and slider step for one parameter.
type Range struct {
	Min, Max, Step float64
}

// Clamp returns val forced into the range.
func (r Range) Clamp(val float64) float64 {
	if val < r.Min {
		return r.Min
	}
	if val > r.Max {
		return r.Max
	}
	return val
}

// Default returns the documented starting parameters.
func Default() Params {
	return Params{
		InputA: defaultInput, InputB: defaultInput,
		WeightAH1: defaultWeight, WeightBH1: defaultWeight,
		WeightAH2: defaultWeight, WeightBH2: defaultWeight,
		WeightH1Out: defaultWeight, WeightH2Out: defaultWeight,
		BiasH1: defaultBias, BiasH2: defaultBias, BiasOut: defaultBias,
	}
}

// Fields lists the parameter names in struct order.
func (p Params) Fields() []string {
	st := reflect.TypeOf(p)
	fld := make([]string, st.NumField())
	for i := range fld {
		fld[i] = st.Field(i).Name
	}
	return fld
}

// Get returns the named parameter value.
func (p Params) Get(key string) (float64, error) {
	f := reflect.ValueOf(p).FieldByName(key)
	if !f.IsValid() {
		return 0, errors.Errorf("nn: unknown parameter %q", key)
	}
	return f.Float(), nil
}

// FieldRange returns the range for the named parameter, derived from its
// group prefix. Only actual Params fields are accepted.
func FieldRange(key string) (Range, error) {
	if _, ok := reflect.TypeOf(Params{}).FieldByName(key); !ok {
		return Range{}, errors.Errorf("nn: unknown parameter %q", key)
	}
	switch {
	case strings.HasPrefix(key, "Input"):
		return InputRange, nil
	case strings.HasPrefix(key, "Weight"):
		return WeightRange, nil
	default:
		return BiasRange, nil
	}
}

// Set parses val, clamps it to the field's range and returns the updated
// parameters. The receiver is unchanged.
func (p Params) Set(key, val string) (Params, error) {
	r, err := FieldRange(key)
	if err != nil {
		return p, err
	}
	x, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return p, errors.Wrapf(err, "nn: parse %s", key)
	}
	f := reflect.ValueOf(&p).Elem().FieldByName(key)
	if !f.IsValid() {
		return p, errors.Errorf("nn: unknown parameter %q", key)
	}
	f.SetFloat(r.Clamp(x))
	return p, nil
}

// String prints one parameter per line, for logging.
func (p Params) String() string {
	str := []string{"== Params =="}
	for _, key := range p.Fields() {
		val, _ := p.Get(key)
		str = append(str, fmt.Sprintf("%-12s: %v", key, val))
	}
	return strings.Join(str, "\n")
}
