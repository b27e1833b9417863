package render

import (
	"image"
	"image/color"

	"github.com/gurulost/neural-network-vizu/nn"
)

// diverging colour map for weight and bias cells
var cmap = [][3]float32{
	{0.13, 0.29, 0.65},
	{0.44, 0.60, 0.85},
	{0.96, 0.96, 0.96},
	{0.87, 0.47, 0.42},
	{0.70, 0.09, 0.17},
}

// convert value in range cmin:cmax to interpolated color from cmap
func mapColor(val, cmin, cmax float32) color.NRGBA {
	var col [3]float32
	ncol := len(cmap)
	switch {
	case val <= cmin:
		col = cmap[0]
	case val >= cmax:
		col = cmap[ncol-1]
	default:
		vsc := float32(ncol-1) * (val - cmin) / (cmax - cmin)
		ix := int(vsc)
		fx := vsc - float32(ix)
		for i := range col {
			col[i] = cmap[ix][i]*(1-fx) + cmap[ix+1][i]*fx
		}
	}
	return color.NRGBA{uint8(col[0] * 255), uint8(col[1] * 255), uint8(col[2] * 255), 255}
}

// Heatmap renders one row per neuron: the bias in column 0 then the incoming
// weights, one pixel per cell. The browser scales it up with image-rendering
// set to pixelated. Biases span twice the weight range so they are normalised
// before mapping.
func Heatmap(weights [][]float64, biases []float64) *image.NRGBA {
	if len(weights) == 0 || len(weights) != len(biases) {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(weights[0])+1, len(weights)))
	for row, cells := range weights {
		img.Set(0, row, mapColor(float32(biases[row]/nn.BiasRange.Max), -1, 1))
		for col, w := range cells {
			img.Set(col+1, row, mapColor(float32(w/nn.WeightRange.Max), -1, 1))
		}
	}
	return img
}

// HiddenLayerImage maps the input->hidden weights and hidden biases.
func HiddenLayerImage(p nn.Params) *image.NRGBA {
	return Heatmap(
		[][]float64{
			{p.WeightAH1, p.WeightBH1},
			{p.WeightAH2, p.WeightBH2},
		},
		[]float64{p.BiasH1, p.BiasH2},
	)
}

// OutputLayerImage maps the hidden->output weights and output bias.
func OutputLayerImage(p nn.Params) *image.NRGBA {
	return Heatmap(
		[][]float64{{p.WeightH1Out, p.WeightH2Out}},
		[]float64{p.BiasOut},
	)
}

// LayerImage returns the heatmap for layer index 0 (hidden) or 1 (output),
// nil otherwise.
func LayerImage(p nn.Params, layer int) *image.NRGBA {
	switch layer {
	case 0:
		return HiddenLayerImage(p)
	case 1:
		return OutputLayerImage(p)
	}
	return nil
}
