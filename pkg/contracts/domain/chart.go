package domain

import (
	"math"
)

// Bounds is a closed numeric axis range.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChartPayload carries everything an external bar-chart renderer needs to
// draw one year of monthly values. The adapter computes it; pixel-level
// rendering, bar annotation and window lifecycle belong to the renderer.
type ChartPayload struct {
	Title      string          `json:"title"`
	YLabel     string          `json:"y_label"`
	XLabel     string          `json:"x_label"`
	Categories [12]string      `json:"categories"`
	// Values are the twelve monthly observations in calendar order. Missing
	// observations are rendered as absent bars, never as zero.
	Values   [12]Observation `json:"values"`
	BarWidth float64         `json:"bar_width"`
	XBounds  Bounds          `json:"x_bounds"`
	YBounds  Bounds          `json:"y_bounds"`
}

// BarValues returns the twelve values with NaN substituted for missing
// observations, the display-safe form most plotting libraries expect.
func (p *ChartPayload) BarValues() [12]float64 {
	var out [12]float64
	for i, v := range p.Values {
		if v.Present {
			out[i] = v.Value
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
