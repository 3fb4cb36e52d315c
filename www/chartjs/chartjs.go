package chartjs

import (
	"math"

	"github.com/angas/pricepulse/hours"
)

const NoOfHours = 24
const ColorYellow = "#ffc107d4"
const ColorRed = "#f44336d4"
const ColorBlack = "#000000"

// NewChart returns a single-axis hourly line chart with one dataset per
// value slice, labelled with the hour intervals of the longest slice.
func NewChart(title, yTitle, xTitle string, values []float64) Chart {
	n := max(len(values), NoOfHours)
	labels := make([]string, n)
	for i := range n {
		labels[i] = hours.HourLabel(i)
	}

	data := make([]*float64, len(values))
	for i, v := range values {
		data[i] = FixedFloat64(v, 2)
	}

	chart := Chart{
		Type: "line",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{
				{
					Label:       "price",
					Data:        data,
					BorderWidth: 2,
					Tension:     0,
					Fill:        true,
					Stepped:     "before",
					BorderColor: ColorYellow,
					YAxisID:     "YAxis1",
				},
			},
		},
		Options: ChartOptions{
			Responsive: true,
			Plugins: ChartPlugins{
				Legend: ChartLegend{Display: false},
				Title:  ChartTitle{Display: false},
			},
			Scales: map[string]ChartScale{
				"x": {
					Type:     "category",
					Display:  true,
					Position: "bottom",
					Title:    ChartScaleTitle{Display: xTitle != "", Text: xTitle}},
				"YAxis1": {
					Type:     "linear",
					Display:  true,
					Position: "left",
					Title:    ChartScaleTitle{Display: yTitle != "", Text: yTitle}},
			},
		},
	}

	if title != "" {
		chart.Options.Plugins.Title = ChartTitle{Display: true, Text: title}
	}

	return chart
}

// NewEmptyChart is the placeholder shown before any prices are loaded.
func NewEmptyChart(yTitle, xTitle string) Chart {
	chart := NewChart("", yTitle, xTitle, make([]float64, NoOfHours))
	chart.Data.Datasets[0].BorderColor = ColorBlack
	chart.Data.Datasets[0].Fill = false
	return chart
}

// WithThreshold adds a dashed horizontal line at value across all hours.
func (c Chart) WithThreshold(label string, value float64) Chart {
	n := len(c.Data.Labels)
	data := make([]*float64, n)
	for i := range n {
		data[i] = FixedFloat64(value, 2)
	}
	c.Data.Datasets = append(append([]ChartDataset{}, c.Data.Datasets...), ChartDataset{
		Label:       label,
		Data:        data,
		BorderWidth: 1,
		BorderColor: ColorRed,
		BorderDash:  []int{6, 4},
		PointRadius: new(int),
		YAxisID:     "YAxis1",
	})
	return c
}

func (c Chart) WithYScale(min, max float64) Chart {
	scales := make(map[string]ChartScale, len(c.Options.Scales))
	for k, v := range c.Options.Scales {
		scales[k] = v
	}
	scales["YAxis1"] = scales["YAxis1"].WithMinAndMax(min, max)
	c.Options.Scales = scales
	return c
}

func (cs ChartScale) WithTitle(title string) ChartScale {
	cs.Title.Text = title
	return cs
}

func (cs ChartScale) WithMinAndMax(min, max float64) ChartScale {
	cs.Min = &min
	cs.Max = &max
	return cs
}

func FixedFloat64(num float64, precision int) *float64 {
	p := math.Pow(10, float64(precision))
	rounded := math.Round(num * p)
	result := rounded / p
	return &result
}
