package chartjs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChart(t *testing.T) {
	chart := NewChart("", "NOK/kWh", "Hour of day", []float64{1.234, 0.5})

	require.Len(t, chart.Data.Datasets, 1)
	assert.Len(t, chart.Data.Labels, NoOfHours)
	assert.Equal(t, "00:00", chart.Data.Labels[0])
	assert.Equal(t, "23:00", chart.Data.Labels[23])
	assert.Equal(t, 1.23, *chart.Data.Datasets[0].Data[0])
	assert.Equal(t, 0.5, *chart.Data.Datasets[0].Data[1])
	assert.Equal(t, "NOK/kWh", chart.Options.Scales["YAxis1"].Title.Text)
	assert.False(t, chart.Options.Plugins.Title.Display)
}

func TestNewChartMoreThanOneDay(t *testing.T) {
	chart := NewChart("", "", "", make([]float64, 25))
	assert.Len(t, chart.Data.Labels, 25)
}

func TestNewEmptyChart(t *testing.T) {
	chart := NewEmptyChart("NOK/kWh", "Hour of day")

	require.Len(t, chart.Data.Datasets, 1)
	assert.Len(t, chart.Data.Datasets[0].Data, NoOfHours)
	assert.Equal(t, ColorBlack, chart.Data.Datasets[0].BorderColor)
	for _, v := range chart.Data.Datasets[0].Data {
		assert.Equal(t, 0.0, *v)
	}
}

func TestWithThreshold(t *testing.T) {
	base := NewChart("", "", "", []float64{1, 2, 3})
	chart := base.WithThreshold("limit", 1.5)

	require.Len(t, chart.Data.Datasets, 2)
	assert.Len(t, base.Data.Datasets, 1, "base chart is not modified")
	line := chart.Data.Datasets[1]
	assert.Equal(t, "limit", line.Label)
	assert.Len(t, line.Data, NoOfHours)
	assert.Equal(t, 1.5, *line.Data[NoOfHours-1])
	assert.Equal(t, 0, *line.PointRadius)
}

func TestWithYScale(t *testing.T) {
	base := NewChart("", "", "", []float64{1})
	chart := base.WithYScale(0, 3)

	assert.Equal(t, 3.0, *chart.Options.Scales["YAxis1"].Max)
	assert.Nil(t, base.Options.Scales["YAxis1"].Max)
}

func TestFixedFloat64(t *testing.T) {
	assert.Equal(t, 1.24, *FixedFloat64(1.236, 2))
	assert.Equal(t, 2.0, *FixedFloat64(1.96, 0))
}
