package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	rows := []ScatterRow{
		{Price: 10000, Mileage: 20000},
		{Price: 20000, Mileage: 40000},
		{Price: 60000, Mileage: 60000},
	}
	s := buildSummary(3, rows)
	assert.Equal(t, int64(3), s.TotalCars)
	assert.Equal(t, 30000.0, s.MeanPrice)
	assert.Equal(t, 20000.0, s.MedianPrice)
	assert.Equal(t, 40000.0, s.MeanMileage)
}

func TestBuildSummary_Empty(t *testing.T) {
	s := buildSummary(0, nil)
	assert.Equal(t, Summary{}, s)
}
