package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "no ratings defaults to zero", ratings: nil, want: 0},
		{name: "empty slice defaults to zero", ratings: []int{}, want: 0},
		{name: "single rating", ratings: []int{4}, want: 4.0},
		{name: "exact mean", ratings: []int{4, 5, 3}, want: 4.0},
		{name: "rounds to one decimal", ratings: []int{5, 4}, want: 4.5},
		{name: "rounds up", ratings: []int{3, 3, 4}, want: 3.3},
		{name: "rounds half away from zero", ratings: []int{1, 2, 2}, want: 1.7},
		{name: "all maximum", ratings: []int{5, 5, 5, 5}, want: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageRating(tt.ratings), 1e-9)
		})
	}
}
