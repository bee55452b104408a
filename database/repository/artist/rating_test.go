package artistRepo

import (
	"math"
	"testing"
)

func TestFoldRatingFirstRating(t *testing.T) {
	tests := []int{1, 3, 5}
	for _, stars := range tests {
		avg, count := FoldRating(0, 0, stars)
		if avg != float64(stars) {
			t.Errorf("first rating of %d stars: avg = %v, want %v", stars, avg, float64(stars))
		}
		if count != 1 {
			t.Errorf("first rating of %d stars: count = %d, want 1", stars, count)
		}
	}
}

func TestFoldRatingSequentialMean(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
	}{
		{"two ratings", []int{5, 3}},
		{"three ratings", []int{5, 3, 4}},
		{"all extremes", []int{1, 5, 1, 5}},
		{"constant", []int{4, 4, 4, 4, 4}},
	}
	for _, tt := range tests {
		var (
			avg   float64
			count int
			sum   int
		)
		for _, r := range tt.stars {
			avg, count = FoldRating(avg, count, r)
			sum += r
		}

		want := float64(sum) / float64(len(tt.stars))
		if math.Abs(avg-want) > 1e-9 {
			t.Errorf("%s: folded avg = %v, want arithmetic mean %v", tt.name, avg, want)
		}
		if count != len(tt.stars) {
			t.Errorf("%s: count = %d, want %d", tt.name, count, len(tt.stars))
		}
	}
}
