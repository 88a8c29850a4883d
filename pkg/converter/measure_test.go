package converter

import "testing"

func TestAssignMeasure(t *testing.T) {
	tests := []struct {
		position int
		prev     int
		want     int
	}{
		{0, 1, 1},
		{48, 1, 1},
		{191, 1, 1},
		{192, 1, 2},
		{200, 1, 2},
		{383, 1, 2},
		{383, 2, 2},
		// two or more empty measures: jump directly
		{384, 1, 3},
		{576, 1, 4},
		{576, 3, 4},
		{960, 1, 6},
	}

	for _, tt := range tests {
		got := AssignMeasure(tt.position, tt.prev)
		if got != tt.want {
			t.Errorf("AssignMeasure(%d, %d) = %d, want %d", tt.position, tt.prev, got, tt.want)
		}
	}
}

func TestAssignMeasureExactBoundaries(t *testing.T) {
	// a position at exactly k*192 lands in measure k+1
	for k := 0; k < 8; k++ {
		if got := AssignMeasure(k*MeasureLength, 1); got != k+1 {
			t.Errorf("AssignMeasure(%d, 1) = %d, want %d", k*MeasureLength, got, k+1)
		}
	}
}

func TestAssignMeasureMonotonic(t *testing.T) {
	positions := []int{0, 0, 24, 48, 191, 192, 240, 576, 576, 600, 1200}

	prev := 1
	last := 0
	for _, pos := range positions {
		m := AssignMeasure(pos, prev)
		if m < last {
			t.Fatalf("measure decreased from %d to %d at position %d", last, m, pos)
		}
		last = m
		prev = m
	}
}
