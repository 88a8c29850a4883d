package converter

import "testing"

func TestDecomposeRestSum(t *testing.T) {
	gaps := []int{0, 3, 6, 12, 24, 48, 96, 144, 189, 192, 240, 384, 5, 7, 50, 100}

	for _, gap := range gaps {
		runs := DecomposeRest(gap)
		sum := 0
		for _, run := range runs {
			sum += run.Count * NoteTypeTicks(run.Type)
		}
		rem := gap - sum
		if rem < 0 || rem >= 3 {
			t.Errorf("DecomposeRest(%d) covers %d ticks, remainder %d (want 0 <= rem < 3)", gap, sum, rem)
		}
	}
}

func TestDecomposeRestEmissionOrder(t *testing.T) {
	want := []string{"64th", "32nd", "16th", "eighth", "quarter", "whole"}

	runs := DecomposeRest(255)
	if len(runs) != len(want) {
		t.Fatalf("DecomposeRest returned %d runs, want %d", len(runs), len(want))
	}
	for i, run := range runs {
		if run.Type != want[i] {
			t.Errorf("run %d has type %q, want %q", i, run.Type, want[i])
		}
	}
}

func TestDecomposeRestGreedy(t *testing.T) {
	tests := []struct {
		gap  int
		want map[string]int
	}{
		{144, map[string]int{"quarter": 3}},
		{192, map[string]int{"whole": 1}},
		{240, map[string]int{"whole": 1, "quarter": 1}},
		{90, map[string]int{"quarter": 1, "eighth": 1, "16th": 1, "32nd": 1}},
		{0, map[string]int{}},
	}

	for _, tt := range tests {
		got := make(map[string]int)
		for _, run := range DecomposeRest(tt.gap) {
			if run.Count > 0 {
				got[run.Type] = run.Count
			}
		}
		if len(got) != len(tt.want) {
			t.Errorf("DecomposeRest(%d) = %v, want %v", tt.gap, got, tt.want)
			continue
		}
		for name, count := range tt.want {
			if got[name] != count {
				t.Errorf("DecomposeRest(%d)[%s] = %d, want %d", tt.gap, name, got[name], count)
			}
		}
	}
}

// A 96-tick gap comes out as two quarter rests, never a half rest: the
// decomposer has no half bucket. Documented behavior, not a bug.
func TestDecomposeRestNeverEmitsHalfRests(t *testing.T) {
	for _, gap := range []int{96, 120, 144, 168} {
		for _, run := range DecomposeRest(gap) {
			if run.Type == "half" {
				t.Errorf("DecomposeRest(%d) emitted a half rest", gap)
			}
		}
	}

	runs := DecomposeRest(96)
	for _, run := range runs {
		if run.Type == "quarter" && run.Count != 2 {
			t.Errorf("DecomposeRest(96) has %d quarter rests, want 2", run.Count)
		}
	}
}

func TestRestDuration(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"whole", 32},
		{"half", 16},
		{"quarter", 8},
		{"eighth", 4},
		{"16th", 2},
		{"32nd", 1},
		{"64th", 0}, // below the 32nd-note resolution of divisions=8
	}

	for _, tt := range tests {
		if got := RestDuration(tt.name); got != tt.want {
			t.Errorf("RestDuration(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
