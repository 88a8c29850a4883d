package converter

import "testing"

func TestRecognizedInstrument(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"piano", true},
		{"Piano", true},
		{" cello ", true},
		{"french horn", true},
		{"street bass", true},
		{"drums", false},
		{"synth lead", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := RecognizedInstrument(tt.name); got != tt.want {
			t.Errorf("RecognizedInstrument(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBassInstrument(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"bass", true},
		{"cello", true},
		{"tuba", true},
		{"Trombone", true},
		{"piano", false},
		{"violin", false},
	}

	for _, tt := range tests {
		if got := IsBassInstrument(tt.name); got != tt.want {
			t.Errorf("IsBassInstrument(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPitchName(t *testing.T) {
	want := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for i, name := range want {
		if got := PitchName(i); got != name {
			t.Errorf("PitchName(%d) = %q, want %q", i, got, name)
		}
	}
}
