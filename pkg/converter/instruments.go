package converter

import (
	"sort"
	"strings"
)

// instrumentNames is the fixed allow-list of track names that get
// converted. Tracks with any other name are skipped.
var instrumentNames = map[string]bool{
	"piano":       true,
	"bass":        true,
	"vibes":       true,
	"orchestra":   true,
	"violin":      true,
	"cello":       true,
	"tuba":        true,
	"trombone":    true,
	"french horn": true,
	"horn":        true,
	"trumpet":     true,
	"flute":       true,
	"oboe":        true,
	"clarinet":    true,
	"bassoon":     true,
	"street bass": true,
	"guitar":      true,
	"str":         true,
	"marc str":    true,
	"pizz":        true,
	"harp":        true,
	"piccolo":     true,
}

// bassInstruments names the instruments notated in bass clef; everything
// else gets treble.
var bassInstruments = map[string]bool{
	"bass":        true,
	"cello":       true,
	"double bass": true,
	"trombone":    true,
	"tuba":        true,
	"bassoon":     true,
	"street bass": true,
}

// pitchNames maps a pitch class to its note name; index 1 of the name is
// '#' for the sharp classes.
var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// RecognizedInstrument reports whether a track name is on the conversion
// allow-list. Matching is case-insensitive on the trimmed name.
func RecognizedInstrument(name string) bool {
	return instrumentNames[normalizeName(name)]
}

// IsBassInstrument reports whether the instrument is notated in bass clef.
func IsBassInstrument(name string) bool {
	return bassInstruments[normalizeName(name)]
}

// PitchName returns the note name of a pitch class, e.g. "C#" for 1.
func PitchName(pitchClass int) string {
	return pitchNames[pitchClass]
}

// InstrumentNames returns the allow-list, sorted, for display surfaces
// (the API and CLI help).
func InstrumentNames() []string {
	names := make([]string, 0, len(instrumentNames))
	for name := range instrumentNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
