// Package converter turns LMMS piano-roll note data into MusicXML notation
package converter

// Timing constants. LMMS stores positions and lengths in ticks, with 192
// ticks to one 4/4 measure. MusicXML durations are expressed in divisions
// of a quarter note; with 8 divisions per quarter the smallest
// representable unit is a 32nd note, and one duration unit is 6 ticks.
const (
	MeasureLength    = 192
	Divisions        = 8
	TicksPerDivision = MeasureLength / (4 * Divisions)

	// WholeMeasureDuration is the duration of a full 4/4 measure in
	// divisions (4 beats of 8 divisions each).
	WholeMeasureDuration = 4 * Divisions
)

// NoteEvent is a single flattened note: absolute position on the song
// timeline, raw authored length, and pitch split into pitch class and
// octave. Measure is the 1-based measure index the note starts in.
// NoteEvents are immutable once flattening completes.
type NoteEvent struct {
	PitchClass int // semitone within the octave, 0-11
	Octave     int // piano key index / 12
	Position   int // absolute ticks from the start of the piece
	Length     int // raw tick duration as authored
	Measure    int // 1-based measure index
}

// Key reconstructs the absolute piano key index of the note.
func (n NoteEvent) Key() int {
	return n.Octave*12 + n.PitchClass
}

// End returns the tick position one past the note's raw extent.
func (n NoteEvent) End() int {
	return n.Position + n.Length
}

// LengthTable maps a tick position to the effective (possibly truncated)
// length used for notation at that position. Built once per part before
// layout, read-only afterward.
type LengthTable map[int]int

// ConversionResult holds the outcome of a conversion.
type ConversionResult struct {
	Data     []byte
	Filename string
	Format   string
	Warnings []string
}
