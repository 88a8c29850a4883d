package converter

// noteTypeTicks maps each standard MusicXML note type to its tick length.
var noteTypeTicks = map[string]int{
	"whole":   192,
	"half":    96,
	"quarter": 48,
	"eighth":  24,
	"16th":    12,
	"32nd":    6,
	"64th":    3,
}

// lengthSteps maps raw tick lengths to the note type to notate them as,
// in descending order. Dotted and double-dotted lengths collapse to plain
// types (168 and 144 both become halves) because dotted notation is not
// supported.
var lengthSteps = []struct {
	Ticks int
	Type  string
}{
	{192, "whole"},
	{168, "half"},
	{144, "half"},
	{96, "half"},
	{72, "quarter"},
	{48, "quarter"},
	{36, "eighth"},
	{24, "eighth"},
	{12, "16th"},
	{6, "32nd"},
	{3, "64th"},
}

// NearestNoteType returns the note type of the largest tabled length that
// is less than or equal to the given tick length. Lengths below a 64th
// note fall back to "64th". Pure and total.
func NearestNoteType(length int) string {
	for _, step := range lengthSteps {
		if step.Ticks <= length {
			return step.Type
		}
	}
	return "64th"
}

// NoteTypeTicks returns the canonical tick length of a note type name.
func NoteTypeTicks(name string) int {
	return noteTypeTicks[name]
}

// snappedTicks returns the canonical tick length a raw length will be
// notated as: the tick value of its nearest note type.
func snappedTicks(length int) int {
	return noteTypeTicks[NearestNoteType(length)]
}
