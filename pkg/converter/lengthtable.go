package converter

// BuildLengthTable computes, for every tick position that holds at least
// one note, the effective length to use for notation at that position.
// Notes must be sorted by ascending position (stable for chords).
//
// The effective length at a position is the minimum over every note at
// that position of:
//   - the note's raw length,
//   - the distance to the end of the note's own measure,
//   - the distance to the next distinct note position, when the note
//     would otherwise extend past it.
//
// Taking the minimum over all applicable truncation rules makes the
// result independent of the order notes are visited in. The guarantees:
// the entry never exceeds the raw length of the shortest note at the
// position, never crosses the measure boundary, and never overlaps the
// start of the next occupied position.
func BuildLengthTable(notes []NoteEvent) LengthTable {
	table := make(LengthTable, len(notes))

	for i, note := range notes {
		length := note.Length

		// clamp to the end of the note's measure
		boundary := measureEnd(note.Measure)
		if note.Position+length > boundary {
			length = boundary - note.Position
		}

		// clamp to the next distinct position, if the note spills into it
		if next, ok := nextDistinctPosition(notes, i); ok && note.Position+length > next {
			length = next - note.Position
		}

		if existing, ok := table[note.Position]; !ok || length < existing {
			table[note.Position] = length
		}
	}
	return table
}

// nextDistinctPosition finds the position of the first note after index i
// that does not share note i's position.
func nextDistinctPosition(notes []NoteEvent, i int) (int, bool) {
	for j := i + 1; j < len(notes); j++ {
		if notes[j].Position != notes[i].Position {
			return notes[j].Position, true
		}
	}
	return 0, false
}

// EffectiveTicks returns the canonical notated tick length at a position:
// the table entry snapped to its nearest note type.
func (t LengthTable) EffectiveTicks(position int) int {
	return snappedTicks(t[position])
}
