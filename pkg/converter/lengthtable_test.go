package converter

import "testing"

func note(pos, length, measure int) NoteEvent {
	return NoteEvent{PitchClass: 0, Octave: 5, Position: pos, Length: length, Measure: measure}
}

func TestBuildLengthTableMeasureBoundary(t *testing.T) {
	// pos 144 len 240 spills past the end of measure 1 (tick 192)
	notes := []NoteEvent{
		note(144, 240, 1),
		note(240, 144, 2),
	}
	table := BuildLengthTable(notes)

	if table[144] != 48 {
		t.Errorf("table[144] = %d, want 48 (truncated to measure boundary)", table[144])
	}
	if table[240] != 144 {
		t.Errorf("table[240] = %d, want 144", table[240])
	}
}

func TestBuildLengthTableNextNoteOverlap(t *testing.T) {
	// the second note starts before the first one ends
	notes := []NoteEvent{
		note(192, 96, 2),
		note(216, 48, 2),
		note(264, 96, 2),
	}
	table := BuildLengthTable(notes)

	if table[192] != 24 {
		t.Errorf("table[192] = %d, want 24 (truncated to next note)", table[192])
	}
	if table[216] != 48 {
		t.Errorf("table[216] = %d, want 48", table[216])
	}
	if table[264] != 96 {
		t.Errorf("table[264] = %d, want 96", table[264])
	}
}

func TestBuildLengthTableChordTakesShortest(t *testing.T) {
	notes := []NoteEvent{
		note(0, 96, 1),
		note(0, 48, 1),
	}
	table := BuildLengthTable(notes)

	if table[0] != 48 {
		t.Errorf("table[0] = %d, want 48 (shortest note of the chord)", table[0])
	}
}

// The same chord in either authored order must produce the same table.
func TestBuildLengthTableOrderIndependent(t *testing.T) {
	a := BuildLengthTable([]NoteEvent{note(0, 48, 1), note(0, 96, 1), note(96, 48, 1)})
	b := BuildLengthTable([]NoteEvent{note(0, 96, 1), note(0, 48, 1), note(96, 48, 1)})

	if len(a) != len(b) {
		t.Fatalf("tables differ in size: %d vs %d", len(a), len(b))
	}
	for pos, length := range a {
		if b[pos] != length {
			t.Errorf("table[%d] = %d vs %d depending on note order", pos, length, b[pos])
		}
	}
}

func TestBuildLengthTableChordSpillsIntoNextNote(t *testing.T) {
	// two equal-length notes at pos 372 both spill past the next note at
	// 384 and past the measure boundary; the entry must shrink to 12
	notes := []NoteEvent{
		note(372, 48, 2),
		note(372, 48, 2),
		note(384, 48, 3),
	}
	table := BuildLengthTable(notes)

	if table[372] != 12 {
		t.Errorf("table[372] = %d, want 12", table[372])
	}
}

func TestBuildLengthTableInvariants(t *testing.T) {
	notes := []NoteEvent{
		note(0, 96, 1),
		note(0, 48, 1),
		note(24, 200, 1),
		note(144, 240, 1),
		note(240, 144, 2),
		note(372, 48, 2),
		note(384, 48, 3),
	}
	table := BuildLengthTable(notes)

	byMeasure := make(map[int]int)
	for _, n := range notes {
		byMeasure[n.Position] = n.Measure
	}

	for pos, length := range table {
		if boundary := measureEnd(byMeasure[pos]); pos+length > boundary {
			t.Errorf("entry at %d (len %d) crosses measure boundary %d", pos, length, boundary)
		}
	}

	for i, n := range notes {
		next, ok := nextDistinctPosition(notes, i)
		if !ok {
			continue
		}
		if n.Position+table[n.Position] > next {
			t.Errorf("entry at %d (len %d) overlaps next position %d", n.Position, table[n.Position], next)
		}
	}
}
