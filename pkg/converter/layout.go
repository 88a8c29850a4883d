package converter

import (
	"strings"

	"github.com/Demez/mmp-to-MusicXML/pkg/musicxml"
)

// clefTypes maps clef names to their MusicXML sign and line.
var clefTypes = map[string]musicxml.Clef{
	"treble": {Sign: "G", Line: 2},
	"bass":   {Sign: "F", Line: 4},
}

func clefFor(instrument string) musicxml.Clef {
	if IsBassInstrument(instrument) {
		return clefTypes["bass"]
	}
	return clefTypes["treble"]
}

// firstMeasureAttributes builds the attribute block every part's first
// measure carries: divisions, key (C major), 4/4 time and the clef.
func firstMeasureAttributes(clef musicxml.Clef) *musicxml.Attributes {
	return &musicxml.Attributes{
		Divisions: Divisions,
		Key:       musicxml.Key{Fifths: 0},
		Time:      musicxml.Time{Beats: 4, BeatType: 4},
		Clef:      clef,
	}
}

func wholeRestNote() musicxml.Note {
	return musicxml.Note{
		Rest:     &musicxml.Rest{Measure: "yes"},
		Duration: WholeMeasureDuration,
	}
}

// wholeRestMeasure builds a measure holding nothing but a full-measure rest.
func wholeRestMeasure(number int) musicxml.Measure {
	return musicxml.Measure{Number: number, Notes: []musicxml.Note{wholeRestNote()}}
}

// firstMeasure builds measure 1 with its attribute block, optionally as a
// full-measure rest when the part's first note starts later.
func firstMeasure(clef musicxml.Clef, fullRest bool) musicxml.Measure {
	m := musicxml.Measure{Number: 1, Attributes: firstMeasureAttributes(clef)}
	if fullRest {
		m.Notes = append(m.Notes, wholeRestNote())
	}
	return m
}

func restNote(typeName string) musicxml.Note {
	return musicxml.Note{
		Rest:     &musicxml.Rest{},
		Duration: RestDuration(typeName),
		Type:     typeName,
	}
}

// pitchedNote builds a note element. Duration and type come from the
// length table's effective length at the note's position, not from the
// raw authored length; chord members reuse the position's entry.
func pitchedNote(n NoteEvent, table LengthTable, chord bool) musicxml.Note {
	name := PitchName(n.PitchClass)
	pitch := &musicxml.Pitch{Step: name[:1], Octave: n.Octave}
	if strings.HasSuffix(name, "#") {
		pitch.Alter = 1
	}

	effective := table.EffectiveTicks(n.Position)
	note := musicxml.Note{
		Pitch:    pitch,
		Duration: effective / TicksPerDivision,
		Type:     NearestNoteType(effective),
	}
	if chord {
		note.Chord = &musicxml.Empty{}
	}
	return note
}

func appendRests(m *musicxml.Measure, runs []RestRun) {
	for _, run := range runs {
		for i := 0; i < run.Count; i++ {
			m.Notes = append(m.Notes, restNote(run.Type))
		}
	}
}

// LayoutPart walks one instrument's time-sorted notes and produces its
// measure sequence: notes, chord members, gap rests, end-of-measure
// padding and whole-rest measures for fully skipped stretches. Returns
// the measures and the index of the last measure holding a note.
func LayoutPart(notes []NoteEvent, table LengthTable, clef musicxml.Clef) ([]musicxml.Measure, int) {
	if len(notes) == 0 {
		return nil, 0
	}

	var measures []musicxml.Measure
	var cur musicxml.Measure

	first := notes[0]
	if first.Measure == 1 {
		cur = firstMeasure(clef, false)
	} else {
		// leading whole-rest measures; the very first still carries
		// the attribute block
		for i := 0; i < first.Measure-1; i++ {
			if i == 0 {
				measures = append(measures, firstMeasure(clef, true))
			} else {
				measures = append(measures, wholeRestMeasure(i+1))
			}
		}
		cur = musicxml.Measure{Number: first.Measure}
	}

	lastMeasure := first.Measure
	seen := make(map[int]bool)

	for k, note := range notes {
		if note.Measure != lastMeasure {
			// close the current measure, fill fully skipped ones
			measures = append(measures, cur)
			for i := 0; i < note.Measure-lastMeasure-1; i++ {
				measures = append(measures, wholeRestMeasure(lastMeasure+i+1))
			}
			cur = musicxml.Measure{Number: note.Measure}
		}

		if seen[note.Position] {
			// chord member: no rests, no time advance
			cur.Notes = append(cur.Notes, pitchedNote(note, table, true))
		} else {
			var gap int
			if note.Measure == lastMeasure && k > 0 {
				prev := notes[k-1]
				gap = note.Position - (prev.Position + table.EffectiveTicks(prev.Position))
			} else {
				// first event of the measure
				gap = note.Position - measureStart(note.Measure)
			}
			appendRests(&cur, DecomposeRest(gap))
			seen[note.Position] = true
			cur.Notes = append(cur.Notes, pitchedNote(note, table, false))
		}

		// pad to the boundary when this is the measure's last event
		if k == len(notes)-1 || notes[k+1].Measure > note.Measure {
			pad := measureEnd(note.Measure) - (note.Position + table.EffectiveTicks(note.Position))
			appendRests(&cur, DecomposeRest(pad))
		}

		lastMeasure = note.Measure
	}

	measures = append(measures, cur)
	return measures, lastMeasure
}
