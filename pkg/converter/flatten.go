package converter

import (
	"fmt"
	"sort"

	"github.com/Demez/mmp-to-MusicXML/pkg/mmp"
)

// FlattenTrack collects the notes of all pattern chunks of a track into a
// single list of absolute-positioned, measure-tagged events, sorted by
// position. Note positions inside a chunk are chunk-relative and are
// rewritten by adding the chunk's own offset. The sort is stable so that
// notes sharing a position keep their authored order; the first one owns
// the primary (non-chord) slot during layout.
//
// Malformed note data fails fast: silently carrying a negative position
// or length forward would produce notation that is wrong in ways that are
// hard to trace back to the source.
func FlattenTrack(track *mmp.Track) ([]NoteEvent, error) {
	var notes []NoteEvent
	for _, pat := range track.Patterns {
		// chunks always start on a measure boundary
		measure := pat.Pos/MeasureLength + 1
		for _, n := range pat.Notes {
			if n.Pos < 0 || n.Len < 0 || n.Key < 0 {
				return nil, fmt.Errorf("invalid note in track %q: key %d, position %d, length %d",
					track.Name, n.Key, pat.Pos+n.Pos, n.Len)
			}
			pos := pat.Pos + n.Pos
			measure = AssignMeasure(pos, measure)
			notes = append(notes, NoteEvent{
				PitchClass: n.Key % 12,
				Octave:     n.Key / 12,
				Position:   pos,
				Length:     n.Len,
				Measure:    measure,
			})
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Position < notes[j].Position
	})
	return notes, nil
}
