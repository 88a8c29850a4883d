package converter

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/Demez/mmp-to-MusicXML/pkg/mmp"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// midiTicksPerQuarter keeps MIDI ticks 1:1 with LMMS ticks: 192 ticks per
// 4/4 measure is 48 per quarter note.
const midiTicksPerQuarter = 48

const defaultBPM = 120

// GenerateMIDI renders the recognized tracks of a project as a standard
// MIDI file, one SMF track per instrument, using raw authored note
// lengths (MIDI has no trouble with overlap, so nothing is truncated).
func GenerateMIDI(project *mmp.Project) ([]byte, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(midiTicksPerQuarter)

	bpm := project.Head.BPM
	if bpm <= 0 {
		bpm = defaultBPM
	}

	trackCount := 0
	for i := range project.Song.TrackContainer.Tracks {
		track := &project.Song.TrackContainer.Tracks[i]
		if !RecognizedInstrument(track.Name) {
			continue
		}
		notes, err := FlattenTrack(track)
		if err != nil {
			return nil, err
		}
		if len(notes) == 0 {
			continue
		}

		var t smf.Track
		if trackCount == 0 {
			// tempo and time signature meta events on the first track
			microsecondsPerBeat := uint32(60000000 / bpm)
			t.Add(0, smf.Message([]byte{
				0xFF, 0x51, 0x03,
				byte(microsecondsPerBeat >> 16),
				byte(microsecondsPerBeat >> 8),
				byte(microsecondsPerBeat),
			}))
			t.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))
		}

		addTrackEvents(&t, notes)
		t.Close(0)
		if err := s.Add(t); err != nil {
			return nil, fmt.Errorf("failed to add track %q: %w", track.Name, err)
		}
		trackCount++
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// addTrackEvents turns flattened notes into delta-timed on/off events.
func addTrackEvents(t *smf.Track, notes []NoteEvent) {
	type event struct {
		tick int
		key  uint8
		on   bool
	}

	events := make([]event, 0, len(notes)*2)
	for _, n := range notes {
		key := uint8(n.Key() & 0x7F)
		events = append(events, event{tick: n.Position, key: key, on: true})
		events = append(events, event{tick: n.End(), key: key, on: false})
	}

	// note-offs first at equal ticks so repeated pitches retrigger cleanly
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].on && events[j].on
	})

	channel := uint8(0)
	currentTick := 0
	for _, ev := range events {
		delta := uint32(ev.tick - currentTick)
		if ev.on {
			t.Add(delta, midi.NoteOn(channel, ev.key, 100))
		} else {
			t.Add(delta, midi.NoteOff(channel, ev.key))
		}
		currentTick = ev.tick
	}
}
