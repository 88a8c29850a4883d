package mmp

import (
	"testing"
)

const sampleProject = `<?xml version="1.0"?>
<!DOCTYPE multimedia-project>
<multimedia-project version="1.0" creator="LMMS" creatorversion="1.2.2" type="song">
  <head timesig_numerator="4" timesig_denominator="4" bpm="140" masterpitch="0"/>
  <song>
    <trackcontainer type="song" width="600" x="5" y="5">
      <track muted="0" type="0" name="piano">
        <pattern muted="0" steps="16" name="piano" pos="0" type="1">
          <note pan="0" key="60" vol="100" pos="0" len="48"/>
          <note pan="0" key="64" vol="100" pos="48" len="96"/>
        </pattern>
        <pattern muted="0" steps="16" name="piano" pos="384" type="1">
          <note pan="0" key="67" vol="100" pos="0" len="48"/>
        </pattern>
      </track>
      <track muted="0" type="0" name="cello">
        <pattern muted="0" steps="16" name="cello" pos="0" type="1"/>
      </track>
    </trackcontainer>
  </song>
</multimedia-project>`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.Head.BPM != 140 {
		t.Errorf("bpm = %d, want 140", p.Head.BPM)
	}
	num, den := p.TimeSignature()
	if num != 4 || den != 4 {
		t.Errorf("time signature = %d/%d, want 4/4", num, den)
	}

	tracks := p.Song.TrackContainer.Tracks
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	piano := tracks[0]
	if piano.Name != "piano" {
		t.Errorf("track name = %q, want piano", piano.Name)
	}
	if len(piano.Patterns) != 2 {
		t.Fatalf("got %d patterns, want 2", len(piano.Patterns))
	}
	if piano.Patterns[1].Pos != 384 {
		t.Errorf("second pattern pos = %d, want 384", piano.Patterns[1].Pos)
	}
	if piano.NoteCount() != 3 {
		t.Errorf("NoteCount() = %d, want 3", piano.NoteCount())
	}

	n := piano.Patterns[0].Notes[1]
	if n.Key != 64 || n.Pos != 48 || n.Len != 96 {
		t.Errorf("note = %+v, want key 64 pos 48 len 96", n)
	}

	if tracks[1].NoteCount() != 0 {
		t.Errorf("cello NoteCount() = %d, want 0", tracks[1].NoteCount())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not xml at all")); err == nil {
		t.Error("Parse() accepted non-XML input")
	}
}

func TestTimeSignatureDefaults(t *testing.T) {
	p := &Project{}
	num, den := p.TimeSignature()
	if num != 4 || den != 4 {
		t.Errorf("default time signature = %d/%d, want 4/4", num, den)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("does/not/exist.mmp"); err == nil {
		t.Error("ParseFile() succeeded on a missing file")
	}
}
