// Package musicxml models a MusicXML 3.1 partwise score as an explicit
// document tree. Components build immutable subtrees (parts, measures,
// notes) and the serializer writes the assembled score once.
package musicxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

// Header is the fixed file prefix required by MusicXML consumers. The
// DOCTYPE identifiers must match exactly or importers like MuseScore will
// reject the file.
const Header = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">
`

// ScorePartwise is the document root: the declared part list followed by
// one body per declared part, in the same order.
type ScorePartwise struct {
	XMLName       xml.Name `xml:"score-partwise"`
	MovementTitle string   `xml:"movement-title,omitempty"`
	PartList      PartList `xml:"part-list"`
	Parts         []Part   `xml:"part"`
}

// PartList declares the instruments in score order.
type PartList struct {
	ScoreParts []ScorePart `xml:"score-part"`
}

// ScorePart declares one instrument: its part id and display name.
type ScorePart struct {
	ID       string `xml:"id,attr"`
	PartName string `xml:"part-name"`
}

// Part is the body of one instrument: an ordered sequence of measures.
type Part struct {
	ID       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

// Measure holds the notation items of one measure. The first measure of a
// part carries the attribute block (divisions, key, time, clef).
type Measure struct {
	Number     int         `xml:"number,attr"`
	Attributes *Attributes `xml:"attributes,omitempty"`
	Notes      []Note      `xml:"note"`
}

// Attributes is the first-measure attribute block.
type Attributes struct {
	Divisions int  `xml:"divisions"`
	Key       Key  `xml:"key"`
	Time      Time `xml:"time"`
	Clef      Clef `xml:"clef"`
}

// Key holds the key signature (fifths only; mode is left implicit).
type Key struct {
	Fifths int `xml:"fifths"`
}

// Time holds the time signature.
type Time struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

// Clef holds a clef sign and staff line.
type Clef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

// Note is a single notation item: either a pitched note (Pitch set) or a
// rest (Rest set). Chord marks a note sounding together with the previous
// non-chord note. Field order matters: MusicXML requires chord before
// pitch, and duration before type.
type Note struct {
	Chord    *Empty `xml:"chord,omitempty"`
	Pitch    *Pitch `xml:"pitch,omitempty"`
	Rest     *Rest  `xml:"rest,omitempty"`
	Duration int    `xml:"duration"`
	Type     string `xml:"type,omitempty"`
}

// Empty marks an empty element such as <chord/>.
type Empty struct{}

// Rest marks a rest. Measure is "yes" for a full-measure rest.
type Rest struct {
	Measure string `xml:"measure,attr,omitempty"`
}

// Pitch holds step, optional alteration and octave, in schema order.
type Pitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter,omitempty"`
	Octave int    `xml:"octave"`
}

// Serialize pretty-prints the score with the fixed MusicXML header.
func (s *ScorePartwise) Serialize() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize score: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile serializes the score and writes it to disk.
func (s *ScorePartwise) WriteFile(filename string) error {
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// NumMeasures returns the measure count of the part.
func (p *Part) NumMeasures() int {
	return len(p.Measures)
}
