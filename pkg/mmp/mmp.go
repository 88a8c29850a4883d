// Package mmp reads LMMS project files (.mmp), the XML piano-roll format
// produced by the LMMS song editor.
package mmp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

// Project is the root of an LMMS project file.
type Project struct {
	XMLName xml.Name `xml:"multimedia-project"`
	Version string   `xml:"version,attr"`
	Type    string   `xml:"type,attr"`
	Head    Head     `xml:"head"`
	Song    Song     `xml:"song"`
}

// Head carries piece-level settings from the top of the project file.
type Head struct {
	TimeSigNumerator   int `xml:"timesig_numerator,attr"`
	TimeSigDenominator int `xml:"timesig_denominator,attr"`
	BPM                int `xml:"bpm,attr"`
	MasterPitch        int `xml:"masterpitch,attr"`
}

// Song holds the track container.
type Song struct {
	TrackContainer TrackContainer `xml:"trackcontainer"`
}

// TrackContainer holds the instrument tracks.
type TrackContainer struct {
	Tracks []Track `xml:"track"`
}

// Track is one instrument track. Its notes live in pattern chunks, each
// chunk positioned somewhere along the song timeline.
type Track struct {
	Name     string    `xml:"name,attr"`
	Type     int       `xml:"type,attr"`
	Muted    int       `xml:"muted,attr"`
	Patterns []Pattern `xml:"pattern"`
}

// Pattern is a contiguous chunk of notes. Note positions inside a pattern
// are relative to the pattern's own position.
type Pattern struct {
	Name  string `xml:"name,attr"`
	Pos   int    `xml:"pos,attr"`
	Notes []Note `xml:"note"`
}

// Note is a single piano-roll note record.
type Note struct {
	Key int `xml:"key,attr"`
	Pos int `xml:"pos,attr"`
	Len int `xml:"len,attr"`
	Vol int `xml:"vol,attr"`
	Pan int `xml:"pan,attr"`
}

// Parse parses raw .mmp data into a Project.
func Parse(data []byte) (*Project, error) {
	var p Project
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse mmp: %w", err)
	}
	return &p, nil
}

// ParseFile reads and parses a .mmp file from disk.
func ParseFile(filename string) (*Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read mmp file: %w", err)
	}
	return Parse(data)
}

// TimeSignature returns the piece-level time signature as numerator and
// denominator. LMMS defaults to 4/4 when the head carries no values.
func (p *Project) TimeSignature() (int, int) {
	num, den := p.Head.TimeSigNumerator, p.Head.TimeSigDenominator
	if num == 0 {
		num = 4
	}
	if den == 0 {
		den = 4
	}
	return num, den
}

// NoteCount returns the total number of notes across all patterns.
func (t *Track) NoteCount() int {
	n := 0
	for _, pat := range t.Patterns {
		n += len(pat.Notes)
	}
	return n
}
