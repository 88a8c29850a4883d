package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Demez/mmp-to-MusicXML/pkg/mmp"
	"github.com/Demez/mmp-to-MusicXML/pkg/musicxml"
)

// Format represents a file format
type Format string

const (
	FormatMMP      Format = "mmp"
	FormatMusicXML Format = "musicxml"
	FormatMIDI     Format = "midi"
	FormatUnknown  Format = "unknown"
)

// DetectFormat detects the format of a file based on its extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mmp":
		return FormatMMP
	case ".xml", ".musicxml":
		return FormatMusicXML
	case ".mid", ".midi":
		return FormatMIDI
	default:
		return FormatUnknown
	}
}

// Converter converts LMMS projects into notation and MIDI output
type Converter struct {
	// Title becomes the movement-title of the generated score.
	Title string
}

// New creates a new Converter with the default score title
func New() *Converter {
	return &Converter{Title: "title of piece goes here"}
}

// Convert builds a MusicXML score from a parsed LMMS project. It returns
// the score plus any warnings (the conversion is best-effort: a non-4/4
// time signature is warned about and processed as 4/4 anyway).
func (c *Converter) Convert(project *mmp.Project) (*musicxml.ScorePartwise, []string, error) {
	var warnings []string
	if num, den := project.TimeSignature(); num != 4 || den != 4 {
		warnings = append(warnings,
			fmt.Sprintf("time signature is %d/%d, not 4/4; output may not come out well", num, den))
	}

	type layoutPart struct {
		decl     musicxml.ScorePart
		measures []musicxml.Measure
		final    int
	}
	var parts []layoutPart

	counter := 1
	for i := range project.Song.TrackContainer.Tracks {
		track := &project.Song.TrackContainer.Tracks[i]
		if !RecognizedInstrument(track.Name) {
			continue
		}
		id := fmt.Sprintf("P%d", counter)
		counter++

		notes, err := FlattenTrack(track)
		if err != nil {
			return nil, warnings, err
		}
		if len(notes) == 0 {
			// the id is consumed but the part is excised entirely:
			// importers reject declared parts with empty bodies
			continue
		}

		table := BuildLengthTable(notes)
		measures, final := LayoutPart(notes, table, clefFor(track.Name))
		parts = append(parts, layoutPart{
			decl:     musicxml.ScorePart{ID: id, PartName: track.Name},
			measures: measures,
			final:    final,
		})
	}

	// all parts must span the same number of measures
	highest := 0
	for _, p := range parts {
		if p.final > highest {
			highest = p.final
		}
	}

	score := &musicxml.ScorePartwise{MovementTitle: c.Title}
	for _, p := range parts {
		for m := p.final + 1; m <= highest; m++ {
			p.measures = append(p.measures, wholeRestMeasure(m))
		}
		score.PartList.ScoreParts = append(score.PartList.ScoreParts, p.decl)
		score.Parts = append(score.Parts, musicxml.Part{ID: p.decl.ID, Measures: p.measures})
	}
	return score, warnings, nil
}

// MMPToXML converts raw .mmp data to serialized MusicXML
func (c *Converter) MMPToXML(data []byte) (*ConversionResult, error) {
	project, err := mmp.Parse(data)
	if err != nil {
		return nil, err
	}
	score, warnings, err := c.Convert(project)
	if err != nil {
		return nil, err
	}
	out, err := score.Serialize()
	if err != nil {
		return nil, err
	}
	return &ConversionResult{Data: out, Format: string(FormatMusicXML), Warnings: warnings}, nil
}

// MMPToMIDI converts raw .mmp data to a standard MIDI file
func (c *Converter) MMPToMIDI(data []byte) (*ConversionResult, error) {
	project, err := mmp.Parse(data)
	if err != nil {
		return nil, err
	}
	out, err := GenerateMIDI(project)
	if err != nil {
		return nil, err
	}
	return &ConversionResult{Data: out, Format: string(FormatMIDI)}, nil
}

// ConvertFile converts an input file to the format implied by the output
// file's extension and writes the result.
func (c *Converter) ConvertFile(inputPath, outputPath string) (*ConversionResult, error) {
	if DetectFormat(inputPath) != FormatMMP {
		return nil, fmt.Errorf("unsupported input format: %s", inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var result *ConversionResult
	switch DetectFormat(outputPath) {
	case FormatMusicXML:
		result, err = c.MMPToXML(data)
	case FormatMIDI:
		result, err = c.MMPToMIDI(data)
	default:
		return nil, errors.New("cannot determine output format from filename")
	}
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}
	result.Filename = outputPath
	return result, nil
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"mmp -> musicxml",
		"mmp -> midi",
	}
}
