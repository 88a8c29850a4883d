// Package main is the entry point for the mmp2musicxml CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Demez/mmp-to-MusicXML/pkg/api"
	"github.com/Demez/mmp-to-MusicXML/pkg/converter"
	"github.com/Demez/mmp-to-MusicXML/pkg/mmp"
	"github.com/Demez/mmp-to-MusicXML/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	scoreTitle string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mmp2musicxml",
	Short: "Convert LMMS projects to MusicXML scores",
	Long: `mmp2musicxml converts LMMS .mmp project files into MusicXML 3.1
partwise scores that notation software like MuseScore can open, and into
standard MIDI files.

Tracks are picked up by name from a fixed instrument list; anything else
is skipped. Timing is assumed to be 4/4 with notes on multiples of the
64th-note grid.

Examples:
  mmp2musicxml convert song.mmp -o song.xml
  mmp2musicxml mmp2xml song.mmp -o song.xml --title "My Piece"
  mmp2musicxml mmp2midi song.mmp
  mmp2musicxml tracks song.mmp
  mmp2musicxml tui
  mmp2musicxml serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.mmp>",
	Short: "Convert to the format implied by the output extension",
	Long:  `Converts an .mmp project to MusicXML or MIDI depending on the output file's extension.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var mmp2xmlCmd = &cobra.Command{
	Use:   "mmp2xml <input.mmp>",
	Short: "Convert an LMMS project to MusicXML",
	Args:  cobra.ExactArgs(1),
	RunE:  runMMPToXML,
}

var mmp2midiCmd = &cobra.Command{
	Use:   "mmp2midi <input.mmp>",
	Short: "Convert an LMMS project to a standard MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMMPToMIDI,
}

var tracksCmd = &cobra.Command{
	Use:   "tracks <input.mmp>",
	Short: "List the tracks of a project and whether they will convert",
	Args:  cobra.ExactArgs(1),
	RunE:  runTracks,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scoreTitle, "title", "t", "", "Score title (movement-title)")

	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (required)")
	_ = convertCmd.MarkFlagRequired("output")

	mmp2xmlCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .xml file path")
	mmp2midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mmp2xmlCmd)
	rootCmd.AddCommand(mmp2midiCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func newConverter() *converter.Converter {
	conv := converter.New()
	if scoreTitle != "" {
		conv.Title = scoreTitle
	}
	return conv
}

func getOutputPath(input, defaultExt string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + defaultExt
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	fmt.Printf("Converting %s -> %s\n", input, outputFile)
	result, err := newConverter().ConvertFile(input, outputFile)
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)
	fmt.Println("Conversion complete!")
	return nil
}

func runMMPToXML(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".xml")

	result, err := newConverter().ConvertFile(input, output)
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	fmt.Printf("Converted %s -> %s\n", input, output)
	return nil
}

func runMMPToMIDI(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := getOutputPath(input, ".mid")

	result, err := newConverter().ConvertFile(input, output)
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	fmt.Printf("Converted %s -> %s\n", input, output)
	return nil
}

func runTracks(cmd *cobra.Command, args []string) error {
	project, err := mmp.ParseFile(args[0])
	if err != nil {
		return err
	}

	num, den := project.TimeSignature()
	fmt.Printf("%d bpm, %d/%d\n", project.Head.BPM, num, den)

	for _, track := range project.Song.TrackContainer.Tracks {
		status := "skipped (unrecognized name)"
		if converter.RecognizedInstrument(track.Name) {
			if track.NoteCount() == 0 {
				status = "skipped (no notes)"
			} else {
				clef := "treble"
				if converter.IsBassInstrument(track.Name) {
					clef = "bass"
				}
				status = fmt.Sprintf("%d notes, %s clef", track.NoteCount(), clef)
			}
		}
		fmt.Printf("  %-20s %s\n", track.Name, status)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
