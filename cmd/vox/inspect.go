package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/voxformat/vox-go/pkg/voxfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Display detailed information about a .vox file",
	Long: `Display detailed information about a .vox file.

Shows all metadata fields including voice identity, prosody preferences,
character context, reference audio files, and extension namespaces.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	file := args[0]

	f, err := voxfile.ReadFile(file)
	if err != nil {
		return err
	}
	m := f.Manifest

	fmt.Printf("VOX File: %s\n\n", filepath.Base(file))

	fmt.Println("Core Metadata")
	fmt.Printf("  VOX Version: %s\n", m.VoxVersion)
	fmt.Printf("  ID: %s\n", m.ID)
	fmt.Printf("  Created: %s\n", m.Created)
	fmt.Println()

	fmt.Println("Voice Identity")
	fmt.Printf("  Name: %s\n", m.Voice.Name)
	fmt.Printf("  Description: %s\n", m.Voice.Description)
	if m.Voice.Language != nil {
		fmt.Printf("  Language: %s\n", *m.Voice.Language)
	}
	if m.Voice.Gender != nil {
		fmt.Printf("  Gender: %s\n", *m.Voice.Gender)
	}
	if len(m.Voice.AgeRange) == 2 {
		fmt.Printf("  Age Range: %d-%d\n", m.Voice.AgeRange[0], m.Voice.AgeRange[1])
	}
	if len(m.Voice.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(m.Voice.Tags, ", "))
	}
	fmt.Println()

	printProsody(m.Prosody)
	printReferenceAudio(m.ReferenceAudio)
	printCharacter(m.Character)
	printProvenance(m.Provenance)
	printExtensions(m.Extensions, f.ExtensionFiles)

	return nil
}

func printProsody(p *voxfile.Prosody) {
	if p == nil {
		return
	}
	fmt.Println("Prosody")
	printOptional("  Pitch Base", p.PitchBase)
	printOptional("  Pitch Range", p.PitchRange)
	printOptional("  Rate", p.Rate)
	printOptional("  Energy", p.Energy)
	printOptional("  Default Emotion", p.EmotionDefault)
	fmt.Println()
}

func printReferenceAudio(entries []voxfile.ReferenceAudio) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("Reference Audio (%d file(s))\n", len(entries))

	rows := make([][]string, 0, len(entries))
	for i, audio := range entries {
		duration := ""
		if audio.DurationSeconds != nil {
			duration = fmt.Sprintf("%.1fs", *audio.DurationSeconds)
		}
		language := ""
		if audio.Language != nil {
			language = *audio.Language
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			audio.File,
			language,
			duration,
			truncate(audio.Transcript, 60),
		})
	}
	fmt.Println(renderTable(
		[]string{"#", "File", "Language", "Duration", "Transcript"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	))
	fmt.Println()
}

func printCharacter(c *voxfile.Character) {
	if c == nil {
		return
	}
	fmt.Println("Character Context")
	printOptional("  Role", c.Role)
	if len(c.EmotionalRange) > 0 {
		fmt.Printf("  Emotional Range: %s\n", strings.Join(c.EmotionalRange, ", "))
	}
	if len(c.Relationships) > 0 {
		fmt.Println("  Relationships:")
		names := make([]string, 0, len(c.Relationships))
		for name := range c.Relationships {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    - %s: %s\n", name, c.Relationships[name])
		}
	}
	if c.Source != nil {
		fmt.Println("  Source:")
		printOptional("    Work", c.Source.Work)
		printOptional("    Format", c.Source.Format)
		printOptional("    File", c.Source.File)
	}
	fmt.Println()
}

func printProvenance(p *voxfile.Provenance) {
	if p == nil {
		return
	}
	fmt.Println("Provenance")
	printOptional("  Method", p.Method)
	printOptional("  Engine", p.Engine)
	printOptional("  Consent", p.Consent)
	printOptional("  License", p.License)
	printOptional("  Notes", p.Notes)
	fmt.Println()
}

func printExtensions(extensions map[string]any, files map[string][]byte) {
	if len(extensions) > 0 {
		fmt.Printf("Extensions (%d namespace(s))\n", len(extensions))
		namespaces := make([]string, 0, len(extensions))
		for ns := range extensions {
			namespaces = append(namespaces, ns)
		}
		sort.Strings(namespaces)
		for _, ns := range namespaces {
			fmt.Printf("  - %s\n", ns)
		}
		fmt.Println()
	}
	if len(files) > 0 {
		fmt.Printf("Extension Files (%d)\n", len(files))
		paths := make([]string, 0, len(files))
		for p := range files {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			fmt.Printf("  - %s (%d bytes)\n", p, len(files[p]))
		}
		fmt.Println()
	}
}

func printOptional(label string, value *string) {
	if value != nil {
		fmt.Printf("%s: %s\n", label, *value)
	}
}

// truncate shortens s to max characters, counting runes so multi-byte
// text is never cut mid-sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
