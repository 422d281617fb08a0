package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxformat/vox-go/internal/utils"
	"github.com/voxformat/vox-go/pkg/voxfile"
)

var extractOutputDir string

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract the contents of a .vox archive",
	Long: `Extract the contents of a .vox archive to a directory.

Unpacks all files (manifest.json, reference audio, embeddings) and
prints the manifest in its canonical encoding.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractOutputDir, "output-dir", "", "Output directory (defaults to FILE_extracted/)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	file := args[0]

	outputDir := extractOutputDir
	if outputDir == "" {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputDir = base + "_extracted"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	zr, err := zip.OpenReader(file)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", voxfile.ErrInvalidArchive, file, err)
	}
	defer zr.Close()

	fmt.Printf("Extracting: %s\n", filepath.Base(file))
	fmt.Printf("Destination: %s/\n\n", outputDir)

	bar := utils.NewProgressBar(len(zr.File), utils.DescExtracting)
	count := 0
	for _, entry := range zr.File {
		if err := extractEntry(entry, outputDir); err != nil {
			return err
		}
		count++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf("\n\nExtracted %d file(s)\n", count)

	manifestPath := filepath.Join(outputDir, "manifest.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		log.Warn().Msg("manifest.json not found in archive")
		return nil
	}

	m, err := voxfile.DecodeManifest(data)
	if err != nil {
		return err
	}
	canonical, err := m.Encode()
	if err != nil {
		return err
	}

	fmt.Println("\nManifest Contents")
	fmt.Println()
	fmt.Println(string(canonical))
	return nil
}

func extractEntry(entry *zip.File, outputDir string) error {
	// Reject entries that would escape the output directory.
	if !filepath.IsLocal(filepath.FromSlash(entry.Name)) {
		return fmt.Errorf("archive entry %q has an unsafe path", entry.Name)
	}
	target := filepath.Join(outputDir, filepath.FromSlash(entry.Name))

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
