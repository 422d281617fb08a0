package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/voxformat/vox-go/internal/voicespec"
	"github.com/voxformat/vox-go/pkg/voxfile"
)

// createdFormat is the exact timestamp shape the manifest requires.
const createdFormat = "2006-01-02T15:04:05Z"

var createOpts struct {
	name        string
	description string
	output      string
	language    string
	gender      string
	tags        []string
	from        string
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new .vox file with specified metadata",
	Long: `Create a new .vox file with specified metadata.

The identifier (UUID v4) and creation timestamp are generated
automatically. Voice metadata comes either from flags or from a
declarative YAML/JSON voice spec passed with --from; flags override
spec values.`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createOpts.name, "name", "", "Display name for the voice")
	createCmd.Flags().StringVar(&createOpts.description, "description", "", "Natural language description of the voice (minimum 10 characters)")
	createCmd.Flags().StringVarP(&createOpts.output, "output", "o", "", "Output file path for the .vox file (required)")
	createCmd.Flags().StringVar(&createOpts.language, "language", "", "Primary language as a BCP 47 tag (e.g. en-US)")
	createCmd.Flags().StringVar(&createOpts.gender, "gender", "", "Gender presentation: male, female, non-binary, or neutral")
	createCmd.Flags().StringSliceVar(&createOpts.tags, "tag", nil, "Searchable tag (repeatable)")
	createCmd.Flags().StringVar(&createOpts.from, "from", "", "YAML or JSON voice spec file")
	_ = createCmd.MarkFlagRequired("output")
}

func runCreate(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec()
	if err != nil {
		return err
	}

	if spec.Language != "" {
		if _, err := language.Parse(spec.Language); err != nil {
			return fmt.Errorf("invalid BCP 47 language tag %q: %w", spec.Language, err)
		}
	}

	id := uuid.NewString()
	created := time.Now().UTC().Format(createdFormat)
	manifest := spec.Manifest(cfg.Create.VoxVersion, id, created)

	if err := voxfile.Validate(manifest, voxfile.Permissive); err != nil {
		return err
	}

	if err := voxfile.WriteFile(&voxfile.File{Manifest: manifest}, createOpts.output); err != nil {
		return err
	}

	fmt.Printf("Created: %s\n\n", createOpts.output)
	fmt.Printf("Voice: %s\n", manifest.Voice.Name)
	fmt.Printf("ID: %s\n", id)
	fmt.Printf("Created: %s\n", created)
	return nil
}

// buildSpec merges the --from spec file (if any) with flag overrides.
func buildSpec() (*voicespec.Spec, error) {
	spec := &voicespec.Spec{}

	if createOpts.from != "" {
		loaded, err := voicespec.NewLoader().Load(createOpts.from)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}

	if createOpts.name != "" {
		spec.Name = createOpts.name
	}
	if createOpts.description != "" {
		spec.Description = createOpts.description
	}
	if createOpts.language != "" {
		spec.Language = createOpts.language
	}
	if createOpts.gender != "" {
		spec.Gender = strings.ToLower(createOpts.gender)
	}
	if len(createOpts.tags) > 0 {
		spec.Tags = createOpts.tags
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
