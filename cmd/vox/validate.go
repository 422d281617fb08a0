package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxformat/vox-go/pkg/voxfile"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a .vox file against the VOX format rules",
	Long: `Validate a .vox file against the VOX format rules.

By default every rule is checked and all violations are reported
together. With --strict, validation stops at the first violated rule.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Stop at the first violated rule")
}

func runValidate(cmd *cobra.Command, args []string) error {
	file := args[0]

	f, err := voxfile.ReadFile(file)
	if err != nil {
		return err
	}

	mode := voxfile.Permissive
	modeName := "permissive (default)"
	if validateStrict {
		mode = voxfile.Strict
		modeName = "strict"
	}

	err = voxfile.Validate(f.Manifest, mode)
	if err == nil {
		fmt.Printf("PASS: %s\n\n", file)
		fmt.Printf("Validation mode: %s\n", modeName)
		fmt.Printf("Voice: %s\n", f.Manifest.Voice.Name)
		fmt.Printf("Version: %s\n", f.Manifest.VoxVersion)
		return nil
	}

	fmt.Printf("FAIL: %s\n\n", file)

	var verrs *voxfile.ValidationErrors
	var v *voxfile.RuleViolation
	switch {
	case errors.As(err, &verrs):
		fmt.Printf("Found %d validation error(s):\n", len(verrs.Violations))
		for _, violation := range verrs.Violations {
			fmt.Printf("  - %s: %s\n", violation.Field, violation.Message)
		}
	case errors.As(err, &v):
		fmt.Println("Found 1 validation error:")
		fmt.Printf("  - %s: %s\n", v.Field, v.Message)
	default:
		return err
	}

	return fmt.Errorf("validation failed for %s", file)
}
