// Package voxfile implements the VOX voice identity container format:
// a ZIP archive holding a JSON manifest plus optional reference audio
// and provider-specific extension blobs.
//
// # Archive Layout
//
//	<name>.vox                 ZIP archive, deflate compression
//	├── manifest.json          required, canonical UTF-8 JSON
//	├── reference/<basename>   optional reference audio clips
//	└── embeddings/<...>       optional provider-specific blobs
//
// # Usage
//
// Read an archive:
//
//	f, err := voxfile.ReadFile("narrator.vox")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Manifest.Voice.Name)
//
// Validate a manifest:
//
//	if err := voxfile.Validate(f.Manifest, voxfile.Permissive); err != nil {
//	    var verrs *voxfile.ValidationErrors
//	    if errors.As(err, &verrs) {
//	        for _, v := range verrs.Violations {
//	            fmt.Println(v.Field, v.Message)
//	        }
//	    }
//	}
//
// # Error Handling
//
// The package defines sentinel errors for structural failures:
//   - ErrInvalidArchive: input is not a readable ZIP container
//   - ErrManifestNotFound: no manifest.json at the archive root
//   - ErrInvalidManifest: manifest.json present but undecodable
//   - ErrWriteFailed: archive construction or integrity check failed
//
// Validator failures are returned as data (*RuleViolation in strict
// mode, *ValidationErrors in permissive mode), never panics.
package voxfile
