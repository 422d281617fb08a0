package utils

import "github.com/schollz/progressbar/v3"

// Standard progress bar descriptions
const (
	DescExtracting = "Extracting"
	DescIndexing   = "Indexing"
)

// NewProgressBar creates a consistently styled progress bar.
//
// For unknown totals (total < 0) it renders as a spinner; for known
// totals it shows the count and iterations/second.
//
// Example:
//
//	bar := utils.NewProgressBar(len(entries), utils.DescExtracting)
//	defer bar.Finish()
//
//	for _, entry := range entries {
//	    // Process entry
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
