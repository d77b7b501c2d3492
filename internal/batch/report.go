package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report prints a human-readable summary of results to w.
func Report(w io.Writer, results []Result) error {
	p := message.NewPrinter(language.English)
	for _, res := range results {
		var err error
		switch {
		case res.Skipped:
			_, err = p.Fprintf(w, "- Skipped %s (not found)\n", filepath.Base(res.Job.Source))
		case res.Err != nil:
			_, err = p.Fprintf(w, "✗ Failed %s: %v\n", filepath.Base(res.Job.Source), res.Err)
		default:
			_, err = p.Fprintf(w, "✓ Converted %s -> %s\n  Size: %d bytes\n  Duration: %ss\n",
				filepath.Base(res.Job.Source),
				filepath.Base(res.Job.Dest),
				res.Info.Bytes,
				fmt.Sprintf("%.1f", res.Info.Duration),
			)
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
