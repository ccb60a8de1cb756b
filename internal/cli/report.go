package cli

import (
	"errors"
	"fmt"
	"log"
	"time"

	"GradeBook/internal/book"
	"GradeBook/internal/notifier"
	"GradeBook/internal/recorder"

	"github.com/spf13/cobra"
)

// printReport writes the statistics of b to the command output and records a summary.
// A failed summary write is logged, not returned: the report has already been shown.
func printReport(cmd *cobra.Command, category string, b *book.GradeBook, rec recorder.Recorder) error {
	summary := &recorder.SessionSummary{
		Book:     b.Name(),
		Category: category,
		EndedAt:  time.Now(),
	}

	var report string
	st, err := b.Statistics()
	switch {
	case errors.Is(err, book.ErrEmptyBook):
		summary.Empty = true
		report = notifier.FormatEmptyReport(category, b.Name())
	case err != nil:
		return fmt.Errorf("compute statistics: %w", err)
	default:
		summary.Stats = st
		report = notifier.FormatReport(category, b.Name(), st)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := rec.RecordSummary(summary); err != nil {
		log.Printf("[WARN] record session summary: %v", err)
	}
	return nil
}
