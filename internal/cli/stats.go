package cli

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"GradeBook/internal/book"
	"GradeBook/internal/console"
	"GradeBook/internal/recorder"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats GRADE...",
	Short: "Print statistics for grades given as arguments",
	Long: `Add every argument to a fresh grade book and print its statistics.

Arguments are numbers between 0 and 100 or single letters. A, B and C count
as 90, 80 and 70; any other letter counts as 0.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		b := book.New(cfg.Book.Name)
		for _, arg := range args {
			if err := addArg(b, arg); err != nil {
				return fmt.Errorf("argument %q: %w", arg, err)
			}
		}
		return printReport(cmd, cfg.Book.Category, b, recorder.NewNoopRecorder())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// addArg adds a single command-line grade, numeric or letter.
func addArg(b *book.GradeBook, arg string) error {
	if r, size := utf8.DecodeRuneInString(arg); size == len(arg) && unicode.IsLetter(r) {
		return b.AddLetterGrade(r)
	}
	v, err := console.ParseGrade(arg)
	if err != nil {
		return err
	}
	return b.AddGrade(v)
}
