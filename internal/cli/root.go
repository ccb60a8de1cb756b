package cli

import (
	"fmt"
	"log"
	"os"

	"GradeBook/internal/book"
	"GradeBook/internal/config"
	"GradeBook/internal/console"
	"GradeBook/internal/notifier"
	"GradeBook/internal/recorder"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	configPath string
	bookName   string
)

var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "Record grades and report their statistics",
	Long: `gradebook reads grades from standard input, one per line, until 'q' is entered.

Each grade must be a number between 0 and 100. When input ends the lowest,
highest and average grade are printed along with the letter grade.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gradebook %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&bookName, "name", "", "name of the grade book (overrides book.name)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the config path, loads it and applies flag overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if bookName != "" {
		cfg.Book.Name = bookName
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// openRecorder falls back to a no-op recorder when SQLite is not configured or cannot be opened.
func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rec := openRecorder(cfg)
	defer rec.Close()

	out := cmd.OutOrStdout()
	b := book.New(cfg.Book.Name)
	if cfg.Announce() {
		b.Subscribe(notifier.NewConsoleNotifier(out).OnGradeAdded)
	}
	b.Subscribe(recorder.GradeHandler(rec))

	session := &console.Session{
		Book:      b,
		In:        cmd.InOrStdin(),
		Out:       out,
		Prompt:    cfg.Console.Prompt,
		Separator: cfg.Console.Separator,
	}
	if err := session.Run(); err != nil {
		return err
	}

	return printReport(cmd, cfg.Book.Category, b, rec)
}
