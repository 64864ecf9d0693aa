package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/report-repair/internal/animate"
	"github.com/ensigniasec/report-repair/internal/board"
	"github.com/ensigniasec/report-repair/internal/config"
	"github.com/ensigniasec/report-repair/internal/input"
	"github.com/ensigniasec/report-repair/internal/search"
	"github.com/ensigniasec/report-repair/internal/tui"
)

// exitExhausted is the plain-mode exit code when no triple was found.
const exitExhausted = 2

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	verbose    bool
	inputFile  string
	configFile string
	plainMode  bool
	noDelay    bool
	everyStep  bool

	rootCmd = &cobra.Command{
		Use:   "report-repair [--input FILE]",
		Short: "Animated search for the three expense entries that sum to 2020 (Advent of Code 2020, day 1).",
		Long: `Reads whitespace-separated integers from standard input, sorts them, and animates a
triple-index search for three values that sum to 2020. The answer is their product.`,
		Args: cobra.NoArgs,
		Run:  runRoot,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to keep stdout for plain-mode frames.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read values from FILE instead of standard input")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Optional: config file (YAML or TOML) [default ~/.config/report-repair/config.yaml]")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "Print one line per comparison instead of starting the TUI")
	rootCmd.Flags().BoolVar(&noDelay, "no-delay", false, "Plain mode: run frames back to back without waiting")
	rootCmd.Flags().BoolVar(&everyStep, "every-step", false, "Plain mode: also print steps that only move the cursor")

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runRoot(cmd *cobra.Command, _ []string) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if (noDelay || everyStep) && !plainMode {
		logrus.Fatal("--no-delay and --every-step require --plain")
	}
	log := logrus.WithField("run", uuid.NewString())

	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Fatal(err)
	}

	set, err := readInput(cmd.InOrStdin())
	if err != nil {
		logrus.Fatalf("Unable to load puzzle input: %v", err)
	}
	log.Debugf("read %d values", set.Len())

	code, err := runSearch(cmd.OutOrStdout(), log, set, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	if code != 0 {
		os.Exit(code)
	}
}

// runSearch runs the TUI or plain mode until the search ends or a signal
// arrives and returns the process exit code.
func runSearch(w io.Writer, log *logrus.Entry, set input.Set, cfg config.Config) (int, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if !plainMode {
		res, err := tui.Run(ctx, set, cfg)
		if err != nil {
			return 0, fmt.Errorf("TUI mode failed: %w", err)
		}
		if res.Finished {
			fmt.Fprintln(w, res.Outcome)
		}
		return 0, nil
	}

	out, err := runPlain(ctx, w, set, cfg)
	if err != nil {
		return 0, err
	}
	log.WithField("solved", out.Solved).Debug("search finished")
	if !out.Solved {
		return exitExhausted, nil
	}
	return 0, nil
}

func readInput(stdin io.Reader) (input.Set, error) {
	if inputFile == "" {
		return input.Read(stdin)
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return input.Set{}, err
	}
	defer f.Close()
	return input.Read(f)
}

// runPlain drives the search without a terminal UI, one text line per comparison.
func runPlain(ctx context.Context, w io.Writer, set input.Set, cfg config.Config) (search.Outcome, error) {
	d := animate.NewDriver(search.NewMachine(set),
		animate.WithBaseline(cfg.FrameInterval),
		animate.WithDecay(cfg.PaceDecay),
	)
	r := board.NewTextRenderer(w, board.New(set))
	r.Every = everyStep

	var s animate.Scheduler = animate.TimerScheduler{}
	if noDelay {
		s = &animate.ImmediateScheduler{}
	}
	return d.Run(ctx, s, r)
}

func main() {
	Execute()
}
