// Package cmd implements the CLI application to screen companies.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/screener"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "screening")
	c.Register(&statsCmd{}, "screening")
	c.Register(&exportCmd{}, "screening")
	c.Register(&queryCmd{}, "screening")
	c.Register(&shellCmd{}, "screening")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose = flag.Bool("v", false, "verbose logging")
	envFile = flag.String("env-file", ".env", "Path to an optional dotenv file with default settings")
)

var (
	config = DefaultConfig()
	logger = zerolog.Nop()

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Init loads the configuration and sets up logging. It must be called after
// the global flags have been parsed, and before executing a subcommand.
func Init() error {
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load %q: %w", *envFile, err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config = cfg

	level := cfg.Level()
	if *Verbose {
		level = zerolog.DebugLevel
	}
	logger = NewLogger(stderr, level)
	return nil
}

// LoadStore loads the input file at 'path' into a new store screening with 'c'.
//
// Skipped rows are logged as warnings.
func LoadStore(path string, c screener.Criteria) (*screener.Store, error) {
	store := screener.NewStore(c)
	n, err := store.LoadFile(path)
	for _, w := range store.Warnings() {
		logger.Warn().Int("line", w.Line).Str("name", w.Name).Str("reason", w.Err.Error()).Msg("skipping row")
	}
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("input", path).Int("records", n).Int("skipped", len(store.Warnings())).Msg("loaded")
	return store, nil
}

// criteriaFlags registers the -m and -r flags shared by screening subcommands.
func criteriaFlags(f *flag.FlagSet, c *screener.Criteria) {
	*c = config.Criteria()
	f.Float64Var(&c.MinValuation, "m", c.MinValuation, "Minimum valuation score")
	f.Float64Var(&c.MaxRisk, "r", c.MaxRisk, "Maximum risk score")
}

// inputArg returns the single input file argument, or false after printing the usage.
func inputArg(f *flag.FlagSet, want int) ([]string, bool) {
	if f.NArg() != want {
		fmt.Fprintf(stderr, "Error: expected %d argument(s), got %d\n", want, f.NArg())
		f.Usage()
		return nil, false
	}
	return f.Args(), true
}
