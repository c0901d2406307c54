package cmd

import (
	"context"
	"flag"

	"github.com/etnz/screener"
	"github.com/etnz/screener/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	criteria    screener.Criteria
	output      string
	format      string
	stats       bool
	table       bool
	interactive bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "screen an input file and display the matching records" }
func (*reportCmd) Usage() string {
	return `scr report [-m <min>] [-r <max>] [-o <output>] [-f csv|json] [-s] [-t] [-i] <input>

  Loads the input file, computes the metrics of each record, and displays the
  records meeting the criteria, best valuation score first.

  Rows that cannot be used are skipped with a warning. The command fails only
  if no record at all can be loaded.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	criteriaFlags(f, &c.criteria)
	f.StringVar(&c.output, "o", "", "Export the matching records to this file")
	f.StringVar(&c.format, "f", "", "Export format (csv or json), guessed from the output extension by default")
	f.BoolVar(&c.stats, "s", false, "Display the statistics of all loaded records")
	f.BoolVar(&c.table, "t", false, "Display a concise table instead of the full report")
	f.BoolVar(&c.interactive, "i", false, "Start an interactive shell after the report")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args, ok := inputArg(f, 1)
	if !ok {
		return subcommands.ExitUsageError
	}
	format, err := exportFormat(c.format, c.output)
	if err != nil {
		logger.Error().Err(err).Msg("invalid export format")
		return subcommands.ExitUsageError
	}

	store, err := LoadStore(args[0], c.criteria)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load input")
		return subcommands.ExitFailure
	}

	if c.stats {
		printMarkdown(renderer.StatisticsMarkdown(store.Statistics()))
	}

	report := store.Report()
	if c.table {
		printMarkdown(renderer.TableMarkdown(report))
	} else {
		printMarkdown(renderer.ReportMarkdown(report))
	}

	// the analysis is complete, a failed export is reported but is not fatal.
	if c.output != "" {
		export(c.output, format, report.Records)
	}

	if c.interactive {
		if err := newShell(store, stdin, stdout).Run(ctx); err != nil {
			logger.Error().Err(err).Msg("interactive shell")
		}
	}
	return subcommands.ExitSuccess
}

// exportFormat returns the format named 'name', or guessed from 'output' if name is empty.
func exportFormat(name, output string) (screener.Format, error) {
	if name == "" {
		return screener.FormatOf(output), nil
	}
	return screener.ParseFormat(name)
}

// export saves 'records' and reports the outcome, it returns false on failure.
func export(path string, format screener.Format, records []screener.Record) bool {
	if err := screener.SaveFile(path, format, records); err != nil {
		logger.Error().Err(err).Msg("export failed")
		return false
	}
	logger.Info().Str("output", path).Str("format", format.String()).Int("records", len(records)).Msg("report exported")
	return true
}
