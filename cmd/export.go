package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/screener"
	"github.com/google/subcommands"
)

type exportCmd struct {
	criteria screener.Criteria
	output   string
	format   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the records meeting the criteria" }
func (*exportCmd) Usage() string {
	return `scr export [-m <min>] [-r <max>] [-f csv|json] -o <output> <input>

  Writes the records meeting the criteria, best valuation score first, with
  their roi and valuatie_index. Numbers are written with two decimals.

  Use "-o -" to write on the standard output.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	criteriaFlags(f, &c.criteria)
	f.StringVar(&c.output, "o", "", "Output file (required)")
	f.StringVar(&c.format, "f", "", "Export format (csv or json), guessed from the output extension by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args, ok := inputArg(f, 1)
	if !ok {
		return subcommands.ExitUsageError
	}
	if c.output == "" {
		fmt.Fprintln(stderr, "Error: missing output file (-o)")
		f.Usage()
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
	records := store.Filter()

	if c.output == "-" {
		if err := screener.Encode(stdout, format, records); err != nil {
			logger.Error().Err(err).Msg("export failed")
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if !export(c.output, format, records) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
