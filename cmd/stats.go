package cmd

import (
	"context"
	"flag"

	"github.com/etnz/screener/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display statistics of all records of an input file" }
func (*statsCmd) Usage() string {
	return `scr stats <input>

  Displays the average, maximum and minimum of the return, the valuation score,
  and the risk score of all loaded records. No criteria applies.

`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (*statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args, ok := inputArg(f, 1)
	if !ok {
		return subcommands.ExitUsageError
	}
	store, err := LoadStore(args[0], config.Criteria())
	if err != nil {
		logger.Error().Err(err).Msg("cannot load input")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatisticsMarkdown(store.Statistics()))
	return subcommands.ExitSuccess
}
