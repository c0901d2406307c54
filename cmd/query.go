package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/etnz/screener"
	"github.com/google/subcommands"
)

type queryCmd struct {
	ranked bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the records" }
func (*queryCmd) Usage() string {
	return `scr query [-ranked] <input> <jsonpath>

  Evaluates a JSONPath expression against the loaded records, seen as a JSON
  array of objects, and prints the result as JSON.

Usage Examples:
# Names of all records in the Tech sector.
$ scr query stocks.csv '$[?(@.sector == "Tech")].bedrijf'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ranked, "ranked", false, "order records by valuation score instead of input order")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args, ok := inputArg(f, 2)
	if !ok {
		return subcommands.ExitUsageError
	}
	store, err := LoadStore(args[0], config.Criteria())
	if err != nil {
		logger.Error().Err(err).Msg("cannot load input")
		return subcommands.ExitFailure
	}
	records := store.Records()
	if c.ranked {
		records = store.Ranked()
	}
	if err := printQuery(stdout, records, args[1]); err != nil {
		logger.Error().Err(err).Msg("query failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printQuery evaluates 'expr' against 'records' and prints the indented JSON result.
func printQuery(w io.Writer, records []screener.Record, expr string) error {
	v, err := screener.Query(records, expr)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
