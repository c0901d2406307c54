package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/screener"
	"github.com/etnz/screener/docs"
	"github.com/etnz/screener/renderer"
	"github.com/google/subcommands"
)

type shellCmd struct {
	criteria screener.Criteria
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "explore an input file interactively" }
func (*shellCmd) Usage() string {
	return `scr shell [-m <min>] [-r <max>] <input>

  Loads the input file and reads commands from the standard input until
  'quit', 'exit' or end of input. Type 'help' for the list of commands.

`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	criteriaFlags(f, &c.criteria)
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args, ok := inputArg(f, 1)
	if !ok {
		return subcommands.ExitUsageError
	}
	store, err := LoadStore(args[0], c.criteria)
	if err != nil {
		logger.Error().Err(err).Msg("cannot load input")
		return subcommands.ExitFailure
	}
	if err := newShell(store, stdin, stdout).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("interactive shell")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const prompt = "scr> "

// shell is a read-eval loop over a loaded store.
type shell struct {
	store *screener.Store
	in    *bufio.Scanner
	out   io.Writer
}

func newShell(store *screener.Store, in io.Reader, out io.Writer) *shell {
	return &shell{store: store, in: bufio.NewScanner(in), out: out}
}

// Run reads and executes commands until quit, end of input, or 'ctx' is done.
func (s *shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "%d records loaded. Type 'help' for the list of commands.\n", s.store.Len())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.exec(line); quit {
			return nil
		}
	}
}

// readLine returns the next trimmed input line, or false at end of input.
func (s *shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// exec runs a single command line, it returns true if the shell must stop.
func (s *shell) exec(line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(name) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		s.help()
	case "list":
		writeMarkdown(s.out, renderer.ReportMarkdown(s.store.Report()))
	case "filter":
		s.filter()
	case "show_all":
		writeMarkdown(s.out, renderer.ListingMarkdown(s.store.Ranked()))
	case "stats":
		writeMarkdown(s.out, renderer.StatisticsMarkdown(s.store.Statistics()))
	case "export":
		s.export()
	case "query":
		s.query(strings.TrimSpace(arg))
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for the list of commands.\n", name)
	}
	return false
}

func (s *shell) help() {
	doc, err := docs.GetTopic("shell")
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	writeMarkdown(s.out, doc)
}

// filter asks for criteria and shows the matching records.
func (s *shell) filter() {
	c := s.store.Criteria()
	minValuation := s.promptFloat("Minimum valuation score", c.MinValuation)
	maxRisk := s.promptFloat("Maximum risk score", c.MaxRisk)
	report := s.store.Report(screener.WithMinValuation(minValuation), screener.WithMaxRisk(maxRisk))
	writeMarkdown(s.out, renderer.ReportMarkdown(report))
}

// promptFloat asks for a number, returning 'def' if the answer is empty or invalid.
func (s *shell) promptFloat(label string, def float64) float64 {
	fmt.Fprintf(s.out, "%s [%.2f]: ", label, def)
	answer, ok := s.readLine()
	if !ok || answer == "" {
		return def
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid number %q, using %.2f.\n", answer, def)
		return def
	}
	return v
}

// export asks for a file name and writes the records meeting the default criteria.
func (s *shell) export() {
	fmt.Fprint(s.out, "Output file: ")
	path, ok := s.readLine()
	if !ok || path == "" {
		fmt.Fprintln(s.out, "Export cancelled.")
		return
	}
	records := s.store.Filter()
	if err := screener.SaveFile(path, screener.FormatOf(path), records); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Report exported to %s (%d records).\n", path, len(records))
}

func (s *shell) query(expr string) {
	if expr == "" {
		fmt.Fprintln(s.out, "Usage: query <jsonpath>")
		return
	}
	if err := printQuery(s.out, s.store.Records(), expr); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
