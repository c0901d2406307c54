package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

const sample = `bedrijf;sector;koers;winst_per_aandeel;dividend;groei_percentage;risico
Acme;Tech;50;4;1;8;2
Globex;Energy;100;5;0;10;1
Initech;Tech;20;1;0.5;4;3
`

// console captures the standard streams of the application.
type console struct {
	out, err bytes.Buffer
}

// newConsole redirects the application streams for the duration of the test,
// 'input' being the standard input.
func newConsole(t *testing.T, input string) *console {
	t.Helper()
	c := &console{}
	oldIn, oldOut, oldErr, oldLogger, oldConfig := stdin, stdout, stderr, logger, config
	t.Cleanup(func() {
		stdin, stdout, stderr, logger, config = oldIn, oldOut, oldErr, oldLogger, oldConfig
	})
	stdin = strings.NewReader(input)
	stdout = &c.out
	stderr = &c.err
	logger = NewLogger(stderr, zerolog.DebugLevel)
	config = DefaultConfig()
	return c
}

// writeInput writes 'content' to a file in a temporary directory and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}

// run parses 'args' for 'cmd' the way the commander does, and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}
