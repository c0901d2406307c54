package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown prints markdown on the standard output.
func printMarkdown(md string) { writeMarkdown(stdout, md) }

// writeMarkdown writes markdown to 'w', rendered for the terminal if 'w' is one.
// Otherwise (pipes, files, tests) the markdown is written as is.
func writeMarkdown(w io.Writer, md string) {
	if !isTerminal(w) {
		fmt.Fprintln(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprintln(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}
