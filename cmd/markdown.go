package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	log "github.com/sirupsen/logrus"
)

// printMarkdown renders md for the terminal. When rendering fails the raw
// markdown is printed instead.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	log.Debugf("cannot render markdown: %v", err)
	fmt.Fprint(w, md)
}
