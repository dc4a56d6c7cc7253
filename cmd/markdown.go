package cmd

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
)

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is printed instead, it is still readable.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

// listTable builds a one-table markdown document, the common shape of the
// list subcommands.
func listTable(title string, header []string, rows [][]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("Nothing here yet.")
	} else {
		doc.Table(md.TableSet{Header: header, Rows: rows})
	}
	doc.Build()
	return buf.String()
}
