package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderKeyValue renders a two-column field/value table.
func renderKeyValue(pairs [][2]string) string {
	tw := newTable()
	for _, p := range pairs {
		tw.AppendRow(table.Row{p[0], text.WrapSoft(p[1], 72)})
	}
	return tw.Render()
}
