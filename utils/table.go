package utils

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes headers and rows as an ASCII table.
func RenderTable(w io.Writer, headers []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Bulk(data)
	table.Render()
}
