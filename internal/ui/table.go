package ui

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table renders rows under header as a borderless, left-aligned table.
func Table(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetCenterSeparator("-")
	table.SetRowSeparator("-")
	table.AppendBulk(rows)
	table.Render()
}

// Table renders through the printer's output.
func (p *Printer) Table(header []string, rows [][]string) { Table(p.w, header, rows) }
