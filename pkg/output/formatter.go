// Package output provides formatters for displaying system snapshots.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/danpilch/sysnap/pkg/snapshot"
)

// Format represents the output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Unknown is the sentinel rendered for absent values in table mode. JSON
// mode uses null instead.
const Unknown = "N/A"

// Formatter handles snapshot rendering.
type Formatter struct {
	format Format
	writer io.Writer
	color  bool
	full   bool
}

// NewFormatter creates a new formatter.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// SetColor enables ANSI styling in table mode. JSON output is never styled.
func (f *Formatter) SetColor(enabled bool) {
	f.color = enabled
}

// SetFull enables the extended rows in table mode.
func (f *Formatter) SetFull(full bool) {
	f.full = full
}

// Render outputs the snapshot in the configured format.
func (f *Formatter) Render(snap *snapshot.Snapshot) error {
	switch f.format {
	case FormatJSON:
		return f.renderJSON(snap)
	default:
		return f.renderTable(snap)
	}
}

// renderJSON outputs the snapshot as one JSON object. Absent fields are
// null, never omitted and never empty strings.
func (f *Formatter) renderJSON(snap *snapshot.Snapshot) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// row is one labeled line of table output.
type row struct {
	label string
	value string
}

// renderTable outputs labeled lines grouped under CPU, Memory, and System
// headings.
func (f *Formatter) renderTable(snap *snapshot.Snapshot) error {
	headingStyle := lipgloss.NewStyle()
	labelStyle := lipgloss.NewStyle()
	if f.color {
		headingStyle = headingStyle.Bold(true).Foreground(lipgloss.Color("12"))
		labelStyle = labelStyle.Foreground(lipgloss.Color("14"))
	}

	sections := []struct {
		title string
		rows  []row
	}{
		{"CPU", f.cpuRows(snap)},
		{"Memory", f.memoryRows(snap)},
		{"System", f.systemRows(snap)},
	}

	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(f.writer)
		}
		if err := f.renderSection(section.title, section.rows, headingStyle, labelStyle); err != nil {
			return err
		}
	}
	return nil
}

// renderSection prints a heading followed by aligned label/value lines.
func (f *Formatter) renderSection(title string, rows []row, headingStyle, labelStyle lipgloss.Style) error {
	if _, err := fmt.Fprintln(f.writer, headingStyle.Render(title)); err != nil {
		return err
	}

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}

	for _, r := range rows {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, r.label))
		if _, err := fmt.Fprintf(f.writer, "  %s  %s\n", label, r.value); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) cpuRows(snap *snapshot.Snapshot) []row {
	rows := []row{
		{"Brand", strValue(snap.CPUBrand)},
		{"Architecture", strValue(snap.Architecture)},
		{"Physical cores", intValue(snap.PhysicalCores)},
		{"Logical cores", intValue(snap.LogicalCores)},
		{"Frequency (MHz)", freqSummary(snap)},
		{"Usage", percentValue(snap.CPUUsagePercent)},
	}

	if f.full {
		rows = append(rows,
			row{"Frequency min (MHz)", floatValue(snap.FreqMinMHz)},
			row{"Frequency max (MHz)", floatValue(snap.FreqMaxMHz)},
			row{"Features", featureList(snap.CPUFeatures, f.full)},
			row{"Cache", cacheSummary(snap.CPUCache)},
		)
	}
	return rows
}

func (f *Formatter) memoryRows(snap *snapshot.Snapshot) []row {
	rows := []row{
		{"Total", bytesValue(snap.MemTotalBytes)},
		{"Available", bytesValue(snap.MemAvailableBytes)},
	}

	if f.full {
		rows = append(rows,
			row{"Total (bytes)", uintValue(snap.MemTotalBytes)},
			row{"Available (bytes)", uintValue(snap.MemAvailableBytes)},
		)
	}
	return rows
}

func (f *Formatter) systemRows(snap *snapshot.Snapshot) []row {
	rows := []row{
		{"OS", snap.OSName},
		{"OS version", strValue(snap.OSVersion)},
		{"Hostname", snap.Hostname},
		{"Uptime", durationValue(snap.UptimeSeconds)},
	}

	if f.full {
		rows = append(rows, row{"Uptime (seconds)", uintValue(snap.UptimeSeconds)})
	}
	return rows
}
