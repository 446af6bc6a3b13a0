package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "json" and "csv".
// Any unrecognized format returns FormatTable as the default.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	default:
		return FormatTable
	}
}

// Formatter handles writing assignment results in a specific format.
//
// Fields:
//   - format: The output format (table, json, or csv)
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A formatter ready to write results
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// Write renders an assignment result in the formatter's format.
//
// Parameters:
//   - result: The assignment result to render
//
// Returns:
//   - error: Error if writing fails
func (f *Formatter) Write(result *AssignResult) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(result)
	case FormatCSV:
		return f.writeCSV(result)
	default:
		return f.writeTable(result)
	}
}

// writeJSON renders the result as indented JSON.
//
// The groups object is keyed by group name and preserves declaration order
// via an ordered map, so downstream consumers see groups exactly as
// configured. The ungrouped list follows under its own key.
//
// Parameters:
//   - result: The assignment result to render
//
// Returns:
//   - error: Error if encoding or writing fails
func (f *Formatter) writeJSON(result *AssignResult) error {
	groups := orderedmap.New()
	for _, group := range result.Groups {
		groups.Set(group.Name, group)
	}

	doc := orderedmap.New()
	doc.Set("groups", groups)
	doc.Set("ungrouped", result.Ungrouped)

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// writeCSV renders the result as CSV rows.
//
// Each row holds group, name, version, and type columns; ungrouped
// dependencies use an empty group column.
//
// Parameters:
//   - result: The assignment result to render
//
// Returns:
//   - error: Error if writing fails
func (f *Formatter) writeCSV(result *AssignResult) error {
	w := csv.NewWriter(f.writer)

	if err := w.Write([]string{"group", "name", "version", "type"}); err != nil {
		return err
	}
	for _, group := range result.Groups {
		for _, entry := range group.Dependencies {
			if err := w.Write([]string{group.Name, entry.Name, entry.Version, entry.Type}); err != nil {
				return err
			}
		}
	}
	for _, entry := range result.Ungrouped {
		if err := w.Write([]string{"", entry.Name, entry.Version, entry.Type}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// writeTable renders the result as aligned terminal tables.
//
// Groups are printed in declaration order, each with its own section; the
// ungrouped section follows when non-empty. Empty groups render a "(no
// dependencies match)" marker instead of a table.
//
// Parameters:
//   - result: The assignment result to render
//
// Returns:
//   - error: Error if writing fails
func (f *Formatter) writeTable(result *AssignResult) error {
	for i, group := range result.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil {
				return err
			}
		}

		header := fmt.Sprintf("Group %s (%s)", group.Name, strings.Join(group.Patterns, ", "))
		if _, err := fmt.Fprintln(f.writer, header); err != nil {
			return err
		}

		if len(group.Dependencies) == 0 {
			if _, err := fmt.Fprintln(f.writer, "  (no dependencies match)"); err != nil {
				return err
			}
			continue
		}

		if err := writeDependencyTable(f.writer, group.Dependencies); err != nil {
			return err
		}
	}

	if len(result.Ungrouped) > 0 {
		if len(result.Groups) > 0 {
			if _, err := fmt.Fprintln(f.writer); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(f.writer, "Ungrouped"); err != nil {
			return err
		}
		if err := writeDependencyTable(f.writer, result.Ungrouped); err != nil {
			return err
		}
	}

	return nil
}

// writeDependencyTable renders one dependency list as an aligned table.
//
// The VERSION and TYPE columns are hidden when no entry carries a value for
// them, keeping name-only sources compact.
//
// Parameters:
//   - w: Destination writer
//   - entries: Dependency entries to render
//
// Returns:
//   - error: Error if writing fails
func writeDependencyTable(w io.Writer, entries []DependencyEntry) error {
	hasVersion := false
	hasType := false
	for _, entry := range entries {
		if entry.Version != "" {
			hasVersion = true
		}
		if entry.Type != "" {
			hasType = true
		}
	}

	table := NewTable().
		AddColumn("NAME").
		AddConditionalColumn("VERSION", hasVersion).
		AddConditionalColumn("TYPE", hasType)

	for _, entry := range entries {
		table.UpdateWidths(entry.Name, entry.Version, entry.Type)
	}

	if _, err := fmt.Fprintf(w, "  %s\n", table.HeaderRow()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s\n", table.SeparatorRow()); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "  %s\n", table.FormatRow(entry.Name, entry.Version, entry.Type)); err != nil {
			return err
		}
	}
	return nil
}
