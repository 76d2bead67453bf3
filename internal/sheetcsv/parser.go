// Package sheetcsv parses the CSV exports a published spreadsheet
// produces. The exports are close to RFC 4180 but not reliably so,
// and a half-broken row must degrade to empty cells rather than fail
// the whole import, so this parser never returns an error.
package sheetcsv

import "strings"

// Row maps header names to cell values for one record.
type Row map[string]string

// Parse reads header-keyed records from raw CSV text. The first
// non-blank line supplies the keys; blank lines anywhere are skipped;
// rows shorter than the header are padded with empty strings.
func Parse(raw string) []Row {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}

	header := splitFields(lines[0])
	for i, h := range header {
		header[i] = cleanCell(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitFields(line)
		row := make(Row, len(header))
		for i, key := range header {
			if i < len(cells) {
				row[key] = cleanCell(cells[i])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitFields splits on commas that are outside quoted sections. A
// section is quoted while an odd number of double-quotes has been
// seen, which also tolerates unbalanced quotes: the remainder of the
// line becomes one field instead of an error.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// cleanCell strips a UTF-8 BOM, trims whitespace, removes one layer
// of wrapping double-quotes, and un-escapes doubled internal quotes.
func cleanCell(cell string) string {
	cell = strings.TrimPrefix(cell, "\uFEFF")
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = cell[1 : len(cell)-1]
	}
	return strings.ReplaceAll(cell, `""`, `"`)
}
