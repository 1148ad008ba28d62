package guestlist

import "strings"

// Row maps canonical field keys to trimmed cell values for one data line.
type Row map[string]string

// ParseCSV tokenizes raw CSV text into rows keyed by normalized header
// name. Lines are split on \r\n or \n and blank (or whitespace-only)
// lines are dropped before field splitting. The first surviving line is
// the header. Data rows may carry fewer fields than the header; missing
// trailing fields yield "". A file with no data rows returns nil.
//
// encoding/csv is not a drop-in replacement: it rejects ragged rows,
// keeps whitespace-only lines, and continues quoted fields across
// newlines, all of which would shift row numbering in error messages.
func ParseCSV(text string) []Row {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil
	}

	rawHeader := parseLine(lines[0])
	headers := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		headers[i] = NormalizeColumn(h)
	}

	var rows []Row
	for _, line := range lines[1:] {
		values := parseLine(line)

		empty := true
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = strings.TrimSpace(values[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// parseLine splits one CSV line into fields. A field containing the
// delimiter or a quote must be wrapped in double quotes; a literal quote
// inside a quoted field is written as "".
func parseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	result = append(result, current.String())

	return result
}

// escapeField applies RFC-4180 style escaping: fields containing a
// comma, a quote or a newline are wrapped in double quotes with internal
// quotes doubled. Everything else passes through verbatim.
func escapeField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
