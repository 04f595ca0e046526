package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wwilson/ops-scripts/internal/mmws"
)

// Row is one flattened range keyed by column header.
// A header missing from the map means the source record did not carry the field.
type Row map[string]interface{}

// Flatten projects a range record onto the report columns. Only fields present in
// the record are copied; nothing is defaulted.
func Flatten(r mmws.Range) Row {
	row := make(Row, len(Columns))
	custom, _ := r[KeyCustomProperties].(map[string]interface{})

	for _, c := range Columns {
		src := map[string]interface{}(r)
		if c.Custom {
			src = custom
		}
		if v, ok := src[c.Key]; ok {
			row[c.Header] = v
		}
	}
	return row
}

// Sanitize escapes every string value of the row in place with EscapeText.
func (row Row) Sanitize() Row {
	for k, v := range row {
		if s, ok := v.(string); ok {
			row[k] = EscapeText(s)
		}
	}
	return row
}

// EscapeText keeps printable ASCII and replaces everything else with a backslash
// escape, so that no control or non-ASCII character reaches the spreadsheet writer.
// Backslashes are doubled; tab, newline and carriage return become \t, \n and \r;
// other code points become \xNN, \uNNNN or \UNNNNNNNN.
func EscapeText(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02x`, s[i])
			i++
			continue
		}
		i += size

		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	return b.String()
}
