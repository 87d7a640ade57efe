package export

import "strings"

// MarshalCSV serializes uniform records as comma-separated values: a header
// row, then one record per line. Every field is double-quoted and embedded
// quotes are doubled, so values containing commas, quotes, or newlines
// round-trip through any standard CSV reader. Nil-to-empty conversion is the
// caller's concern; empty strings serialize as "".
func MarshalCSV(headers []string, rows [][]string) []byte {
	var b strings.Builder

	writeRecord(&b, headers)
	for _, row := range rows {
		writeRecord(&b, row)
	}

	return []byte(b.String())
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
