package services

import "strings"

// NoNameMarker is printed in place of a name for ordinal-only exports
const NoNameMarker = "[NONAME]"

func isExportTableHeader(line string) bool {
	parts := strings.Fields(line)
	return len(parts) == 4 &&
		parts[0] == "ordinal" &&
		parts[1] == "hint" &&
		parts[2] == "RVA" &&
		parts[3] == "name"
}

// ParseExportSymbols extracts the named exports from a dynamic library export table.
// Only the first table is read.
func ParseExportSymbols(report string) []string {
	var symbols []string

	scanner := newTableScanner(tableSpec{
		isHeader: isExportTableHeader,
		gap:      1,
	}, func(row string) {
		sym, ok := exportRowName(row)
		if !ok || sym == NoNameMarker {
			return
		}
		symbols = append(symbols, sym)
	})
	scanner.scan(report)

	return symbols
}

// exportRowName returns the symbol name of one export table row.
// Rows such as "1 0 00001000 Func (forwarded to other.dll.Func)" carry the
// name in front of the parenthesized annotation.
func exportRowName(row string) (string, bool) {
	if strings.HasSuffix(row, ")") {
		open := strings.Index(row, "(")
		if open == -1 {
			return "", false
		}
		return lastField(row[:open])
	}
	return lastField(row)
}
