package services

import "strings"

// isPublicSymbolsHeader matches lines such as "1234 public symbols"
func isPublicSymbolsHeader(line string) bool {
	parts := strings.Fields(line)
	return len(parts) == 3 && parts[1] == "public" && parts[2] == "symbols"
}

// ParseArchiveSymbols extracts the public symbols listed in an archive's linker members.
// The same symbol listed by several members, or by both linker members, is reported once.
func ParseArchiveSymbols(report string) []string {
	seen := make(map[string]struct{})
	var symbols []string

	scanner := newTableScanner(tableSpec{
		isHeader: isPublicSymbolsHeader,
		gap:      1,
		repeat:   true,
	}, func(row string) {
		sym, ok := lastField(row)
		if !ok {
			return
		}
		if _, dup := seen[sym]; dup {
			return
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	})
	scanner.scan(report)

	return symbols
}
