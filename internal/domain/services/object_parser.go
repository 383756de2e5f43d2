package services

import "strings"

const coffSymbolTableHeader = "COFF SYMBOL TABLE"

// DefaultObjectExclusions are table and section names that appear in a COFF
// symbol table but are not symbols a linker resolves against
var DefaultObjectExclusions = map[string]struct{}{
	"@comp.id": {},
	"@feat.00": {},
	"@vol.md":  {},
	".pdata":   {},
	".data":    {},
	".xdata":   {},
	".chks64":  {},
	".drectve": {},
	".bss":     {},
}

var objectExcludedPrefixes = []string{".text$", ".debug$"}

// ParseObjectSymbols extracts defined symbol names from a COFF symbol table report.
// Only the first table is read; a report without one yields nil.
func ParseObjectSymbols(report string) []string {
	return parseObjectSymbols(report, DefaultObjectExclusions)
}

func parseObjectSymbols(report string, exclude map[string]struct{}) []string {
	var symbols []string

	scanner := newTableScanner(tableSpec{
		isHeader: func(line string) bool { return line == coffSymbolTableHeader },
	}, func(row string) {
		parts := strings.Split(row, "|")
		if len(parts) < 2 {
			return
		}
		fields := strings.Fields(parts[1])
		if len(fields) == 0 {
			return
		}
		sym := fields[0]
		if isExcludedObjectSymbol(sym, exclude) {
			return
		}
		symbols = append(symbols, sym)
	})
	scanner.scan(report)

	return symbols
}

func isExcludedObjectSymbol(sym string, exclude map[string]struct{}) bool {
	for _, prefix := range objectExcludedPrefixes {
		if strings.HasPrefix(sym, prefix) {
			return true
		}
	}
	_, excluded := exclude[sym]
	return excluded
}
