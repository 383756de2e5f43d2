package services

import (
	"strings"
	"testing"
)

// FuzzReportParsers feeds arbitrary text to every report parser
// to detect panics on malformed inspector output.
//
// Run with: go test -fuzz=FuzzReportParsers -fuzztime=30s
func FuzzReportParsers(f *testing.F) {
	f.Add("COFF SYMBOL TABLE\n000 0 SECT1 notype External | sym\n\n")
	f.Add("COFF SYMBOL TABLE\n|\n||\n")
	f.Add("3 public symbols\n\n 1B0 a\n 1B0 b\n\n")
	f.Add("3 public symbols")
	f.Add("ordinal hint RVA name\n\n1 0 00001000 (x)\n2 0 ()\n)\n\n")
	f.Add("ordinal hint RVA name\r\n\r\n1 0 00001000 [NONAME]\r\n")
	f.Add("\xff\xfe\x00garbage")

	f.Fuzz(func(t *testing.T, report string) {
		for _, symbols := range [][]string{
			ParseObjectSymbols(report),
			ParseArchiveSymbols(report),
			ParseExportSymbols(report),
		} {
			for _, sym := range symbols {
				if sym == "" {
					t.Fatalf("empty symbol name from report %q", report)
				}
				if strings.ContainsAny(sym, " \t\n") {
					t.Fatalf("symbol %q contains whitespace", sym)
				}
			}
		}

		for _, sym := range ParseExportSymbols(report) {
			if sym == NoNameMarker {
				t.Fatalf("no-name marker leaked into exports")
			}
		}
	})
}
