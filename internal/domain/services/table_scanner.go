package services

import "strings"

// scanState is the position of a tableScanner within a report
type scanState int

const (
	stateSeekingHeader scanState = iota
	stateSkippingGap
	stateInTable
	stateDone
)

func (s scanState) String() string {
	switch s {
	case stateSeekingHeader:
		return "seeking-header"
	case stateSkippingGap:
		return "skipping-gap"
	case stateInTable:
		return "in-table"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// tableSpec describes how a table is laid out in an inspector report
type tableSpec struct {
	// isHeader is called with a trimmed line
	isHeader func(line string) bool
	// gap is the number of lines between the header and the first row
	gap int
	// repeat returns to header seeking after a table ends instead of stopping
	repeat bool
}

// tableScanner walks report lines and hands every table row to onRow.
// A blank line ends a table; rows are passed trimmed.
type tableScanner struct {
	spec    tableSpec
	onRow   func(row string)
	state   scanState
	skipped int
	tables  int
}

func newTableScanner(spec tableSpec, onRow func(row string)) *tableScanner {
	return &tableScanner{spec: spec, onRow: onRow, state: stateSeekingHeader}
}

// step advances the state machine by one line
func (s *tableScanner) step(line string) {
	line = strings.TrimSpace(line)

	switch s.state {
	case stateSeekingHeader:
		if !s.spec.isHeader(line) {
			return
		}
		s.tables++
		s.skipped = 0
		if s.spec.gap > 0 {
			s.state = stateSkippingGap
		} else {
			s.state = stateInTable
		}

	case stateSkippingGap:
		s.skipped++
		if s.skipped >= s.spec.gap {
			s.state = stateInTable
		}

	case stateInTable:
		if line == "" {
			if s.spec.repeat {
				s.state = stateSeekingHeader
			} else {
				s.state = stateDone
			}
			return
		}
		s.onRow(line)

	case stateDone:
	}
}

// scan feeds the whole report through the state machine and returns the final state.
// Ending in stateInTable means the report stopped before the table's terminating blank line.
func (s *tableScanner) scan(report string) scanState {
	for _, line := range splitReportLines(report) {
		if s.state == stateDone {
			break
		}
		s.step(line)
	}
	return s.state
}

// splitReportLines normalizes line endings and splits a report into lines
func splitReportLines(report string) []string {
	report = strings.ToValidUTF8(report, "�")
	report = strings.ReplaceAll(report, "\n\r", "\n")
	report = strings.ReplaceAll(report, "\r", "")
	return strings.Split(report, "\n")
}

// lastField returns the last whitespace-delimited token of s
func lastField(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}
