package entities

// InsertOutcome reports what happened to a record offered to an index
type InsertOutcome int

const (
	// OutcomeInserted means the record was stored under its base name
	OutcomeInserted InsertOutcome = iota
	// OutcomeFallbackUsed means the base name was taken and the full path became the key
	OutcomeFallbackUsed
	// OutcomeDropped means both the base name and the full path were taken
	OutcomeDropped
	// OutcomeSkipped means the record had no symbols and was never considered
	OutcomeSkipped
)

func (o InsertOutcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeFallbackUsed:
		return "fallback-used"
	case OutcomeDropped:
		return "dropped"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SymbolMatch locates one artifact that defines a looked-up symbol
type SymbolMatch struct {
	Symbol   string
	Class    string
	Key      string
	FullPath string
}
