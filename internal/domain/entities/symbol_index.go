package entities

// SymbolIndex maps a derived key to exactly one ArtifactRecord.
// Keys are kept in insertion order so serialized indices are reproducible.
type SymbolIndex struct {
	Class   ArtifactClass
	keys    []string
	records map[string]*ArtifactRecord
}

// NewSymbolIndex creates an empty index for one artifact class
func NewSymbolIndex(class ArtifactClass) *SymbolIndex {
	return &SymbolIndex{
		Class:   class,
		records: make(map[string]*ArtifactRecord),
	}
}

// Has reports whether key is already taken
func (i *SymbolIndex) Has(key string) bool {
	_, ok := i.records[key]
	return ok
}

// Get returns the record stored under key
func (i *SymbolIndex) Get(key string) (*ArtifactRecord, bool) {
	r, ok := i.records[key]
	return r, ok
}

// Put stores record under key. Callers must check Has first; an existing key is left untouched.
func (i *SymbolIndex) Put(key string, record *ArtifactRecord) bool {
	if i.Has(key) {
		return false
	}
	i.keys = append(i.keys, key)
	i.records[key] = record
	return true
}

// Keys returns the keys in insertion order
func (i *SymbolIndex) Keys() []string {
	out := make([]string, len(i.keys))
	copy(out, i.keys)
	return out
}

// Len returns the number of records
func (i *SymbolIndex) Len() int {
	return len(i.keys)
}
