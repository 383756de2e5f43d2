package services

import (
	"github.com/ochairo/symscrape/internal/domain/entities"
	"github.com/ochairo/symscrape/internal/domain/interfaces"
)

// IndexBuilder folds artifact records into one class's SymbolIndex.
//
// The first artifact seen with a given base name keeps the base name as its key.
// A later artifact with the same base name is keyed by its full path instead.
// If the full path is taken as well, the same file was scanned twice and the
// record is dropped.
type IndexBuilder struct {
	index  *entities.SymbolIndex
	logger interfaces.Logger
}

// NewIndexBuilder creates a builder owning an empty index for class
func NewIndexBuilder(class entities.ArtifactClass, logger interfaces.Logger) *IndexBuilder {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &IndexBuilder{
		index:  entities.NewSymbolIndex(class),
		logger: logger,
	}
}

// Insert offers record to the index and reports where it ended up.
// Records without symbols are never inserted.
func (b *IndexBuilder) Insert(record *entities.ArtifactRecord) entities.InsertOutcome {
	if record == nil || len(record.Symbols) == 0 {
		return entities.OutcomeSkipped
	}

	key := record.BaseName
	if !b.index.Has(key) {
		b.index.Put(key, record)
		return entities.OutcomeInserted
	}

	holder, _ := b.index.Get(key)
	b.logger.Warn("duplicate artifact name, keying by full path",
		interfaces.F("class", b.index.Class.Name),
		interfaces.F("artifact", record.FullPath),
		interfaces.F("existing", holder.FullPath),
	)

	key = record.FullPath
	if b.index.Has(key) {
		// TODO: confirm whether a path reached through two search
		// directories should be merged rather than dropped.
		b.logger.Warn("artifact already indexed, dropping",
			interfaces.F("class", b.index.Class.Name),
			interfaces.F("artifact", record.FullPath),
		)
		return entities.OutcomeDropped
	}

	b.index.Put(key, record)
	return entities.OutcomeFallbackUsed
}

// Index returns the index under construction
func (b *IndexBuilder) Index() *entities.SymbolIndex {
	return b.index
}
