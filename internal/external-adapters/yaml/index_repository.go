package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

// IndexRepository implements repositories.IndexRepository using YAML files,
// one file per artifact class inside the output directory
type IndexRepository struct {
	outputDir string
	codec     *IndexCodec
}

// NewIndexRepository creates a new YAML-based index repository
func NewIndexRepository(outputDir string) *IndexRepository {
	return &IndexRepository{
		outputDir: outputDir,
		codec:     NewIndexCodec(),
	}
}

// PathFor returns the file an index of class is stored in
func (r *IndexRepository) PathFor(class entities.ArtifactClass) string {
	return filepath.Join(r.outputDir, class.IndexFile)
}

// SaveIndex writes the index, creating the output directory if needed
func (r *IndexRepository) SaveIndex(_ context.Context, index *entities.SymbolIndex) error {
	data, err := r.codec.Encode(index)
	if err != nil {
		return fmt.Errorf("failed to encode %s index: %w", index.Class.Name, err)
	}

	if err := os.MkdirAll(r.outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := r.PathFor(index.Class)
	//nolint:gosec // G306: index files are meant to be read by other build tools
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// LoadIndex reads the index stored for class.
// A missing file yields an error matching fs.ErrNotExist.
func (r *IndexRepository) LoadIndex(_ context.Context, class entities.ArtifactClass) (*entities.SymbolIndex, error) {
	path := r.PathFor(class)

	//nolint:gosec // G304: path is built from the configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", path, err)
	}

	index, err := r.codec.Decode(class, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index %s: %w", path, err)
	}

	return index, nil
}
