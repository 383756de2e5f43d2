// Package yaml provides YAML-based symbol index encoding and repository implementations.
package yaml

import (
	"bytes"
	"fmt"

	"github.com/ochairo/symscrape/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlRecord represents the raw YAML structure of one index entry
type yamlRecord struct {
	FullPath string   `yaml:"fullpath"`
	Name     string   `yaml:"name"`
	Symbols  []string `yaml:"symbols"`
}

// IndexCodec converts symbol indices to and from YAML documents.
// Entries are written in index insertion order:
//
//	kernel32.lib:
//	  fullpath: C:\sdk\lib\kernel32.lib
//	  name: kernel32.lib
//	  symbols:
//	    - CreateFileW
type IndexCodec struct{}

// NewIndexCodec creates a new YAML codec
func NewIndexCodec() *IndexCodec {
	return &IndexCodec{}
}

// Encode serializes an index into a YAML mapping keyed by the derived keys
func (c *IndexCodec) Encode(index *entities.SymbolIndex) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, key := range index.Keys() {
		record, _ := index.Get(key)

		var value yaml.Node
		if err := value.Encode(yamlRecord{
			FullPath: record.FullPath,
			Name:     record.BaseName,
			Symbols:  record.Symbols,
		}); err != nil {
			return nil, fmt.Errorf("failed to encode entry %s: %w", key, err)
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to write YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to write YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode parses a YAML index document, preserving entry order
func (c *IndexCodec) Decode(class entities.ArtifactClass, data []byte) (*entities.SymbolIndex, error) {
	index := entities.NewSymbolIndex(class)

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// An empty file is an empty index
	if len(doc.Content) == 0 {
		return index, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("index must be a mapping, got %s", nodeKindName(root.Kind))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var rec yamlRecord
		if err := valueNode.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse entry %s (line %d): %w", keyNode.Value, keyNode.Line, err)
		}
		if rec.FullPath == "" {
			return nil, fmt.Errorf("entry %s has no fullpath", keyNode.Value)
		}

		if !index.Put(keyNode.Value, convertRecord(rec)) {
			return nil, fmt.Errorf("duplicate index key: %s", keyNode.Value)
		}
	}

	return index, nil
}

func convertRecord(yr yamlRecord) *entities.ArtifactRecord {
	return &entities.ArtifactRecord{
		FullPath: yr.FullPath,
		BaseName: yr.Name,
		Symbols:  yr.Symbols,
	}
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "unknown"
	}
}
