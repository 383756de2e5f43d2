package orchestrators

import "github.com/ochairo/symscrape/internal/domain/entities"

// ProgressReporter provides callbacks for reporting indexing progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnDiscoveryComplete is called once the artifacts of a class are enumerated.
	OnDiscoveryComplete(class entities.ArtifactClass, total int)

	// OnArtifactProcessed is called after each artifact is inspected and indexed.
	OnArtifactProcessed(path string)

	// OnComplete is called when a class's index is built.
	OnComplete(result *IndexResult)
}

// NoOpProgressReporter is a progress reporter that does nothing.
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryComplete(entities.ArtifactClass, int) {}
func (n *NoOpProgressReporter) OnArtifactProcessed(string)                      {}
func (n *NoOpProgressReporter) OnComplete(*IndexResult)                         {}
