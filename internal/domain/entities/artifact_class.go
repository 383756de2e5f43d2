package entities

import "fmt"

// InspectMode selects which report the inspection tool produces
type InspectMode string

const (
	// InspectSymbols requests the COFF symbol table of an object file
	InspectSymbols InspectMode = "symbols"
	// InspectLinkerMember requests the linker member listing of an archive
	InspectLinkerMember InspectMode = "linker-member"
	// InspectExports requests the export table of a dynamic library
	InspectExports InspectMode = "exports"
)

// SearchPathSet names the environment search path an artifact class is found on
type SearchPathSet string

const (
	// LibraryPaths is the platform library search path (LIB)
	LibraryPaths SearchPathSet = "library"
	// ExecutablePaths is the platform executable search path (PATH)
	ExecutablePaths SearchPathSet = "executable"
)

// ArtifactClass describes one kind of native build artifact
type ArtifactClass struct {
	Name      string
	Token     string // CLI mode token: "obj", "lib", "dll"
	Patterns  []string
	Mode      InspectMode
	IndexFile string
	PathSet   SearchPathSet
}

// Artifact classes, one index per class
var (
	ObjectClass = ArtifactClass{
		Name:      "object",
		Token:     "obj",
		Patterns:  []string{"*.obj", "*.o"},
		Mode:      InspectSymbols,
		IndexFile: "symbols_obj.yaml",
		PathSet:   LibraryPaths,
	}

	ArchiveClass = ArtifactClass{
		Name:      "archive",
		Token:     "lib",
		Patterns:  []string{"*.lib"},
		Mode:      InspectLinkerMember,
		IndexFile: "symbols_lib.yaml",
		PathSet:   LibraryPaths,
	}

	DynamicLibraryClass = ArtifactClass{
		Name:      "dynamic-library",
		Token:     "dll",
		Patterns:  []string{"*.dll"},
		Mode:      InspectExports,
		IndexFile: "symbols_dll.yaml",
		PathSet:   ExecutablePaths,
	}
)

// AllClasses returns every artifact class in default run order
func AllClasses() []ArtifactClass {
	return []ArtifactClass{DynamicLibraryClass, ArchiveClass, ObjectClass}
}

// ClassByToken resolves a CLI mode token to its artifact class
func ClassByToken(token string) (ArtifactClass, error) {
	for _, c := range AllClasses() {
		if c.Token == token {
			return c, nil
		}
	}
	return ArtifactClass{}, fmt.Errorf("unknown artifact class: %s", token)
}
