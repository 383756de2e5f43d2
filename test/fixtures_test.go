package test_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// echoTool is a stand-in for dumpbin that prints the artifact file itself,
// so each fixture artifact carries the report it should produce.
// Shell builtins only: the CLI tests run with PATH pointing at fixture directories.
const echoTool = `#!/bin/sh
while IFS= read -r line || [ -n "$line" ]; do
  printf '%s\n' "$line"
done < "$2"
`

const kernelExports = `Dump of file kernel.dll

    ordinal hint RVA      name

          1    0 00001000 OpenThing
          2    1          CloseThing (forwarded to NTDLL.RtlCloseThing)
          3      00001040 [NONAME]

  Summary
`

const ordinalOnlyExports = `    ordinal hint RVA      name

          1      00001000 [NONAME]

  Summary
`

const utilArchive = `Archive member name at 8: /

       3 public symbols

      1B0 util_open
      1B0 util_close
      2D4 ?util_reset@@YAXXZ

Archive member name at 9A: /

       3 public symbols

      1B0 util_open
      1B0 util_close
      2D4 ?util_reset@@YAXXZ

`

const mainObject = `COFF SYMBOL TABLE
000 01047A2B ABS    notype       Static       | @comp.id
001 00000000 SECT1  notype       Static       | .drectve
008 00000000 SECT3  notype ()    External     | main
009 00000000 UNDEF  notype ()    External     | util_open

String Table Size = 0x0 bytes
`

// fixtureTree lays out a LIB directory and a PATH directory with one artifact of each class
type fixtureTree struct {
	Tool   string
	LibDir string
	BinDir string
	OutDir string
}

func newFixtureTree(t *testing.T) fixtureTree {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture inspection tool is a POSIX shell script")
	}

	root := t.TempDir()
	tree := fixtureTree{
		Tool:   filepath.Join(root, "tools", "fake-dumpbin"),
		LibDir: filepath.Join(root, "sdk", "lib"),
		BinDir: filepath.Join(root, "bin"),
		OutDir: filepath.Join(root, "index"),
	}

	writeFixture(t, tree.Tool, echoTool, 0700)
	writeFixture(t, filepath.Join(tree.BinDir, "kernel.dll"), kernelExports, 0600)
	writeFixture(t, filepath.Join(tree.BinDir, "ordinals.dll"), ordinalOnlyExports, 0600)
	writeFixture(t, filepath.Join(tree.LibDir, "util.lib"), utilArchive, 0600)
	writeFixture(t, filepath.Join(tree.LibDir, "main.obj"), mainObject, 0600)
	writeFixture(t, filepath.Join(tree.LibDir, "README.txt"), "not an artifact\n", 0600)

	return tree
}

func writeFixture(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("Failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
}
