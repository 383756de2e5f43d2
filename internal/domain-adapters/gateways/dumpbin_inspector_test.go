package gateways

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

// fakeTool writes an executable shell script standing in for dumpbin
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake inspection tool is a POSIX shell script")
	}
	path := filepath.Join(t.TempDir(), "fake-dumpbin")
	//nolint:gosec // G306: script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700))
	return path
}

func TestDumpbinInspector_PassesModeFlag(t *testing.T) {
	tool := fakeTool(t, `echo "flag=$1"; echo "path=$2"`)
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{Tool: tool}, nil)

	tests := []struct {
		mode entities.InspectMode
		flag string
	}{
		{entities.InspectSymbols, "/SYMBOLS"},
		{entities.InspectLinkerMember, "/LINKERMEMBER"},
		{entities.InspectExports, "/EXPORTS"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			report, err := inspector.Inspect(context.Background(), "C:/sdk/lib/thing.lib", tt.mode)
			require.NoError(t, err)
			assert.Equal(t, "flag="+tt.flag+"\npath=C:/sdk/lib/thing.lib\n", report.Stdout)
			assert.Empty(t, report.Stderr)
		})
	}
}

func TestDumpbinInspector_StderrIsNotAnError(t *testing.T) {
	tool := fakeTool(t, `echo "ordinal hint RVA name"; echo "LNK1104: cannot open file" >&2; exit 1`)
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{Tool: tool}, nil)

	report, err := inspector.Inspect(context.Background(), "x.dll", entities.InspectExports)

	require.NoError(t, err)
	assert.Equal(t, "ordinal hint RVA name\n", report.Stdout)
	assert.Equal(t, "LNK1104: cannot open file\n", report.Stderr)
}

func TestDumpbinInspector_MissingTool(t *testing.T) {
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{
		Tool: filepath.Join(t.TempDir(), "does-not-exist"),
	}, nil)

	_, err := inspector.Inspect(context.Background(), "x.obj", entities.InspectSymbols)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
}

func TestDumpbinInspector_UnsupportedMode(t *testing.T) {
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{}, nil)

	_, err := inspector.Inspect(context.Background(), "x.obj", entities.InspectMode("headers"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported inspect mode")
}

func TestDumpbinInspector_Timeout(t *testing.T) {
	tool := fakeTool(t, `exec sleep 5`)
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{
		Tool:    tool,
		Timeout: 100 * time.Millisecond,
	}, nil)

	_, err := inspector.Inspect(context.Background(), "slow.lib", entities.InspectLinkerMember)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestNewDumpbinInspector_DefaultTool(t *testing.T) {
	inspector := NewDumpbinInspector(DumpbinInspectorConfig{}, nil)

	assert.Equal(t, DefaultInspectTool, inspector.tool)
	assert.Zero(t, inspector.timeout)
}
