package yaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/symscrape/internal/domain/entities"
)

func sampleIndex() *entities.SymbolIndex {
	index := entities.NewSymbolIndex(entities.ArchiveClass)
	index.Put("zlib.lib", entities.NewArtifactRecord("C:/vcpkg/lib/zlib.lib", []string{"deflate", "inflate"}))
	index.Put("C:/sdk/lib/zlib.lib", entities.NewArtifactRecord("C:/sdk/lib/zlib.lib", []string{"?compress@@YAHXZ", "- dash", "@feat"}))
	index.Put("alpha.lib", entities.NewArtifactRecord("C:/sdk/lib/alpha.lib", []string{"alpha"}))
	return index
}

func TestIndexCodec_EncodeLayout(t *testing.T) {
	codec := NewIndexCodec()

	data, err := codec.Encode(sampleIndex())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "zlib.lib:\n"), "first key leads the document:\n%s", out)
	assert.Contains(t, out, "  fullpath: C:/vcpkg/lib/zlib.lib\n")
	assert.Contains(t, out, "  name: zlib.lib\n")
	assert.Contains(t, out, "  symbols:\n")

	// insertion order, not sorted order
	zlib := strings.Index(out, "zlib.lib:")
	alpha := strings.Index(out, "alpha.lib:")
	assert.Less(t, zlib, alpha)
}

func TestIndexCodec_RoundTrip(t *testing.T) {
	codec := NewIndexCodec()
	original := sampleIndex()

	data, err := codec.Encode(original)
	require.NoError(t, err)

	decoded, err := codec.Decode(entities.ArchiveClass, data)
	require.NoError(t, err)

	assert.Equal(t, original.Keys(), decoded.Keys())
	for _, key := range original.Keys() {
		want, _ := original.Get(key)
		got, ok := decoded.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestIndexCodec_EmptyIndex(t *testing.T) {
	codec := NewIndexCodec()

	data, err := codec.Encode(entities.NewSymbolIndex(entities.ObjectClass))
	require.NoError(t, err)

	decoded, err := codec.Decode(entities.ObjectClass, data)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Len())
}

func TestIndexCodec_Decode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
		wantLen int
	}{
		{
			name:    "empty file",
			data:    "",
			wantLen: 0,
		},
		{
			name: "hand written",
			data: `foo.dll:
  fullpath: C:/bin/foo.dll
  name: foo.dll
  symbols:
  - FooInit
  - FooExit
`,
			wantLen: 1,
		},
		{
			name:    "not a mapping",
			data:    "- a\n- b\n",
			wantErr: "index must be a mapping, got sequence",
		},
		{
			name:    "invalid yaml",
			data:    "foo: [broken\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "entry without fullpath",
			data:    "foo.dll:\n  name: foo.dll\n",
			wantErr: "entry foo.dll has no fullpath",
		},
		{
			name:    "entry is not a record",
			data:    "foo.dll: [1, 2]\n",
			wantErr: "failed to parse entry foo.dll",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := NewIndexCodec().Decode(entities.DynamicLibraryClass, []byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, index.Len())
		})
	}
}
