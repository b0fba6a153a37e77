package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/filebridge/backend/internal/infrastructure/logging"
	"github.com/filebridge/backend/internal/rpc"
)

func newTestProvider() *Provider {
	return NewProvider(&logging.Logger{Logger: zap.NewNop()})
}

func pathParams(t *testing.T, path string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"path": path})
	require.NoError(t, err)
	return raw
}

func failureCode(t *testing.T, err error) int {
	t.Helper()
	var f *rpc.Failure
	require.ErrorAs(t, err, &f)
	return f.Code()
}

func TestWriteThenRead(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "note.txt")
	content := "hello, world\nline two"

	raw, err := json.Marshal(map[string]string{"path": path, "content": content})
	require.NoError(t, err)

	result, err := p.WriteFile(raw)
	require.NoError(t, err)
	assert.Equal(t, true, result)

	got, err := p.ReadFile(pathParams(t, path))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteTruncatesExisting(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0o644))

	raw, err := json.Marshal(map[string]string{"path": path, "content": "short"})
	require.NoError(t, err)
	_, err = p.WriteFile(raw)
	require.NoError(t, err)

	got, err := p.ReadFile(pathParams(t, path))
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestReadEmptyFile(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := p.ReadFile(pathParams(t, path))
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadFileNotFound(t *testing.T) {
	p := newTestProvider()

	_, err := p.ReadFile(pathParams(t, filepath.Join(t.TempDir(), "missing.txt")))
	assert.Equal(t, rpc.CodeFileNotFound, failureCode(t, err))
	assert.Equal(t, "File not found", err.Error())
}

func TestReadFileInvalidUTF8(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))

	_, err := p.ReadFile(pathParams(t, path))
	assert.Equal(t, rpc.CodeIOError, failureCode(t, err))
}

func TestMissingPathParam(t *testing.T) {
	p := newTestProvider()

	for name, handler := range map[string]rpc.Handler{
		"readFile":  p.ReadFile,
		"writeFile": p.WriteFile,
		"listFiles": p.ListFiles,
	} {
		_, err := handler(json.RawMessage(`{}`))
		assert.Equal(t, rpc.CodeInvalidParams, failureCode(t, err), name)
	}
}

func TestWrongParamType(t *testing.T) {
	p := newTestProvider()

	_, err := p.ReadFile(json.RawMessage(`{"path":42}`))
	assert.Equal(t, rpc.CodeInvalidParams, failureCode(t, err))

	_, err = p.ReadFile(json.RawMessage(`[1,2]`))
	assert.Equal(t, rpc.CodeInvalidParams, failureCode(t, err))
}

func TestWriteMissingContent(t *testing.T) {
	p := newTestProvider()

	_, err := p.WriteFile(pathParams(t, filepath.Join(t.TempDir(), "x.txt")))
	assert.Equal(t, rpc.CodeInvalidParams, failureCode(t, err))
}

func TestWriteEmptyContent(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "empty.txt")

	raw, err := json.Marshal(map[string]string{"path": path, "content": ""})
	require.NoError(t, err)

	result, err := p.WriteFile(raw)
	require.NoError(t, err)
	assert.Equal(t, true, result)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestListFilesOrdering(t *testing.T) {
	p := newTestProvider()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("data"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c"), 0o755))

	result, err := p.ListFiles(pathParams(t, dir))
	require.NoError(t, err)

	entries, ok := result.([]Entry)
	require.True(t, ok)
	require.Len(t, entries, 3)

	// Directories precede files; each group is alphabetical.
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, entryDirectory, entries[0].Type)
	assert.Nil(t, entries[0].Size)

	assert.Equal(t, "c", entries[1].Name)
	assert.Equal(t, entryDirectory, entries[1].Type)

	assert.Equal(t, "b.txt", entries[2].Name)
	assert.Equal(t, entryFile, entries[2].Type)
	require.NotNil(t, entries[2].Size)
	assert.Equal(t, int64(4), *entries[2].Size)
}

func TestListFilesManyEntries(t *testing.T) {
	p := newTestProvider()
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		require.NoError(t, os.Mkdir(filepath.Join(dir, fmt.Sprintf("dir%d", i)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%d.txt", i)), []byte("x"), 0o644))
	}

	result, err := p.ListFiles(pathParams(t, dir))
	require.NoError(t, err)

	entries := result.([]Entry)
	require.Len(t, entries, 10)
	for i, e := range entries {
		if i < 5 {
			assert.Equal(t, entryDirectory, e.Type)
		} else {
			assert.Equal(t, entryFile, e.Type)
		}
		if i > 0 && entries[i-1].Type == e.Type {
			assert.Less(t, entries[i-1].Name, e.Name)
		}
	}
}

func TestListFilesEmptyDirectory(t *testing.T) {
	p := newTestProvider()

	result, err := p.ListFiles(pathParams(t, t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, result.([]Entry))
}

func TestListFilesMissingDirectory(t *testing.T) {
	p := newTestProvider()

	_, err := p.ListFiles(pathParams(t, filepath.Join(t.TempDir(), "nope")))
	assert.Equal(t, rpc.CodeDirectoryError, failureCode(t, err))
	assert.Equal(t, "Directory does not exist", err.Error())
}

func TestListFilesOnRegularFile(t *testing.T) {
	p := newTestProvider()
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := p.ListFiles(pathParams(t, path))
	code := failureCode(t, err)
	assert.Equal(t, rpc.CodeDirectoryError, code)
	assert.NotEqual(t, rpc.CodeFileNotFound, code)
	assert.Equal(t, "Path is not a directory", err.Error())
}

func TestEntrySerialization(t *testing.T) {
	size := int64(12)
	data, err := json.Marshal([]Entry{
		{Name: "docs", Type: entryDirectory},
		{Name: "a.txt", Type: entryFile, Size: &size},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"docs","type":"directory"},{"name":"a.txt","type":"file","size":12}]`, string(data))
}
