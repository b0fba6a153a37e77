package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/filebridge/backend/internal/rpc"
)

type listFilesParams struct {
	Path *string `json:"path"`
}

// Entry is one element of a listFiles result. Size is present only for
// file entries.
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size *int64 `json:"size,omitempty"`
}

const (
	entryFile      = "file"
	entryDirectory = "directory"
)

// ListFiles handles listFiles {path}. It enumerates direct children only,
// directories first, then files, each group sorted by name. A metadata
// failure on any entry aborts the whole listing; partial results are
// never returned.
func (p *Provider) ListFiles(raw json.RawMessage) (interface{}, error) {
	var params listFilesParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, rpc.InvalidParams(fmt.Sprintf("invalid listFiles params: %v", err))
	}
	if params.Path == nil {
		return nil, rpc.InvalidParams("missing required parameter: path")
	}
	path := *params.Path

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, rpc.DirectoryError("Directory does not exist")
		}
		return nil, rpc.IOError(err)
	}
	if !info.IsDir() {
		return nil, rpc.DirectoryError("Path is not a directory")
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, rpc.IOError(err)
	}

	var dirs, regular []Entry
	for _, child := range children {
		if child.IsDir() {
			dirs = append(dirs, Entry{Name: child.Name(), Type: entryDirectory})
			continue
		}
		meta, err := child.Info()
		if err != nil {
			return nil, rpc.IOError(err)
		}
		size := meta.Size()
		regular = append(regular, Entry{Name: child.Name(), Type: entryFile, Size: &size})
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(regular, func(i, j int) bool { return regular[i].Name < regular[j].Name })

	entries := make([]Entry, 0, len(dirs)+len(regular))
	entries = append(entries, dirs...)
	entries = append(entries, regular...)

	p.logger.Debug("Directory listed",
		zap.String("path", path),
		zap.Int("total_items", len(entries)),
	)
	return entries, nil
}
