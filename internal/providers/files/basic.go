package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/filebridge/backend/internal/rpc"
)

type readFileParams struct {
	Path *string `json:"path"`
}

type writeFileParams struct {
	Path    *string `json:"path"`
	Content *string `json:"content"`
}

// ReadFile handles readFile {path}. The whole file is returned as a single
// text result; there is no partial or streamed read.
func (p *Provider) ReadFile(raw json.RawMessage) (interface{}, error) {
	var params readFileParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, rpc.InvalidParams(fmt.Sprintf("invalid readFile params: %v", err))
	}
	if params.Path == nil {
		return nil, rpc.InvalidParams("missing required parameter: path")
	}
	path := *params.Path

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Debug("Read target does not exist", zap.String("path", path))
			return nil, rpc.FileNotFound()
		}
		return nil, rpc.IOError(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rpc.IOError(err)
	}
	if !utf8.Valid(data) {
		return nil, rpc.IOError(fmt.Errorf("file %s is not valid UTF-8 text", path))
	}

	p.logger.Debug("File read",
		zap.String("path", path),
		zap.Int("content_length", len(data)),
	)
	return string(data), nil
}

// WriteFile handles writeFile {path, content}. The file is created if
// absent and truncated otherwise; a crash mid-write may leave a partial
// file, matching the underlying create+write sequence.
func (p *Provider) WriteFile(raw json.RawMessage) (interface{}, error) {
	var params writeFileParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, rpc.InvalidParams(fmt.Sprintf("invalid writeFile params: %v", err))
	}
	if params.Path == nil {
		return nil, rpc.InvalidParams("missing required parameter: path")
	}
	if params.Content == nil {
		return nil, rpc.InvalidParams("missing required parameter: content")
	}
	path := *params.Path

	if err := os.WriteFile(path, []byte(*params.Content), 0o644); err != nil {
		return nil, rpc.IOError(err)
	}

	p.logger.Debug("File written",
		zap.String("path", path),
		zap.Int("content_length", len(*params.Content)),
	)
	return true, nil
}
