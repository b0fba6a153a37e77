package files

import (
	"encoding/json"

	"github.com/filebridge/backend/internal/infrastructure/logging"
	"github.com/filebridge/backend/internal/rpc"
)

// Provider implements the file-system RPC methods.
type Provider struct {
	logger *logging.Logger
}

// NewProvider creates a file-system provider.
func NewProvider(logger *logging.Logger) *Provider {
	return &Provider{logger: logger}
}

// Register adds the provider's methods to the dispatcher table.
func (p *Provider) Register(d *rpc.Dispatcher) {
	d.Register("readFile", p.ReadFile)
	d.Register("writeFile", p.WriteFile)
	d.Register("listFiles", p.ListFiles)
}

// decodeParams deserializes a raw params value into a handler's typed
// shape. Absent params, non-object params, and wrong field types all
// surface as the returned error.
func decodeParams(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return json.Unmarshal([]byte("null"), out)
	}
	return json.Unmarshal(raw, out)
}
