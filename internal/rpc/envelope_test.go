package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidRequest(t *testing.T) {
	req, err := Decode([]byte(`{"jsonrpc":"2.0","method":"readFile","params":{"path":"/tmp/a"},"id":1}`))
	require.NoError(t, err)

	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "readFile", req.Method)
	assert.JSONEq(t, `{"path":"/tmp/a"}`, string(req.Params))
	assert.Equal(t, "1", string(req.ID))
}

func TestDecodeStringID(t *testing.T) {
	req, err := Decode([]byte(`{"jsonrpc":"2.0","method":"listFiles","id":"abc-42"}`))
	require.NoError(t, err)
	assert.Equal(t, `"abc-42"`, string(req.ID))
}

func TestDecodeNotification(t *testing.T) {
	req, err := Decode([]byte(`{"jsonrpc":"2.0","method":"writeFile","params":{}}`))
	require.NoError(t, err)
	assert.Nil(t, req.ID)
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"jsonrpc":`))
	assert.Error(t, err)
}

func TestDecodeMissingMethod(t *testing.T) {
	_, err := Decode([]byte(`{"jsonrpc":"2.0","params":{},"id":1}`))
	assert.Error(t, err)
}

func TestDecodeEmptyMethod(t *testing.T) {
	// A present-but-empty method is well-formed: its id is determinable,
	// so it must reach dispatch rather than fail as a parse error.
	req, err := Decode([]byte(`{"jsonrpc":"2.0","method":"","id":9}`))
	require.NoError(t, err)
	assert.Equal(t, "", req.Method)
	assert.Equal(t, "9", string(req.ID))
}

func TestDecodeNonObject(t *testing.T) {
	_, err := Decode([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestEncodeResultResponse(t *testing.T) {
	resp, err := NewResult(json.RawMessage("7"), "hello")
	require.NoError(t, err)

	data, err := Encode(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "result")
	assert.NotContains(t, decoded, "error")
	assert.Equal(t, "7", string(decoded["id"]))
}

func TestEncodeEmptyStringResult(t *testing.T) {
	// An empty file read must still produce a result field.
	resp, err := NewResult(json.RawMessage("1"), "")
	require.NoError(t, err)

	data, err := Encode(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "result")
	assert.Equal(t, `""`, string(decoded["result"]))
}

func TestEncodeErrorResponse(t *testing.T) {
	resp := NewError(json.RawMessage(`"req-1"`), CodeMethodNotFound, "Method not found")

	data, err := Encode(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "error")
	assert.NotContains(t, decoded, "result")
	assert.Equal(t, `"req-1"`, string(decoded["id"]))
}

func TestParseErrorHasNullID(t *testing.T) {
	resp := NewParseError()
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParseError, resp.Error.Code)

	data, err := Encode(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "null", string(decoded["id"]))
}

func TestNotificationResponseIDIsNull(t *testing.T) {
	resp, err := NewResult(nil, true)
	require.NoError(t, err)

	data, err := Encode(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":null`)
}
