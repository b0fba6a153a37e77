package rpc

import (
	"encoding/json"
	"fmt"
)

// Version is the protocol version tag carried by every envelope.
const Version = "2.0"

// rawNull is the id used when no request id could be determined.
var rawNull = json.RawMessage("null")

// Request is an incoming JSON-RPC request. Params and ID stay raw: params
// are decoded by the handler that knows their shape, and the id is echoed
// back byte-for-byte whether it is a string, a number, or null. A nil ID
// marks a notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// Response is an outgoing JSON-RPC response. Exactly one of Result/Error is
// set. Result is pre-marshaled so that valid zero values (empty string,
// false) are never dropped by omitempty.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// Error is the JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Decode parses a raw text frame into a Request. Malformed JSON and
// requests without a method field are both decode failures; the caller
// turns either into a parse-error response with a null id. A method that
// is present but empty is not a decode failure: the request is
// well-formed and its id determinable, so it flows on to dispatch and
// earns a method-not-found error with the id echoed.
func Decode(data []byte) (*Request, error) {
	var envelope struct {
		JSONRPC string          `json:"jsonrpc"`
		Method  *string         `json:"method"`
		Params  json.RawMessage `json:"params"`
		ID      json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed request: %w", err)
	}
	if envelope.Method == nil {
		return nil, fmt.Errorf("malformed request: missing method")
	}
	return &Request{
		JSONRPC: envelope.JSONRPC,
		Method:  *envelope.Method,
		Params:  envelope.Params,
		ID:      envelope.ID,
	}, nil
}

// Encode serializes a Response to a text frame. An encode failure is
// non-fatal to the connection; the loop logs it and drops the response.
func Encode(resp *Response) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return data, nil
}

// NewResult builds a success response, echoing the request id.
func NewResult(id json.RawMessage, result interface{}) (*Response, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &Response{JSONRPC: Version, Result: raw, ID: echoID(id)}, nil
}

// NewError builds an error response, echoing the request id.
func NewError(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: Version,
		Error:   &Error{Code: code, Message: message},
		ID:      echoID(id),
	}
}

// NewParseError builds the response for a frame that could not be decoded.
// No id could be determined, so it is reported as null.
func NewParseError() *Response {
	return NewError(nil, CodeParseError, "Parse error")
}

func echoID(id json.RawMessage) json.RawMessage {
	if id == nil {
		return rawNull
	}
	return id
}
