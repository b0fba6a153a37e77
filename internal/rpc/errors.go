package rpc

import "encoding/json"

// JSON-RPC 2.0 reserved error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Application error codes, disjoint from the reserved range.
const (
	CodeFileNotFound   = -32001
	CodeIOError        = -32002
	CodeDirectoryError = -32003
)

// Failure is the typed error handlers return. It carries the registry code
// and the message that ends up in the response error object; nothing else
// (no stack traces, no wrapped internals) crosses the handler boundary.
type Failure struct {
	code    int
	message string
}

// Error implements the error interface.
func (f *Failure) Error() string { return f.message }

// Code returns the registry code for this failure.
func (f *Failure) Code() int { return f.code }

// InvalidParams marks a parameter shape or type mismatch. The message is
// the validation diagnostic shown to the client.
func InvalidParams(message string) *Failure {
	return &Failure{code: CodeInvalidParams, message: message}
}

// FileNotFound marks a read target that does not exist.
func FileNotFound() *Failure {
	return &Failure{code: CodeFileNotFound, message: "File not found"}
}

// DirectoryError marks a listing target that is missing or not a directory.
func DirectoryError(message string) *Failure {
	return &Failure{code: CodeDirectoryError, message: message}
}

// IOError wraps any other underlying file-system failure, surfacing the
// underlying message.
func IOError(err error) *Failure {
	return &Failure{code: CodeIOError, message: err.Error()}
}

// errorResponse maps a handler failure into a response. Untyped errors are
// never expected from handlers; they map to the internal-error code rather
// than leaking through as a panic or a dropped response.
func errorResponse(id json.RawMessage, err error) *Response {
	if f, ok := err.(*Failure); ok {
		return NewError(id, f.code, f.message)
	}
	return NewError(id, CodeInternalError, "Internal error")
}
