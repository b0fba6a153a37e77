// Package rpc implements the JSON-RPC 2.0 envelope, error registry, and
// method dispatcher used over WebSocket connections.
//
// The envelope keeps request ids and results as raw JSON so that client
// ids echo byte-for-byte and a response always carries exactly one of
// result/error. Handlers are registered in a static method table; adding
// a method is a table entry, never a new branch in the dispatch path.
//
// Error codes follow the JSON-RPC 2.0 reserved range (-32700..-32600) with
// application codes (-32001..-32003) for file-system failures.
package rpc
