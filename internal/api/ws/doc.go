// Package ws implements the WebSocket connection manager and per-connection
// message loop.
//
// Each upgrade is assigned a process-lifetime-unique connection id and
// served by an isolated loop. Within one connection, requests are handled
// strictly in order: decode, dispatch, encode, send, then read the next
// frame. Request-processing failures (parse errors, unknown methods,
// handler failures) produce error responses and keep the connection open;
// only transport receive/send errors close it, and only that connection.
//
// Frames (Client → Server): JSON-RPC 2.0 requests as text frames. Non-text
// frames are counted and ignored.
//
// Frames (Server → Client): exactly one JSON-RPC 2.0 response per text
// frame received, echoing the request id (null when none was decodable).
package ws
