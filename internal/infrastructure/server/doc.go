// Package server assembles the HTTP router: middleware, the WebSocket
// endpoint at /ws, and the operational endpoints (/, /health, /metrics).
package server
