// Package main is the entry point for the file service backend.
//
// The server exposes file-system primitives (readFile, writeFile,
// listFiles) to remote clients over a persistent WebSocket connection at
// /ws, speaking JSON-RPC 2.0.
//
// Configuration comes from environment variables (12-factor) with
// development defaults; see internal/infrastructure/config.
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
