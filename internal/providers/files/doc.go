// Package files provides the file-system operation handlers exposed over
// the RPC surface: readFile, writeFile, and listFiles.
//
// Each handler validates its own parameters against an expected shape and
// converts every failure into a typed rpc.Failure; the dispatcher and
// connection loop never see raw I/O errors. The file system is shared
// across connections with no coordination layer: concurrent writes to the
// same path race, and the last write wins.
package files
