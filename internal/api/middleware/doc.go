// Package middleware provides Gin middleware for the HTTP surface:
// CORS handling and per-IP rate limiting.
package middleware
