/*
Package monitoring provides Prometheus-based metrics collection.

# Overview

Tracks the HTTP upgrade surface, open WebSocket connections, inbound frame
counts, and per-method RPC request counts and latencies.

# Usage

	metrics := monitoring.NewDefaultMetrics()
	router.Use(monitoring.Middleware(metrics))

Metrics are exposed via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
