// Package config loads application configuration from environment
// variables with sensible defaults, using kelseyhightower/envconfig.
package config
