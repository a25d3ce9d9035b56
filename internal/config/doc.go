// Package config provides configuration loading, merging, and validation
// facilities for the hub channel client.
//
// Configuration is assembled from multiple sources; merging keeps the first
// non-zero value, so the priority order is:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
