// Package config provides configuration loading, merging, and validation
// facilities for the validator server and the console client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the HTTP server and
// [GetClientConfig] for the console client. The branch region whitelist is
// resolved separately by [LoadRegionSet], which never fails.
package config
