// Package config loads the editor configuration from environment variables,
// command-line flags and an optional JSON file.
//
// Sources are merged with mergo in the following priority order (a source
// only fills fields left empty by the sources before it):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//  4. Built-in defaults
//
// [GetStructuredConfig] serves the server, [GetClientConfig] the terminal
// client and [GetKeygenConfig] the API key generator.
package config
