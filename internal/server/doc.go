// Package server runs the editor server's transports.
//
// It starts the HTTP and gRPC servers that were configured, refreshes the
// gRPC health status in the background and shuts everything down on
// SIGTERM, SIGINT or SIGQUIT.
package server
