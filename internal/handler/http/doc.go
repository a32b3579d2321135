// Package http implements the REST transport of the editor server.
//
// It exposes the files, folders and tree routes over chi, the unauthenticated
// version route and the Prometheus /metrics endpoint. API key checks, request
// tracing, access logging, metrics, response compression and body signing
// are handled here before requests reach the service layer.
package http
