// Package sandbox runs editor buffers as JavaScript and captures what the
// script prints through the console object.
//
// Each run gets a fresh goja VM. Scripts have no file system or network
// access, but they run inside the client process and share its CPU and
// memory. Runaway scripts are stopped by the run timeout or by cancelling
// the context passed to Run.
package sandbox
