// Package editor holds the state of the file currently open in the editor:
// the live buffer, the last saved baseline and the question annotation.
//
// A [Session] is not safe for concurrent use. The TUI drives it from its
// single event loop and only hands the save itself to a background command.
package editor
