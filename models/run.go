package models

import "time"

// RunResult is what the console shows after running a file.
type RunResult struct {
	// Output is either the captured console lines joined by "\n" or, when
	// Failed is set, the description of the fault.
	Output string `json:"output"`

	// Lines are the captured console lines in order.
	Lines []string `json:"lines,omitempty"`

	Failed   bool          `json:"failed"`
	Duration time.Duration `json:"duration"`
}
