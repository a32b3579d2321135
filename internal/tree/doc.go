// Package tree turns the flat file and folder collections of the remote
// store into the nested forest rendered by the editor sidebar.
//
// All functions are pure: they never mutate their inputs and never talk to
// the store. Parent references are treated as untrusted. A folder whose
// parent is missing becomes a root, and folders caught in a parent cycle are
// promoted to roots instead of being traversed forever.
package tree
