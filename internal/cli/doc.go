// Package cli defines the Cobra command tree for extreg. Running the root
// command with no arguments applies the configured policy; add and update
// force insert-if-absent and replace. Commands only resolve settings and
// format output; the registry package does the work.
package cli
