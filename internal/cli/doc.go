// Package cli defines the Cobra command tree for the lhgen CLI. Each file
// registers one command (or one family of generator commands) with the root
// command. Commands only parse flags, build collaborators and format
// output; generation itself lives in the scaffold package.
package cli
