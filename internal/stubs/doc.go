// Package stubs holds the embedded PHP stub templates and resolves them in
// layers: a project override directory first, then the stub set for the
// installed Lighthouse major version, then the common set.
package stubs
