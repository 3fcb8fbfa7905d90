// Package prompt asks yes/no questions. Generators depend on the Confirmer
// interface so the same build can be driven from a terminal, from flags, or
// from a test script.
package prompt
