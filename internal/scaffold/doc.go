// Package scaffold generates Lighthouse PHP classes from stubs. It powers the
// generator commands ("lhgen directive", "lhgen scalar", ...): it qualifies
// the class name against the project's namespace settings, fills in the
// stub, asks which interfaces a directive should implement, and writes the
// file where the project's PSR-4 autoloading expects it.
package scaffold
