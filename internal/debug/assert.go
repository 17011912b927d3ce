//go:build !debug

package debug

// Assert panics if condition is false. Assertions are compiled in only when
// the debug build tag is set; release builds pay nothing for them.
func Assert(condition bool, message ...string) {}
