package logger

// Assert checks a programmer invariant. A false condition is logged at error
// level and then re-raised as a panic carrying the explanation; the failure
// is observed on the way out, never swallowed.
func (l *Logger) Assert(ok bool, explanation string) {
	if ok {
		return
	}
	l.Error("Assertion failed:", explanation)
	panic(explanation)
}
