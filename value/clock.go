/*
File   : lox-mix/value/clock.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package value

import "time"

// Clock is the language's one built-in callable: arity zero, returning a
// monotonically non-decreasing count of seconds since the interpreter
// started. It measures elapsed time against a fixed start instant rather
// than wrapping time.Now() directly, so the result is guaranteed
// monotonic even if the wall clock is adjusted mid-session, which a plain
// time.Now().Unix() is not.
type Clock struct {
	start time.Time
}

// NewClock returns a Clock builtin anchored to the current instant. Call
// it once, at evaluator construction, and bind the result into the
// global environment.
func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (*Clock) Type() Type       { return CallableType }
func (*Clock) String() string   { return "<native fn clock>" }
func (*Clock) Arity() int       { return 0 }

func (c *Clock) Call(args []Value) (Value, error) {
	return Number{Value: time.Since(c.start).Seconds()}, nil
}
