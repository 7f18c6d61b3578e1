// Package testutils provides utilities for testing Plorth code in Go.
package testutils

import (
	"io/ioutil"
	"sync"
	"testing"

	"github.com/plorth/plorth"
)

// testRuntime is the runtime shared by all tests that use this package.
// Its word output is discarded.
var testRuntime *plorth.Runtime

var testRuntimeInit sync.Once

// TestingRuntime returns a runtime for testing Plorth. The runtime is
// shared by all tests that use this package; each test case runs in a
// fresh context.
func TestingRuntime() *plorth.Runtime {
	testRuntimeInit.Do(func() {
		testRuntime = plorth.NewRuntime(plorth.WithOutput(ioutil.Discard))
	})
	return testRuntime
}

// A SourceTestCase is a test case containing Plorth source code and the
// expected outcome of executing it in a fresh context.
type SourceTestCase struct {
	// Source is the Plorth source code to compile and execute.
	Source string
	// WantErr is the expected error code, or zero when the program must
	// succeed.
	WantErr plorth.ErrorCode
	// WantStack is the expected data stack after execution, bottom first.
	// A nil WantStack skips the stack check; use an empty non-nil slice to
	// require an empty stack.
	WantStack []plorth.Value
	// Pass is an optional extra predicate over the final context.
	Pass func(ctx *plorth.Context) bool
}

// TestFunc returns a test function for the test case. The source is
// compiled and executed in a fresh context on the shared runtime.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		ctx := TestingRuntime().NewContext()
		q := ctx.Compile(c.Source, name)
		if q == nil {
			err := ctx.Error()
			if err == nil {
				t.Fatalf("%q failed to compile with no error reported", c.Source)
			}
			if c.WantErr == 0 || err.Code() != c.WantErr {
				t.Fatalf("%q failed to compile: %v", c.Source, err)
			}
			return
		}
		q.Call(ctx)
		err := ctx.Error()
		if c.WantErr != 0 {
			if err == nil {
				t.Fatalf("%q succeeded, want %v error", c.Source, c.WantErr)
			}
			if err.Code() != c.WantErr {
				t.Fatalf("%q reported %v, want %v error", c.Source, err, c.WantErr)
			}
		} else if err != nil {
			t.Fatalf("%q reported %v", c.Source, err)
		}
		if c.WantStack != nil {
			got := ctx.Stack()
			if len(got) != len(c.WantStack) {
				t.Fatalf("%q left %d values on the stack, want %d: %v", c.Source, len(got), len(c.WantStack), stackStrings(got))
			}
			for i, want := range c.WantStack {
				if !plorth.Equal(got[i], want) {
					t.Errorf("%q left %s at stack position %d, want %s", c.Source, plorth.ToSource(got[i]), i, plorth.ToSource(want))
				}
			}
		}
		if c.Pass != nil && !c.Pass(ctx) {
			t.Errorf("%q produced wrong result; stack %v", c.Source, stackStrings(ctx.Stack()))
		}
	}
}

func stackStrings(values []plorth.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = plorth.ToSource(v)
	}
	return out
}
