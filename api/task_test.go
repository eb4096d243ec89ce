// File: api/task_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "testing"

func TestSimpleAdapter(t *testing.T) {
	var got0, got1 any
	var gotNum int

	fn := Simple(func(param0, param1 any, taskNumber int) {
		got0, got1, gotNum = param0, param1, taskNumber
	})

	if d := fn("a", 42, 7); d != DirectiveOK {
		t.Fatalf("Simple returned %v, want DirectiveOK", d)
	}
	if got0 != "a" || got1 != 42 || gotNum != 7 {
		t.Fatalf("parameters not forwarded: %v %v %d", got0, got1, gotNum)
	}
}

func TestDirectiveString(t *testing.T) {
	cases := map[Directive]string{
		DirectiveOK:      "ok",
		DirectiveRerun:   "rerun",
		DirectiveRequeue: "requeue",
		Directive(99):    "unknown",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Fatalf("Directive(%d).String() = %q, want %q", d, got, want)
		}
	}
}
