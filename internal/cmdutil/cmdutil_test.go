package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "record %s: %d features skipped", "X", 2)
	if b.String() != "WARN: record X: 2 features skipped\n" {
		t.Fatalf("unexpected %q", b.String())
	}
	b.Reset()
	Warnf(&b, true, "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress warnings")
	}
	Errorf(&b, "bad %d", 1)
	if b.String() != "error: bad 1\n" {
		t.Fatalf("unexpected %q", b.String())
	}
}

func TestProgressNoTerminalIsNoop(t *testing.T) {
	var b bytes.Buffer
	p := StartProgress(&b, false, 10)
	p.Increment()
	p.Finish()
	if b.Len() != 0 {
		t.Fatalf("non-terminal output must stay clean, got %q", b.String())
	}
	var nilP *Progress
	nilP.Increment()
	nilP.Finish()
}
