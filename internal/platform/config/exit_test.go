package config

import (
	"bytes"
	"errors"
	"testing"
)

func captureExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevStderr, prevExit := stderr, exitFunc
	stderr = &buf
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		stderr = prevStderr
		exitFunc = prevExit
	})
	return &buf, &code
}

func TestExitfWritesAndExitsWithCode1(t *testing.T) {
	buf, code := captureExit(t)

	Exitf("fatal: %s", "something broke")

	if *code != 1 {
		t.Fatalf("exit code = %d, want 1", *code)
	}
	if got := buf.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestExitOnErrorIgnoresNil(t *testing.T) {
	buf, code := captureExit(t)

	ExitOnError("serve", nil)

	if *code != -1 || buf.Len() != 0 {
		t.Fatalf("unexpected exit: code=%d output=%q", *code, buf.String())
	}
}

func TestExitOnErrorPrefixesAction(t *testing.T) {
	buf, code := captureExit(t)

	ExitOnError("serve", errors.New("bind failed"))

	if *code != 1 {
		t.Fatalf("exit code = %d, want 1", *code)
	}
	if got := buf.String(); got != "serve: bind failed\n" {
		t.Fatalf("stderr = %q", got)
	}
}
