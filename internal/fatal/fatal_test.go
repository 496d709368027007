package fatal

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestViolationf_LogsBeforeAbort(t *testing.T) {
	aborted := false
	orig := abortFn
	abortFn = func() { aborted = true }
	defer func() { abortFn = orig }()

	core, logs := observer.New(zap.ErrorLevel)
	Violationf(zap.New(core), "bad state: %d", 7)

	if !aborted {
		t.Fatal("Violationf must abort")
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["detail"]; got != "bad state: 7" {
		t.Fatalf("logged detail %q, want %q", got, "bad state: 7")
	}
}

func TestViolationf_NilLogger(t *testing.T) {
	aborted := false
	orig := abortFn
	abortFn = func() { aborted = true }
	defer func() { abortFn = orig }()

	Violationf(nil, "no logger")

	if !aborted {
		t.Fatal("Violationf must abort even without a logger")
	}
}
