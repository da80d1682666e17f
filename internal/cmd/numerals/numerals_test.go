package numerals

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	platformgrpc "github.com/louisbranch/numerals.space/internal/platform/grpc"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvertPrintsNumberedSteps(t *testing.T) {
	t.Parallel()

	out, err := run(t, "convert", "1994", "--system", "roman")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "MCMXCIV" {
		t.Fatalf("first line = %q, want MCMXCIV", lines[0])
	}
	if !strings.Contains(out, "\n1. ") {
		t.Fatalf("expected numbered steps, got %q", out)
	}
	if !strings.HasPrefix(lines[len(lines)-1], strconv.Itoa(len(lines)-2)+". ") {
		t.Fatalf("last step not numbered in order: %q", out)
	}
}

func TestConvertToArabic(t *testing.T) {
	t.Parallel()

	out, err := run(t, "convert", "MCMXCIV", "--system", "roman", "--to-arabic")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.HasPrefix(out, "1994\n") {
		t.Fatalf("output = %q", out)
	}
}

func TestConvertSentinelAndFailure(t *testing.T) {
	t.Parallel()

	out, err := run(t, "convert", "0", "--system", "roman")
	if err != nil {
		t.Fatalf("convert zero: %v", err)
	}
	if !strings.HasPrefix(out, "N/A\n(UNSUPPORTED_VALUE)\n") {
		t.Fatalf("sentinel output = %q", out)
	}

	if _, err := run(t, "convert", "12", "--system", "klingon"); err == nil || !strings.Contains(err.Error(), "SYSTEM_NOT_FOUND") {
		t.Fatalf("expected SYSTEM_NOT_FOUND, got %v", err)
	}
	if _, err := run(t, "convert"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestSystemsListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{name: "all", args: []string{"systems"}, want: []string{"roman", "greek", "60 (sexagesimal)"}},
		{name: "base", args: []string{"systems", "--base", "20"}, want: []string{"mayan", "yoruba", "inuktitut"}, notWant: []string{"roman"}},
		{name: "filter", args: []string{"systems", "--filter", "base = 60"}, want: []string{"babylonian"}, notWant: []string{"mayan"}},
		{name: "empty", args: []string{"systems", "--search", "atlantis"}, want: []string{"No systems found"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("systems: %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tc.notWant {
				if strings.Contains(out, notWant) {
					t.Fatalf("output unexpectedly has %q:\n%s", notWant, out)
				}
			}
		})
	}

	if _, err := run(t, "systems", "--filter", "base ="); err == nil {
		t.Fatal("expected invalid filter error")
	}
}

func TestProblemsAndCheck(t *testing.T) {
	t.Parallel()

	out, err := run(t, "problems", "--difficulty", "advanced")
	if err != nil {
		t.Fatalf("problems: %v", err)
	}
	if !strings.HasPrefix(out, "advanced problems") || !strings.Contains(out, "a1") {
		t.Fatalf("problems output = %q", out)
	}
	if strings.Contains(out, "b1") {
		t.Fatalf("advanced listing includes beginner problem: %q", out)
	}
	if _, err := run(t, "problems", "--difficulty", "expert"); err == nil {
		t.Fatal("expected invalid difficulty error")
	}

	out, err = run(t, "check", "b1", "18")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "b1: correct\n" {
		t.Fatalf("check output = %q", out)
	}
	out, err = run(t, "check", "b1", "19")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "b1: incorrect, try again\n" {
		t.Fatalf("check output = %q", out)
	}
	if _, err := run(t, "check", "zz", "1"); err == nil {
		t.Fatal("expected unknown problem error")
	}
}

func TestHealthProbe(t *testing.T) {
	t.Parallel()

	server, err := platformgrpc.NewHealthServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new health server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	out, err := run(t, "health", "--addr", server.Addr(), "--timeout", "2s")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if !strings.Contains(out, "SERVING") {
		t.Fatalf("health output = %q", out)
	}
}

func TestHealthProbeFailsWithoutServer(t *testing.T) {
	t.Parallel()

	start := time.Now()
	if _, err := run(t, "health", "--addr", "127.0.0.1:1", "--timeout", "300ms"); err == nil {
		t.Fatal("expected health failure")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("health probe ignored its timeout")
	}
}
