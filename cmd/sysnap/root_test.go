package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "--json", "--no-wait-exit")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("stdout is not one valid JSON object: %v\n%s", err, out)
	}

	hostname, _ := decoded["hostname"].(string)
	if hostname == "" {
		t.Error("expected a non-empty hostname in JSON output")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("JSON output must never contain ANSI escapes")
	}
}

func TestRunTableNoColor(t *testing.T) {
	out, err := execute(t, "--no-color", "--no-wait-exit")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if strings.Contains(out, "\x1b[") {
		t.Error("--no-color output contains ANSI escape sequences")
	}
	for _, heading := range []string{"CPU", "Memory", "System"} {
		if !strings.Contains(out, heading) {
			t.Errorf("table output missing %q heading", heading)
		}
	}
}

func TestRunVerboseAlias(t *testing.T) {
	out, err := execute(t, "--json", "--verbose", "--no-wait-exit")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("stdout is not valid JSON: %v", err)
	}

	usage, ok := decoded["cpu_usage_percent"].(float64)
	if !ok {
		t.Fatalf("expected cpu_usage_percent float in verbose mode, got %v", decoded["cpu_usage_percent"])
	}
	if usage < 0 || usage > 100 {
		t.Errorf("usage %v outside [0,100]", usage)
	}
}

func TestWaitFlagsMutuallyExclusive(t *testing.T) {
	if _, err := execute(t, "--wait-exit", "--no-wait-exit"); err == nil {
		t.Error("expected an error for --wait-exit with --no-wait-exit")
	}
}

func TestRejectsPositionalArgs(t *testing.T) {
	if _, err := execute(t, "extra"); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
