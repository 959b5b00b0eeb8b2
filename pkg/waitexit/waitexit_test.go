package waitexit

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestShouldWaitExplicitFlags(t *testing.T) {
	if !ShouldWait(Policy{Wait: true}, 2, false) {
		t.Error("--wait-exit should force waiting")
	}
	if ShouldWait(Policy{NoWait: true}, 1, true) {
		t.Error("--no-wait-exit should suppress waiting")
	}
	// NoWait wins when both are somehow set.
	if ShouldWait(Policy{Wait: true, NoWait: true}, 1, true) {
		t.Error("NoWait should take precedence over Wait")
	}
}

func TestShouldWaitDefaultPolicy(t *testing.T) {
	want := runtime.GOOS == "windows"
	if got := ShouldWait(Policy{}, 1, true); got != want {
		t.Errorf("default with tty and no args: got %v, want %v", got, want)
	}

	if ShouldWait(Policy{}, 2, true) {
		t.Error("should not wait by default when arguments were given")
	}
	if ShouldWait(Policy{}, 1, false) {
		t.Error("should not wait by default without a terminal")
	}
}

func TestWaitReturnsOnInput(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		Wait(r, &out)
		close(done)
	}()

	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatal(err)
	}
	w.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after input")
	}

	if !strings.Contains(out.String(), "Press any key to exit") {
		t.Errorf("missing prompt, got %q", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Error("wait prompt must stay plain text")
	}
}

func TestWaitReturnsOnEOF(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	w.Close()

	done := make(chan struct{})
	go func() {
		Wait(r, &bytes.Buffer{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return on EOF")
	}
}
