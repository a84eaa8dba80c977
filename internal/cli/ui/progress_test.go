package ui

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestSpinnerStartStop tests basic spinner lifecycle and goroutine cleanup
func TestSpinnerStartStop(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf, SpinnerOptions{
		Message:  "Initializing git repository",
		NoColor:  true,
		Interval: 10 * time.Millisecond,
	})

	spinner.Start()
	time.Sleep(50 * time.Millisecond)
	spinner.Stop()

	if !strings.Contains(buf.String(), "Initializing git repository") {
		t.Errorf("Expected spinner to show its message, got: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r\033[K") {
		t.Error("Expected spinner to clear the line on stop")
	}

	// Nothing is written once stopped
	after := buf.String()
	time.Sleep(30 * time.Millisecond)
	if buf.String() != after {
		t.Error("spinner kept writing after Stop")
	}
}

func TestSpinnerSuccess(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf, SpinnerOptions{Message: "Processing", NoColor: true})

	spinner.Start()
	spinner.Success("Operation completed")

	if !strings.Contains(buf.String(), "✓ Operation completed\n") {
		t.Errorf("Expected success message, got: %q", buf.String())
	}
}

func TestSpinnerError(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf, SpinnerOptions{Message: "Processing", NoColor: true})

	spinner.Start()
	spinner.Error("Operation failed")

	if !strings.Contains(buf.String(), "❌ Operation failed\n") {
		t.Errorf("Expected error message, got: %q", buf.String())
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf, SpinnerOptions{Message: "idle", NoColor: true})

	spinner.Stop()
	spinner.Stop()

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestSpinnerRestart(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf, SpinnerOptions{Message: "again", NoColor: true, Interval: 10 * time.Millisecond})

	spinner.Start()
	spinner.Start()
	spinner.Stop()
	spinner.Start()
	spinner.Stop()
}

func TestSpinnerDefaultInterval(t *testing.T) {
	spinner := NewSpinner(&syncBuffer{}, SpinnerOptions{Message: "x"})
	if spinner.interval != 100*time.Millisecond {
		t.Errorf("interval = %v", spinner.interval)
	}
}

func TestWithSpinner(t *testing.T) {
	var buf syncBuffer
	called := false

	err := WithSpinner(&buf, "Initializing git repository", true, func() error {
		called = true
		return nil
	})

	if err != nil {
		t.Fatalf("WithSpinner() error = %v", err)
	}
	if !called {
		t.Error("function was not called")
	}
	if !strings.Contains(buf.String(), "✓ Initializing git repository") {
		t.Errorf("missing success line: %q", buf.String())
	}
}

func TestWithSpinnerError(t *testing.T) {
	var buf syncBuffer
	wantErr := errors.New("exit status 128")

	err := WithSpinner(&buf, "Initializing git repository", true, func() error {
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("WithSpinner() error = %v, want %v", err, wantErr)
	}
	if !strings.Contains(buf.String(), "❌ Initializing git repository failed") {
		t.Errorf("missing failure line: %q", buf.String())
	}
}

func TestSpinnerStep(t *testing.T) {
	var buf syncBuffer
	step := SpinnerStep(&buf, true)

	if err := step("Working", func() error { return nil }); err != nil {
		t.Fatalf("step error = %v", err)
	}
	if !strings.Contains(buf.String(), "✓ Working") {
		t.Errorf("missing success line: %q", buf.String())
	}
}
