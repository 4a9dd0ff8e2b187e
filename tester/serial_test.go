package main_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"go.bug.st/serial"

	stepperio "github.com/GadgetReboot/GR-StepperIO"
)

// Hardware-in-the-loop test: requires a flashed cutter attached over
// USB serial, named by STEPPERIO_PORT.

func sendSerial(t *testing.T, in string) string {
	t.Helper()

	portName := os.Getenv("STEPPERIO_PORT")
	if portName == "" {
		t.Skip("STEPPERIO_PORT not set")
	}

	mode := &serial.Mode{
		BaudRate: 115200,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		t.Fatalf("unexpected error opening serial connection: %v", err)
	}
	defer port.Close()

	_, err = port.Write([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error writing serial: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	var out strings.Builder
	buf := make([]byte, 256)
	port.SetReadTimeout(1 * time.Second)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n, err := port.Read(buf)
		if err != nil {
			t.Fatalf("unexpected error reading serial: %v", err)
		}
		if n == 0 {
			break
		}
		out.Write(buf[:n])
	}
	return out.String()
}

func TestStatus(t *testing.T) {
	out := sendSerial(t, string(stepperio.CmdStatus))
	if !strings.Contains(out, "travel=") {
		t.Errorf("expected status line with travel count, got %q", out)
	}
	if !strings.Contains(out, "home=") {
		t.Errorf("expected status line with home sensor state, got %q", out)
	}
}

func TestTravelAdjustRoundTrip(t *testing.T) {
	before := sendSerial(t, string(stepperio.CmdStatus))

	after := sendSerial(t, string([]byte{stepperio.CmdCalUp, stepperio.CmdCalDown, stepperio.CmdStatus}))

	prefix := "travel="
	extract := func(s string) string {
		i := strings.LastIndex(s, prefix)
		if i < 0 {
			return ""
		}
		rest := s[i+len(prefix):]
		if j := strings.IndexByte(rest, ' '); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	if extract(before) != extract(after) {
		t.Errorf("expected travel unchanged after +1/-1, got %q then %q", extract(before), extract(after))
	}
}
