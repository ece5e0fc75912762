package log

import (
	"bytes"
	"os"
	"testing"
)

func TestErrorMsg(t *testing.T) {
	// Capture stderr
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	ErrorMsg("test error: %s", "something")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if output == "" {
		t.Error("ErrorMsg() produced no output")
	}
	if !bytes.Contains([]byte(output), []byte("test error")) {
		t.Errorf("ErrorMsg() output does not contain expected text: %q", output)
	}
	if !bytes.Contains([]byte(output), []byte("[!] Error: ")) {
		t.Errorf("ErrorMsg() output is missing the error prefix: %q", output)
	}
}
