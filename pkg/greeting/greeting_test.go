package greeting

import (
	"bytes"
	"dominicbreuker/hellotrait/pkg/config"
	"errors"
	"io"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		deps := &config.Dependencies{
			Stdout: func() io.Writer { return &buf },
		}

		if err := Write(deps); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		if got := buf.String(); got != "Hello, World\n" {
			t.Errorf("Write() output = %q; want %q", got, "Hello, World\n")
		}
	}
}

func TestWrite_Error(t *testing.T) {
	t.Parallel()

	deps := &config.Dependencies{
		Stdout: func() io.Writer { return failingWriter{} },
	}

	err := Write(deps)
	if err == nil {
		t.Fatal("Write() expected error, got nil")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("writing greeting")) {
		t.Errorf("Write() error = %q; want it to mention the greeting", err)
	}
}
