// Package greeting writes the program's greeting.
package greeting

import (
	"dominicbreuker/hellotrait/pkg/config"
	"fmt"
)

// Text is the greeting, without the trailing newline.
const Text = "Hello, World"

// Write prints Text followed by a newline to stdout.
func Write(deps *config.Dependencies) error {
	stdout := config.GetStdoutFunc(deps)()
	if _, err := fmt.Fprintln(stdout, Text); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}
	return nil
}
