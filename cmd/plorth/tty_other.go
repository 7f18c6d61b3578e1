// +build !linux,!darwin

package main

import "github.com/peterh/liner"

// stdinIsTerminal falls back to liner's own notion of terminal support on
// platforms without termios.
func stdinIsTerminal() bool {
	return liner.TerminalSupported()
}
