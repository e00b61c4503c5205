// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"os"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/beevik/basic6502/cpu"
)

// cmdConsole runs the CPU with the terminal attached to the console
// bridge. Keystrokes go straight to the running program's input buffer;
// its output characters appear on the terminal as they are written. A
// ctrl-C keystroke returns to the monitor.
func (h *Host) cmdConsole(c cmd.Selection) error {
	h.printf("Entering console mode at $%04X. Press ctrl-C to exit.\n", h.cpu.Reg.PC)

	// Put the terminal into raw input mode so individual keystrokes reach
	// the bridge without line buffering. In raw mode ctrl-C arrives as an
	// in-band $03 byte rather than a signal.
	fd := int(os.Stdin.Fd())
	var saved *term.State
	if term.IsTerminal(fd) {
		var err error
		saved, err = term.MakeRawInput(fd)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.state = stateRunning
	go h.pumpConsoleInput()

	_, err := h.cpu.Run(func(c *cpu.CPU) bool {
		return h.state == stateRunning
	})
	if err != nil {
		h.printf("%v\n", err)
	}
	h.state = stateProcessingCommands

	if saved != nil {
		term.Restore(fd, saved)
	}
	h.println()
	h.displayPC()
	return nil
}

// pumpConsoleInput feeds stdin keystrokes to the console bridge's input
// queue while the CPU runs. The goroutine ends when it sees ctrl-C or
// when console mode has already been left; in the latter case the byte
// that woke it is dropped.
func (h *Host) pumpConsoleInput() {
	var buf [1]byte
	for {
		n, err := os.Stdin.Read(buf[:])
		if err != nil {
			h.Break()
			return
		}
		if h.state != stateRunning {
			return
		}
		if n != 1 {
			continue
		}

		b := buf[0]
		if b == 0x03 { // ctrl-C
			h.Break()
			return
		}
		if b == '\n' {
			b = '\r' // BASIC expects carriage-return line endings
		}
		h.con.SubmitInput(string(b))
	}
}
