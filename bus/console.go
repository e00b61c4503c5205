// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"io"
	"sync"
)

// Default console register addresses, matching the memory map expected by
// common Microsoft BASIC builds.
const (
	DefaultConsoleOutput = 0xf001 // output data (write)
	DefaultConsoleStatus = 0xf004 // input status (read)
	DefaultConsoleInput  = 0xf005 // input data (read)
)

// An InputSource supplies fallback input characters to the console when
// its buffered queue is empty. ReadByte must not block; it returns false
// when no character is immediately available.
type InputSource interface {
	ReadByte() (b byte, ok bool)
}

// A Console is the reference bridge device between running 6502 code and
// the host's character I/O. It decodes three registers: a write-only
// output data register, a read-only input status register, and a read-only
// input data register backed by a FIFO of buffered characters.
//
// SubmitInput may be called from a different goroutine than the one
// stepping the CPU; the input queue is mutex-guarded. All other console
// state follows the bus's single-threaded contract.
type Console struct {
	OutputAddr uint16 // output data register address
	StatusAddr uint16 // input status register address
	InputAddr  uint16 // input data register address

	out io.Writer
	src InputSource

	mu    sync.Mutex
	queue []byte
}

// NewConsole creates a console bridge that appends output characters to
// 'out', decoding the default register addresses. The register address
// fields may be reassigned before the console is attached to a bus.
func NewConsole(out io.Writer) *Console {
	return &Console{
		OutputAddr: DefaultConsoleOutput,
		StatusAddr: DefaultConsoleStatus,
		InputAddr:  DefaultConsoleInput,
		out:        out,
	}
}

// SetInputSource installs a fallback input source consulted when the
// buffered input queue is empty.
func (c *Console) SetInputSource(src InputSource) {
	c.src = src
}

// SubmitInput appends each byte of 's' to the console's input queue. Safe
// to call from a producer goroutine while the CPU is running.
func (c *Console) SubmitInput(s string) {
	c.mu.Lock()
	c.queue = append(c.queue, s...)
	c.mu.Unlock()
}

// Pending returns the number of input characters waiting in the queue.
func (c *Console) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Handles reports whether the address decodes to one of the console's
// three registers.
func (c *Console) Handles(addr uint16) bool {
	return addr == c.OutputAddr || addr == c.StatusAddr || addr == c.InputAddr
}

// LoadByte reads the input status or input data register. Reading the
// output register returns 0.
func (c *Console) LoadByte(addr uint16) byte {
	switch addr {
	case c.StatusAddr:
		if c.Pending() > 0 {
			return 1
		}
		return 0

	case c.InputAddr:
		c.mu.Lock()
		if len(c.queue) > 0 {
			v := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return v
		}
		c.mu.Unlock()
		if c.src != nil {
			if v, ok := c.src.ReadByte(); ok {
				return v
			}
		}
		return 0
	}

	return 0
}

// StoreByte writes a character to the output register, flushing it to the
// output sink immediately. Stores to the input registers are dropped.
func (c *Console) StoreByte(addr uint16, v byte) {
	if addr == c.OutputAddr && c.out != nil {
		c.out.Write([]byte{v})
	}
}
