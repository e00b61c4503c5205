// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strings"

	"github.com/beevik/basic6502/cpu"
)

func codeString(b []byte) string {
	switch len(b) {
	case 1:
		return fmt.Sprintf("%02X", b[0])
	case 2:
		return fmt.Sprintf("%02X %02X", b[0], b[1])
	case 3:
		return fmt.Sprintf("%02X %02X %02X", b[0], b[1], b[2])
	default:
		return ""
	}
}

// registerString formats the register file and cycle counter on one line.
func registerString(c *cpu.CPU) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s] SP=%02X PC=%04X C=%d",
		c.Reg.A, c.Reg.X, c.Reg.Y, psString(&c.Reg), c.Reg.SP, c.Reg.PC,
		c.Cycles)
}

func psString(r *cpu.Registers) string {
	v := func(bit bool, ch byte) byte {
		if bit {
			return ch
		}
		return '-'
	}
	b := []byte{
		v(r.Negative, 'N'),
		v(r.Overflow, 'V'),
		v(r.Decimal, 'D'),
		v(r.InterruptDisable, 'I'),
		v(r.Zero, 'Z'),
		v(r.Carry, 'C'),
	}
	return string(b)
}

func stringToBool(s string) (bool, error) {
	s = strings.ToLower(s)
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, fmt.Errorf("invalid bool value '%s'", s)
	}
}

var hexString = "0123456789ABCDEF"

func addrToBuf(addr uint16, b []byte) {
	b[0] = hexString[(addr>>12)&0xf]
	b[1] = hexString[(addr>>8)&0xf]
	b[2] = hexString[(addr>>4)&0xf]
	b[3] = hexString[addr&0xf]
}

func byteToBuf(v byte, b []byte) {
	b[0] = hexString[(v>>4)&0xf]
	b[1] = hexString[v&0xf]
}

func toPrintableChar(v byte) byte {
	switch {
	case v >= 32 && v < 127:
		return v
	case v >= 160 && v < 255:
		return v - 128
	default:
		return '.'
	}
}

// indentWrap breaks s into lines at most 80 columns wide, indenting each
// line by 'indent' spaces.
func indentWrap(indent int, s string) string {
	var lines []string
	prefix := strings.Repeat(" ", indent)
	width := 80 - indent

	for _, word := range strings.Fields(s) {
		if len(lines) == 0 || len(lines[len(lines)-1])+1+len(word) > width {
			lines = append(lines, prefix+word)
		} else {
			lines[len(lines)-1] += " " + word
		}
	}
	return strings.Join(lines, "\n")
}
