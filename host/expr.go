// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/basic6502/cpu"
)

// parseExpr evaluates a simple address expression: a chain of terms joined
// by + and - operators, where each term is a number or a register name.
// Numbers accept a $ or 0x prefix for hexadecimal; with hexMode set, bare
// numbers are hexadecimal too. The result wraps into the 16-bit address
// space.
func parseExpr(s string, c *cpu.CPU, hexMode bool) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty expression")
	}

	var total int64
	sign := int64(1)
	term := ""

	apply := func() error {
		if term == "" {
			return fmt.Errorf("invalid expression '%s'", s)
		}
		v, err := parseTerm(term, c, hexMode)
		if err != nil {
			return err
		}
		total += sign * v
		term = ""
		return nil
	}

	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '+', '-':
			// A leading sign binds to the first term.
			if term == "" && total == 0 && i == 0 {
				if ch == '-' {
					sign = -1
				}
				continue
			}
			if err := apply(); err != nil {
				return 0, err
			}
			if ch == '+' {
				sign = 1
			} else {
				sign = -1
			}
		case ' ', '\t':
			// skip
		default:
			term += string(ch)
		}
	}
	if err := apply(); err != nil {
		return 0, err
	}

	if total < 0 {
		total += 0x10000
	}
	return uint16(total), nil
}

func parseTerm(s string, c *cpu.CPU, hexMode bool) (int64, error) {
	switch strings.ToLower(s) {
	case "a":
		return int64(c.Reg.A), nil
	case "x":
		return int64(c.Reg.X), nil
	case "y":
		return int64(c.Reg.Y), nil
	case "sp":
		return int64(c.Reg.SP) | 0x0100, nil
	case ".", "pc":
		return int64(c.Reg.PC), nil
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		base, s = 16, s[1:]
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case hexMode:
		base = 16
	}

	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value '%s'", s)
	}
	return v, nil
}
