// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host emulates a computer system built around a 6502 CPU: 64K of
// RAM on a memory bus, a console bridge device for character I/O, and an
// interactive monitor able to load binary images, run and step machine
// code, inspect and modify memory and registers, and manage breakpoints.
package host

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/beevik/cmd"

	"github.com/beevik/basic6502/bus"
	"github.com/beevik/basic6502/cpu"
)

var cmds *cmd.Tree

func init() {
	// Create a command tree, where the parameter stored with each command
	// is a host callback capable of handling the command.
	cmds = cmd.NewTree("basic6502", []cmd.Command{
		{
			Name:     "help",
			Shortcut: "?",
			Data:     (*Host).cmdHelp,
		},
		{
			Name:     "breakpoint",
			Shortcut: "b",
			Brief:    "Breakpoint commands",
			Subcommands: cmd.NewTree("Breakpoint", []cmd.Command{
				{
					Name:        "list",
					Brief:       "List breakpoints",
					Description: "List all current breakpoints.",
					HelpText:    "breakpoint list",
					Data:        (*Host).cmdBreakpointList,
				},
				{
					Name:  "add",
					Brief: "Add a breakpoint",
					Description: "Add a breakpoint at the specified address." +
						" The breakpoint starts enabled.",
					HelpText: "breakpoint add <address>",
					Data:     (*Host).cmdBreakpointAdd,
				},
				{
					Name:        "remove",
					Brief:       "Remove a breakpoint",
					Description: "Remove a breakpoint at the specified address.",
					HelpText:    "breakpoint remove <address>",
					Data:        (*Host).cmdBreakpointRemove,
				},
				{
					Name:        "enable",
					Brief:       "Enable a breakpoint",
					Description: "Enable a previously added breakpoint.",
					HelpText:    "breakpoint enable <address>",
					Data:        (*Host).cmdBreakpointEnable,
				},
				{
					Name:  "disable",
					Brief: "Disable a breakpoint",
					Description: "Disable a previously added breakpoint. This" +
						" prevents the breakpoint from being hit when running the" +
						" CPU.",
					HelpText: "breakpoint disable <address>",
					Data:     (*Host).cmdBreakpointDisable,
				},
			}),
		},
		{
			Name:     "databreakpoint",
			Shortcut: "db",
			Brief:    "Data breakpoint commands",
			Subcommands: cmd.NewTree("Data breakpoint", []cmd.Command{
				{
					Name:        "list",
					Brief:       "List data breakpoints",
					Description: "List all current data breakpoints.",
					HelpText:    "databreakpoint list",
					Data:        (*Host).cmdDataBreakpointList,
				},
				{
					Name:  "add",
					Brief: "Add a data breakpoint",
					Description: "Add a new data breakpoint at the specified" +
						" memory address. When the CPU stores data at this address," +
						" the breakpoint will stop the CPU. Optionally, a byte value" +
						" may be specified, and the CPU will stop only when this" +
						" value is stored. The data breakpoint starts enabled.",
					HelpText: "databreakpoint add <address> [<value>]",
					Data:     (*Host).cmdDataBreakpointAdd,
				},
				{
					Name:  "remove",
					Brief: "Remove a data breakpoint",
					Description: "Remove a previously added data breakpoint at" +
						" the specified memory address.",
					HelpText: "databreakpoint remove <address>",
					Data:     (*Host).cmdDataBreakpointRemove,
				},
				{
					Name:        "enable",
					Brief:       "Enable a data breakpoint",
					Description: "Enable a previously added data breakpoint.",
					HelpText:    "databreakpoint enable <address>",
					Data:        (*Host).cmdDataBreakpointEnable,
				},
				{
					Name:        "disable",
					Brief:       "Disable a data breakpoint",
					Description: "Disable a previously added data breakpoint.",
					HelpText:    "databreakpoint disable <address>",
					Data:        (*Host).cmdDataBreakpointDisable,
				},
			}),
		},
		{
			Name:     "console",
			Shortcut: "c",
			Brief:    "Enter console mode",
			Description: "Run the CPU with the terminal attached to the" +
				" console bridge device. Keystrokes are fed to the running" +
				" program and its output appears on the terminal. Press ctrl-C" +
				" to return to the monitor.",
			HelpText: "console",
			Data:     (*Host).cmdConsole,
		},
		{
			Name:     "input",
			Shortcut: "i",
			Brief:    "Queue console input",
			Description: "Queue a line of text on the console bridge's input" +
				" buffer, followed by a carriage return. The running program" +
				" sees it as typed input.",
			HelpText: "input <text>",
			Data:     (*Host).cmdInput,
		},
		{
			Name:     "load",
			Shortcut: "l",
			Brief:    "Load a binary file",
			Description: "Load the contents of a binary file into the emulated" +
				" system's RAM at the specified address. Devices are not" +
				" touched. If the image includes the vector table at $FFFA-" +
				" $FFFF, a subsequent reset starts the loaded program.",
			HelpText: "load <filename> <address>",
			Data:     (*Host).cmdLoad,
		},
		{
			Name:  "memory",
			Brief: "Memory commands",
			Subcommands: cmd.NewTree("Memory", []cmd.Command{
				{
					Name:  "dump",
					Brief: "Dump memory at address",
					Description: "Dump the contents of memory starting from the" +
						" specified address. The number of bytes to dump may be" +
						" specified as an option.",
					HelpText: "memory dump [<address>] [<bytes>]",
					Data:     (*Host).cmdMemoryDump,
				},
				{
					Name:  "set",
					Brief: "Set memory at address",
					Description: "Set the contents of memory starting from the" +
						" specified address. The values to assign should be a" +
						" series of space-separated byte values. You may use an" +
						" expression for each byte value.",
					HelpText: "memory set <address> <byte> [<byte> ...]",
					Data:     (*Host).cmdMemorySet,
				},
				{
					Name:  "copy",
					Brief: "Copy memory",
					Description: "Copy memory from one range of addresses to" +
						" another. You must specify the destination address, the" +
						" first byte of the source address, and the last byte of" +
						" the source address.",
					HelpText: "memory copy <dst addr> <src addr begin> <src addr end>",
					Data:     (*Host).cmdMemoryCopy,
				},
			}),
		},
		{
			Name:     "quit",
			Shortcut: "q",
			Brief:    "Quit the program",
			Data:     (*Host).cmdQuit,
		},
		{
			Name:     "register",
			Shortcut: "r",
			Brief:    "View or change register values",
			Description: "When used without arguments, this command displays" +
				" the current contents of the CPU registers. When used with" +
				" arguments, this command changes the value of a register or" +
				" one of the CPU's status flags. Allowed register names include" +
				" A, X, Y, PC and SP. Allowed status flag names include" +
				" N (Negative), Z (Zero), C (Carry), I (InterruptDisable)," +
				" D (Decimal) and V (Overflow).",
			HelpText: "register [<name> <value>]",
			Data:     (*Host).cmdRegister,
		},
		{
			Name:  "reset",
			Brief: "Reset the CPU",
			Description: "Re-initialize the CPU registers and reload the" +
				" program counter from the reset vector at $FFFC. Memory is" +
				" left untouched.",
			HelpText: "reset",
			Data:     (*Host).cmdReset,
		},
		{
			Name:  "run",
			Brief: "Run the CPU",
			Description: "Run the CPU until the optional stop address is" +
				" reached, a breakpoint is hit, an illegal opcode fails the" +
				" step, or the user types ctrl-C.",
			HelpText: "run [<stop address>]",
			Data:     (*Host).cmdRun,
		},
		{
			Name:  "set",
			Brief: "Set a configuration variable",
			Description: "Set the value of a configuration variable. To see" +
				" the current values of all configuration variables, type set" +
				" without any arguments.",
			HelpText: "set [<var> <value>]",
			Data:     (*Host).cmdSet,
		},
		{
			Name:  "step",
			Brief: "Step the CPU",
			Subcommands: cmd.NewTree("Step", []cmd.Command{
				{
					Name:  "in",
					Brief: "Step into next instruction",
					Description: "Step the CPU by a single instruction. If the" +
						" instruction is a subroutine call, step into the" +
						" subroutine. The number of steps may be specified as an" +
						" option.",
					HelpText: "step in [<count>]",
					Data:     (*Host).cmdStepIn,
				},
				{
					Name:  "over",
					Brief: "Step over next instruction",
					Description: "Step the CPU by a single instruction. If the" +
						" instruction is a subroutine call, step over the" +
						" subroutine. The number of steps may be specified as an" +
						" option.",
					HelpText: "step over [<count>]",
					Data:     (*Host).cmdStepOver,
				},
			}),
		},
	})
}

const memSize = 0x10000

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
)

// A Host represents a fully emulated 6502 system: a CPU, 64K of RAM on a
// memory bus, a console bridge device, and an interactive monitor.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	bus         *bus.Bus
	con         *bus.Console
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	lastCmd     *cmd.Selection
	state       state
	settings    *settings
}

// New creates a new 6502 host environment.
func New() *Host {
	h := &Host{
		state:    stateProcessingCommands,
		settings: newSettings(),
		output:   bufio.NewWriter(os.Stdout),
	}

	// Create the emulated bus and attach the console bridge. Console
	// output is routed back through the host's writer.
	h.bus, _ = bus.New(memSize)
	h.con = bus.NewConsole(h)
	h.bus.Attach(h.con)

	// Create the emulated CPU.
	h.cpu, _ = cpu.NewCPU(h.bus)

	// Create a CPU debugger and attach it to the CPU.
	h.debugger = cpu.NewDebugger(h)
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
		h.displayPC()
	}

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				h.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v.\n", err)
				continue
			}
		} else if h.lastCmd != nil {
			c = *h.lastCmd
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		err = handler(h, c)
		if err != nil {
			break
		}
	}
}

// Break interrupts a running CPU.
func (h *Host) Break() {
	h.println()

	if h.state == stateRunning {
		h.displayPC()
	}
	if h.state == stateProcessingCommands {
		h.prompt()
	}
	h.state = stateProcessingCommands
}

// Write sends p to the host's output; the console bridge uses the host as
// its output sink. Output is flushed eagerly so a running program's
// characters appear as they are emitted.
func (h *Host) Write(p []byte) (n int, err error) {
	n, err = h.output.Write(p)
	h.flush()
	return n, err
}

func (h *Host) printf(format string, args ...interface{}) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...interface{}) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
		h.flush()
	}
}

// displayPC prints the current instruction bytes and register contents.
func (h *Host) displayPC() {
	if !h.interactive {
		return
	}

	pc := h.cpu.Reg.PC
	inst := h.cpu.GetInstruction(pc)
	b := make([]byte, inst.Length)
	h.cpu.Mem.LoadBytes(pc, b)

	h.printf("%04X-   %-8s  %-4s  %s\n",
		pc, codeString(b), inst.Name, registerString(h.cpu))
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.Breakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if h.debugger.FindBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint removed from $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	return h.enableBreakpoint(c, false)
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	return h.enableBreakpoint(c, true)
}

func (h *Host) enableBreakpoint(c cmd.Selection, disable bool) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.FindBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = disable
	verb := "enabled"
	if disable {
		verb = "disabled"
	}
	h.printf("Breakpoint at $%04X %s.\n", addr, verb)
	return nil
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.DataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-7v  $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-7v  <any>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.AddDataBreakpoint(addr)

	if len(c.Args) >= 2 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b.Conditional = true
		b.Value = byte(value)
		h.printf("Data breakpoint added at $%04X for value $%02X.\n", addr, b.Value)
	} else {
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}
	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	if h.debugger.FindDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint removed from $%04X.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	return h.enableDataBreakpoint(c, false)
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	return h.enableDataBreakpoint(c, true)
}

func (h *Host) enableDataBreakpoint(c cmd.Selection, disable bool) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := h.debugger.FindDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = disable
	verb := "enabled"
	if disable {
		verb = "disabled"
	}
	h.printf("Data breakpoint at $%04X %s.\n", addr, verb)
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		h.displayCommands(cmds)
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			h.printf("%v\n", err)
		} else {
			switch {
			case s.Command.Subcommands != nil:
				h.displayCommands(s.Command.Subcommands)
			default:
				if s.Command.HelpText != "" {
					h.printf("Syntax: %s\n\n", s.Command.HelpText)
				}
				switch {
				case s.Command.Description != "":
					h.printf("Description:\n%s\n\n", indentWrap(3, s.Command.Description))
				case s.Command.Brief != "":
					h.printf("Description:\n%s.\n\n", indentWrap(3, s.Command.Brief))
				}
			}
		}
	}
	return nil
}

func (h *Host) cmdInput(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	line := strings.Join(c.Args, " ")
	h.con.SubmitInput(line + "\r")
	h.printf("Queued %d character(s) of console input.\n", len(line)+1)
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}

	filename := c.Args[0]
	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		h.printf("Failed to open '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	if err := h.bus.CopyBytes(addr, data); err != nil {
		h.printf("Failed to load '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	h.printf("Loaded '%s' to $%04X..$%04X\n",
		filepath.Base(filename), addr, int(addr)+len(data)-1)
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	var addr uint16
	if len(c.Args) > 0 {
		switch c.Args[0] {
		case "$":
			addr = h.settings.NextMemDumpAddr
		case ".":
			addr = h.cpu.Reg.PC
		default:
			a, err := h.parseExpr(c.Args[0])
			if err != nil {
				h.printf("%v\n", err)
				return nil
			}
			addr = a
		}
	} else {
		addr = h.settings.NextMemDumpAddr
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		var err error
		bytes, err = h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	for i, s := range c.Args[1:] {
		v, err := h.parseExpr(s)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.Mem.StoreByte(addr+uint16(i), byte(v))
	}
	return nil
}

func (h *Host) cmdMemoryCopy(c cmd.Selection) error {
	if len(c.Args) < 3 {
		h.displayHelpText(c.Command)
		return nil
	}

	var dst, srcB, srcE uint16
	var err error
	if dst, err = h.parseExpr(c.Args[0]); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if srcB, err = h.parseExpr(c.Args[1]); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if srcE, err = h.parseExpr(c.Args[2]); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if srcB > srcE {
		h.println("Source address range invalid.")
		return nil
	}

	b := make([]byte, srcE-srcB+1)
	h.cpu.Mem.LoadBytes(srcB, b)
	h.cpu.Mem.StoreBytes(dst, b)
	h.printf("%d bytes copied from $%04X to $%04X.\n", len(b), srcB, dst)
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("Exiting program")
}

func (h *Host) cmdRegister(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.printf("%s\n", registerString(h.cpu))
		return nil
	}

	name := strings.ToLower(c.Args[0])
	value, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	reg := &h.cpu.Reg
	switch name {
	case "a":
		reg.A = byte(value)
	case "x":
		reg.X = byte(value)
	case "y":
		reg.Y = byte(value)
	case "sp":
		reg.SP = byte(value)
	case "pc", ".":
		reg.PC = value
	case "n":
		reg.Negative = value != 0
	case "z":
		reg.Zero = value != 0
	case "c":
		reg.Carry = value != 0
	case "i":
		reg.InterruptDisable = value != 0
	case "d":
		reg.Decimal = value != 0
	case "v":
		reg.Overflow = value != 0
	default:
		h.printf("Unknown register '%s'.\n", c.Args[0])
		return nil
	}

	h.printf("%s\n", registerString(h.cpu))
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.cpu.Reset()
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	stopAddr := -1
	if len(c.Args) > 0 {
		addr, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		stopAddr = int(addr)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)

	h.state = stateRunning
	_, err := h.cpu.Run(func(c *cpu.CPU) bool {
		if stopAddr >= 0 && c.Reg.PC == uint16(stopAddr) {
			return false
		}
		return h.state == stateRunning
	})
	if err != nil {
		h.printf("%v\n", err)
	}
	h.state = stateProcessingCommands

	h.displayPC()
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayHelpText(c.Command)

	default:
		key, value := c.Args[0], strings.Join(c.Args[1:], " ")

		var err error
		switch h.settings.Kind(key) {
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		case reflect.Int, reflect.Uint16:
			var v uint16
			v, err = h.parseExpr(value)
			if err == nil {
				err = h.settings.Set(key, int(v))
			}
		default:
			err = errors.New("invalid setting")
		}
		if err == nil {
			h.printf("Set %s = %s\n", key, value)
		} else {
			h.printf("%v\n", err)
		}
	}

	return nil
}

func (h *Host) cmdStepIn(c cmd.Selection) error {
	// Parse the number of steps.
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	// Step the CPU count times.
	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		h.step()
		switch {
		case i == h.settings.StepLinesToDisplay:
			h.println("...")
		case i < h.settings.StepLinesToDisplay:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands
	return nil
}

func (h *Host) cmdStepOver(c cmd.Selection) error {
	// Parse the number of steps.
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	// Step over the next instruction count times.
	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		h.stepOver()
		switch {
		case i == h.settings.StepLinesToDisplay:
			h.println("...")
		case i < h.settings.StepLinesToDisplay:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands
	return nil
}

func (h *Host) step() {
	if _, err := h.cpu.Step(); err != nil {
		h.printf("%v\n", err)
		h.state = stateProcessingCommands
	}
}

func (h *Host) stepOver() {
	cpu6502 := h.cpu

	// JSR instructions need to be handled specially.
	inst := cpu6502.GetInstruction(cpu6502.Reg.PC)
	if inst.Name != "JSR" {
		h.step()
		return
	}

	// Place a step-over breakpoint on the instruction following the JSR.
	// Either modify an already existing breakpoint on that instruction, or
	// create a temporary one.
	next := cpu6502.NextAddr(cpu6502.Reg.PC)
	tmpBreakpointCreated := false
	b := h.debugger.FindBreakpoint(next)
	if b == nil {
		b = h.debugger.AddBreakpoint(next)
		tmpBreakpointCreated = true
	}
	b.StepOver = true

	// Run until interrupted.
	for h.state == stateRunning {
		h.step()
	}
	b.StepOver = false

	// If we were interrupted by the temporary step-over breakpoint,
	// then continue as normal.
	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	// Remove the temporarily created breakpoint.
	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) parseExpr(s string) (uint16, error) {
	return parseExpr(s, h.cpu, h.settings.HexMode)
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes < 1 {
		return
	}

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := addr0, 6, 32; a <= addr1; a, c1, c2 = a+1, c1+3, c2+1 {
			m := h.cpu.Mem.LoadByte(a)
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := (uint32(addr1) + 8) & 0xffff8
	if stop > 0x10000 {
		stop = 0x10000
	}

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := h.cpu.Mem.LoadByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) displayHelpText(c *cmd.Command) {
	if c.HelpText != "" {
		h.printf("Syntax: %s\n", c.HelpText)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayCommands(commands *cmd.Tree) {
	h.printf("%s commands:\n", commands.Title)
	for _, c := range commands.Commands {
		if c.Brief != "" {
			h.printf("    %-15s  %s\n", c.Name, c.Brief)
		}
	}
}

// OnBreakpoint is called by the CPU debugger when the program counter
// reaches a breakpoint address.
func (h *Host) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	if b.StepOver {
		h.state = stateStepOverBreakpoint
	} else {
		h.state = stateBreakpoint
		h.printf("Breakpoint hit at $%04X.\n", b.Address)
		h.displayPC()
	}
}

// OnDataBreakpoint is called by the CPU debugger when the CPU stores a
// byte to a data breakpoint address.
func (h *Host) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)

	h.state = stateBreakpoint

	if c.LastPC != c.Reg.PC {
		h.printf("%04X-   (last instruction)\n", c.LastPC)
	}
	h.displayPC()
}
