package cpu_test

import (
	"errors"
	"testing"

	"github.com/beevik/basic6502/bus"
	"github.com/beevik/basic6502/cpu"
)

// loadCPU builds a 64K bus, copies 'code' to 'origin', points the reset
// vector at it, and returns a CPU that has been reset.
func loadCPU(t *testing.T, origin uint16, code []byte) *cpu.CPU {
	t.Helper()

	b, err := bus.New(0x10000)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.CopyBytes(origin, code); err != nil {
		t.Fatal(err)
	}
	b.StoreAddress(0xfffc, origin)

	c, err := cpu.NewCPU(b)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func stepCPU(t *testing.T, c *cpu.CPU, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	if c.Reg.A != acc {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
	}
}

func expectSP(t *testing.T, c *cpu.CPU, sp byte) {
	t.Helper()
	if c.Reg.SP != sp {
		t.Errorf("Stack pointer incorrect. exp: $%02X, got: $%02X", sp, c.Reg.SP)
	}
}

func expectMem(t *testing.T, c *cpu.CPU, addr uint16, v byte) {
	t.Helper()
	got := c.Mem.LoadByte(addr)
	if got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func expectFlag(t *testing.T, name string, got, exp bool) {
	t.Helper()
	if got != exp {
		t.Errorf("%s flag incorrect. exp: %v, got: %v", name, exp, got)
	}
}

func TestNullMemory(t *testing.T) {
	if _, err := cpu.NewCPU(nil); !errors.Is(err, cpu.ErrNullMemory) {
		t.Errorf("expected ErrNullMemory, got %v", err)
	}

	c := loadCPU(t, 0x8000, []byte{0xea})
	if err := c.SetMemory(nil); !errors.Is(err, cpu.ErrNullMemory) {
		t.Errorf("expected ErrNullMemory, got %v", err)
	}
}

func TestResetVector(t *testing.T) {
	c := loadCPU(t, 0x1234, []byte{0xea})

	expectPC(t, c, 0x1234)
	expectSP(t, c, 0xfd)
	if ps := c.Reg.SavePS(false); ps != cpu.InterruptDisableBit|cpu.ReservedBit {
		t.Errorf("PS after reset incorrect. exp: $%02X, got: $%02X",
			cpu.InterruptDisableBit|cpu.ReservedBit, ps)
	}
}

func TestLoadFlags(t *testing.T) {
	// LDA #v for every value of v.
	c := loadCPU(t, 0x8000, []byte{0xa9, 0x00})
	for v := 0; v < 256; v++ {
		c.Mem.StoreByte(0x8001, byte(v))
		c.SetPC(0x8000)
		stepCPU(t, c, 1)

		expectACC(t, c, byte(v))
		expectFlag(t, "Zero", c.Reg.Zero, v == 0)
		expectFlag(t, "Negative", c.Reg.Negative, v&0x80 != 0)
	}
}

func TestTransferFlags(t *testing.T) {
	// LDX #v, TXA, TAY exercise Z/N propagation through transfers.
	c := loadCPU(t, 0x8000, []byte{0xa2, 0x00, 0x8a, 0xa8})
	for _, v := range []byte{0x00, 0x01, 0x7f, 0x80, 0xff} {
		c.Mem.StoreByte(0x8001, v)
		c.SetPC(0x8000)
		stepCPU(t, c, 3)

		if c.Reg.Y != v {
			t.Errorf("Y incorrect. exp: $%02X, got: $%02X", v, c.Reg.Y)
		}
		expectFlag(t, "Zero", c.Reg.Zero, v == 0)
		expectFlag(t, "Negative", c.Reg.Negative, v&0x80 != 0)
	}
}

func TestTXSFlagsUntouched(t *testing.T) {
	// TXS must not touch Z/N even when X is zero.
	c := loadCPU(t, 0x8000, []byte{0xa9, 0x01, 0xa2, 0x00, 0x9a})
	stepCPU(t, c, 2) // LDA #$01 leaves Zero clear; LDX #$00 sets it
	stepCPU(t, c, 1) // TXS
	expectSP(t, c, 0x00)
	expectFlag(t, "Zero", c.Reg.Zero, true)
}

func TestADCBinaryExhaustive(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0x69, 0x00})
	for a := 0; a < 256; a++ {
		for m := 0; m < 256; m++ {
			for carry := 0; carry < 2; carry++ {
				c.Mem.StoreByte(0x8001, byte(m))
				c.SetPC(0x8000)
				c.Reg.A = byte(a)
				c.Reg.Carry = carry == 1
				c.Reg.Decimal = false
				stepCPU(t, c, 1)

				sum := a + m + carry
				if c.Reg.A != byte(sum) {
					t.Fatalf("ADC %02X+%02X+%d: A exp $%02X, got $%02X",
						a, m, carry, byte(sum), c.Reg.A)
				}
				if c.Reg.Carry != (sum > 0xff) {
					t.Fatalf("ADC %02X+%02X+%d: carry exp %v", a, m, carry, sum > 0xff)
				}
				expOverflow := (a&0x80) == (m&0x80) && (a&0x80) != (sum&0x80)
				if c.Reg.Overflow != expOverflow {
					t.Fatalf("ADC %02X+%02X+%d: overflow exp %v", a, m, carry, expOverflow)
				}
			}
		}
	}
}

func TestSBCBinaryExhaustive(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0xe9, 0x00})
	for a := 0; a < 256; a++ {
		for m := 0; m < 256; m++ {
			for carry := 0; carry < 2; carry++ {
				c.Mem.StoreByte(0x8001, byte(m))
				c.SetPC(0x8000)
				c.Reg.A = byte(a)
				c.Reg.Carry = carry == 1
				c.Reg.Decimal = false
				stepCPU(t, c, 1)

				diff := a - m - (1 - carry)
				if c.Reg.A != byte(diff) {
					t.Fatalf("SBC %02X-%02X-%d: A exp $%02X, got $%02X",
						a, m, 1-carry, byte(diff), c.Reg.A)
				}
				if c.Reg.Carry != (diff >= 0) {
					t.Fatalf("SBC %02X-%02X: carry exp %v", a, m, diff >= 0)
				}
				expOverflow := (a&0x80) != (m&0x80) && (a&0x80) != (diff&0x80)
				if c.Reg.Overflow != expOverflow {
					t.Fatalf("SBC %02X-%02X-%d: overflow exp %v", a, m, 1-carry, expOverflow)
				}
			}
		}
	}
}

func TestADCSBCRoundTrip(t *testing.T) {
	// ADC #m with carry c followed by SBC #m with carry (1-c) restores A.
	// The SBC reports no borrow exactly when the ADC produced no carry.
	c := loadCPU(t, 0x8000, []byte{0x69, 0x00, 0xe9, 0x00})
	for _, a := range []byte{0x00, 0x01, 0x40, 0x7f, 0x80, 0xc3, 0xff} {
		for _, m := range []byte{0x00, 0x01, 0x55, 0x80, 0xff} {
			for carry := 0; carry < 2; carry++ {
				c.Mem.StoreByte(0x8001, m)
				c.Mem.StoreByte(0x8003, m)
				c.SetPC(0x8000)
				c.Reg.A = a
				c.Reg.Carry = carry == 1
				c.Reg.Decimal = false
				stepCPU(t, c, 1)
				c.Reg.Carry = carry == 0
				stepCPU(t, c, 1)

				expectACC(t, c, a)
				expectFlag(t, "Carry", c.Reg.Carry, int(a)+int(m)+carry <= 0xff)
			}
		}
	}
}

func TestADCDecimal(t *testing.T) {
	cases := []struct {
		a, m   byte
		carry  bool
		expA   byte
		expC   bool
	}{
		{0x12, 0x34, false, 0x46, false},
		{0x58, 0x46, true, 0x05, true},
		{0x99, 0x01, false, 0x00, true},
		{0x09, 0x01, false, 0x10, false},
		{0x50, 0x50, false, 0x00, true},
	}

	c := loadCPU(t, 0x8000, []byte{0x69, 0x00})
	for _, tc := range cases {
		c.Mem.StoreByte(0x8001, tc.m)
		c.SetPC(0x8000)
		c.Reg.A = tc.a
		c.Reg.Carry = tc.carry
		c.Reg.Decimal = true
		stepCPU(t, c, 1)

		expectACC(t, c, tc.expA)
		expectFlag(t, "Carry", c.Reg.Carry, tc.expC)
	}
}

func TestSBCDecimal(t *testing.T) {
	cases := []struct {
		a, m  byte
		carry bool
		expA  byte
		expC  bool
	}{
		{0x46, 0x12, true, 0x34, true},
		{0x12, 0x21, true, 0x91, false},
		{0x00, 0x00, false, 0x99, false},
		{0x40, 0x13, true, 0x27, true},
	}

	c := loadCPU(t, 0x8000, []byte{0xe9, 0x00})
	for _, tc := range cases {
		c.Mem.StoreByte(0x8001, tc.m)
		c.SetPC(0x8000)
		c.Reg.A = tc.a
		c.Reg.Carry = tc.carry
		c.Reg.Decimal = true
		stepCPU(t, c, 1)

		expectACC(t, c, tc.expA)
		expectFlag(t, "Carry", c.Reg.Carry, tc.expC)
	}
}

func TestZeroPagePointerWrap(t *testing.T) {
	// For every zero-page base b, an (indirect,X) store must fetch its
	// pointer from (b+X)&$FF and (b+X+1)&$FF, never from page 1.
	const x = 0xc0
	c := loadCPU(t, 0x8000, []byte{0x81, 0x00}) // STA (b,X)
	for b := 0; b < 256; b++ {
		for i := 0; i < 256; i++ {
			c.Mem.StoreByte(uint16(i), byte(i))
		}
		lo := uint16((b + x) & 0xff)
		hi := uint16((b + x + 1) & 0xff)
		exp := uint16(c.Mem.LoadByte(lo)) | uint16(c.Mem.LoadByte(hi))<<8

		c.Mem.StoreByte(0x8001, byte(b))
		c.SetPC(0x8000)
		c.Reg.X = x
		c.Reg.A = 0x5a
		stepCPU(t, c, 1)

		if got := c.Mem.LoadByte(exp); got != 0x5a {
			t.Fatalf("base $%02X: store did not land at $%04X", b, exp)
		}
		c.Mem.StoreByte(exp, 0x00)
	}
}

func TestIndirectIndexed(t *testing.T) {
	// (zp),Y reads the pointer from b and (b+1)&$FF.
	c := loadCPU(t, 0x8000, []byte{0xb1, 0xff}) // LDA ($FF),Y
	c.Mem.StoreByte(0x00ff, 0x00)
	c.Mem.StoreByte(0x0000, 0x20) // pointer high byte wraps to $00, not $100
	c.Mem.StoreByte(0x2004, 0x99)
	c.Reg.Y = 0x04
	stepCPU(t, c, 1)
	expectACC(t, c, 0x99)
}

func TestJmpIndirectPageWrap(t *testing.T) {
	// JMP ($02FF) fetches its high byte from $0200, not $0300.
	c := loadCPU(t, 0x8000, []byte{0x6c, 0xff, 0x02})
	c.Mem.StoreByte(0x02ff, 0x34)
	c.Mem.StoreByte(0x0200, 0x12)
	c.Mem.StoreByte(0x0300, 0x56)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x1234)
}

func TestUnusedBitAlwaysSet(t *testing.T) {
	// The reserved status bit reads as 1 after every instruction,
	// including a PLP that pulls a byte with the bit clear.
	code := []byte{
		0xa9, 0x00, // LDA #$00
		0x48,       // PHA
		0x28,       // PLP
		0xa9, 0x80, // LDA #$80
		0x38, // SEC
		0xf8, // SED
	}
	c := loadCPU(t, 0x8000, code)
	for i := 0; i < 6; i++ {
		stepCPU(t, c, 1)
		if c.Reg.SavePS(false)&cpu.ReservedBit == 0 {
			t.Errorf("reserved bit clear after step %d", i)
		}
	}
}

func TestStackRoundTrip(t *testing.T) {
	code := []byte{
		0xa9, 0x11, // LDA #$11
		0x48,       // PHA
		0xa9, 0x12, // LDA #$12
		0x48,       // PHA
		0xa9, 0x13, // LDA #$13
		0x48, // PHA
		0x68, // PLA
		0x68, // PLA
		0x68, // PLA
	}
	c := loadCPU(t, 0x8000, code)
	stepCPU(t, c, 6)

	expectSP(t, c, 0xfa)
	expectACC(t, c, 0x13)
	expectMem(t, c, 0x1fd, 0x11)
	expectMem(t, c, 0x1fc, 0x12)
	expectMem(t, c, 0x1fb, 0x13)

	stepCPU(t, c, 3)
	expectACC(t, c, 0x11)
	expectSP(t, c, 0xfd)
}

func TestPHPPLP(t *testing.T) {
	// PHP pushes the status with the Break bit on; PLP discards it and
	// forces the reserved bit.
	code := []byte{
		0x38, // SEC
		0x08, // PHP
		0x18, // CLC
		0x28, // PLP
	}
	c := loadCPU(t, 0x8000, code)
	stepCPU(t, c, 2)

	pushed := c.Mem.LoadByte(0x01fd)
	if pushed&cpu.BreakBit == 0 {
		t.Error("PHP did not set the break bit in the pushed byte")
	}
	if pushed&cpu.CarryBit == 0 {
		t.Error("PHP lost the carry bit")
	}

	stepCPU(t, c, 2)
	expectFlag(t, "Carry", c.Reg.Carry, true)
	expectSP(t, c, 0xfd)
}

func TestSubroutine(t *testing.T) {
	// Main program stores 5, calls a subroutine that increments the
	// stored value and loads it back.
	main := []byte{
		0xa9, 0x05, // LDA #$05
		0x8d, 0x00, 0x02, // STA $0200
		0x20, 0x00, 0x90, // JSR $9000
		0x00, // BRK
	}
	sub := []byte{
		0xee, 0x00, 0x02, // INC $0200
		0xad, 0x00, 0x02, // LDA $0200
		0x60, // RTS
	}
	c := loadCPU(t, 0x8000, main)
	if err := c.Mem.(*bus.Bus).CopyBytes(0x9000, sub); err != nil {
		t.Fatal(err)
	}

	stepCPU(t, c, 6)
	expectMem(t, c, 0x0200, 0x06)
	expectACC(t, c, 0x06)
	expectPC(t, c, 0x8008)
	expectSP(t, c, 0xfd)
}

func TestJSRStackLayout(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0x20, 0x00, 0x90})
	stepCPU(t, c, 1)

	expectPC(t, c, 0x9000)
	expectSP(t, c, 0xfb)
	// Return address (JSR address + 2) reads back low-then-high as a
	// little-endian word.
	if got := c.Mem.LoadAddress(0x01fc); got != 0x8002 {
		t.Errorf("pushed return address exp $8002, got $%04X", got)
	}
}

func TestStackPointerWrap(t *testing.T) {
	code := []byte{
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0xa9, 0x77, // LDA #$77
		0x48, // PHA
	}
	c := loadCPU(t, 0x8000, code)
	stepCPU(t, c, 4)

	expectMem(t, c, 0x0100, 0x77)
	expectSP(t, c, 0xff)
}

func TestPCWrap(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0xea})
	c.Mem.StoreByte(0xffff, 0xea) // NOP at the top of memory
	c.SetPC(0xffff)
	stepCPU(t, c, 1)
	expectPC(t, c, 0x0000)
}

func TestPageCrossCycles(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0xbd, 0xff, 0x10}) // LDA $10FF,X

	c.Reg.X = 0
	c.SetPC(0x8000)
	cycles, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 4 {
		t.Errorf("LDA abs,X same page: exp 4 cycles, got %d", cycles)
	}

	c.Reg.X = 1
	c.SetPC(0x8000)
	cycles, err = c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 5 {
		t.Errorf("LDA abs,X page crossed: exp 5 cycles, got %d", cycles)
	}
}

func TestStoreNoPageCrossPenalty(t *testing.T) {
	// STA abs,X always costs 5 cycles; crossing a page adds nothing.
	c := loadCPU(t, 0x8000, []byte{0x9d, 0xff, 0x10}) // STA $10FF,X
	for _, x := range []byte{0, 1} {
		c.Reg.X = x
		c.SetPC(0x8000)
		cycles, err := c.Step()
		if err != nil {
			t.Fatal(err)
		}
		if cycles != 5 {
			t.Errorf("STA abs,X with X=%d: exp 5 cycles, got %d", x, cycles)
		}
	}
}

func TestBranchCycles(t *testing.T) {
	// Not taken: 2 cycles.
	c := loadCPU(t, 0x8000, []byte{0xd0, 0x10}) // BNE +$10
	c.Reg.Zero = true
	cycles, _ := c.Step()
	if cycles != 2 {
		t.Errorf("branch not taken: exp 2 cycles, got %d", cycles)
	}
	expectPC(t, c, 0x8002)

	// Taken, same page: 3 cycles.
	c.SetPC(0x8000)
	c.Reg.Zero = false
	cycles, _ = c.Step()
	if cycles != 3 {
		t.Errorf("branch taken: exp 3 cycles, got %d", cycles)
	}
	expectPC(t, c, 0x8012)

	// Taken, crossing into the previous page: 4 cycles.
	c.Mem.StoreByte(0x8001, 0x80) // BNE -$80
	c.SetPC(0x8000)
	c.Reg.Zero = false
	cycles, _ = c.Step()
	if cycles != 4 {
		t.Errorf("branch taken across page: exp 4 cycles, got %d", cycles)
	}
	expectPC(t, c, 0x7f82)
}

func TestBranchTaken(t *testing.T) {
	code := []byte{
		0xa9, 0x00, // LDA #$00
		0xf0, 0x02, // BEQ +2
		0xa9, 0x01, // LDA #$01 (skipped)
		0xa9, 0x05, // LDA #$05
		0x00, // BRK
	}
	c := loadCPU(t, 0x8000, code)
	stepCPU(t, c, 3)
	expectACC(t, c, 0x05)
	expectPC(t, c, 0x8008)
}

func TestBRKAndRTI(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0x00, 0xff, 0xea}) // BRK, padding, NOP
	handler := []byte{0x40}                           // RTI
	if err := c.Mem.(*bus.Bus).CopyBytes(0x9000, handler); err != nil {
		t.Fatal(err)
	}
	c.Mem.(*bus.Bus).StoreAddress(0xfffe, 0x9000)
	c.Reg.Carry = true

	stepCPU(t, c, 1)
	expectPC(t, c, 0x9000)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	expectSP(t, c, 0xfa)

	pushed := c.Mem.LoadByte(0x01fb)
	if pushed&cpu.BreakBit == 0 {
		t.Error("BRK did not set the break bit in the pushed status")
	}
	if got := c.Mem.LoadAddress(0x01fc); got != 0x8002 {
		t.Errorf("BRK return address exp $8002, got $%04X", got)
	}

	stepCPU(t, c, 1) // RTI
	expectPC(t, c, 0x8002)
	expectSP(t, c, 0xfd)
	expectFlag(t, "Carry", c.Reg.Carry, true)
}

func TestIllegalOpcode(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0x02, 0xea}) // undocumented, NOP
	c.Reg.A = 0x42

	_, err := c.Step()
	var illegal *cpu.IllegalOpcodeError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected IllegalOpcodeError, got %v", err)
	}
	if illegal.Opcode != 0x02 {
		t.Errorf("error opcode exp $02, got $%02X", illegal.Opcode)
	}

	// PC advanced past the opcode byte only; other registers untouched.
	expectPC(t, c, 0x8001)
	expectACC(t, c, 0x42)
	expectSP(t, c, 0xfd)

	// The CPU remains usable.
	stepCPU(t, c, 1)
	expectPC(t, c, 0x8002)
}

func TestInstructionLengths(t *testing.T) {
	// Every non-flow-control instruction advances PC by its documented
	// length.
	set := cpu.GetInstructionSet()
	flow := map[string]bool{
		"JMP": true, "JSR": true, "RTS": true, "RTI": true, "BRK": true,
		"BCC": true, "BCS": true, "BEQ": true, "BNE": true,
		"BMI": true, "BPL": true, "BVC": true, "BVS": true,
	}

	for op := 0; op < 256; op++ {
		inst := set.Lookup(byte(op))
		if inst.Illegal() || flow[inst.Name] {
			continue
		}

		c := loadCPU(t, 0x4000, []byte{byte(op), 0x10, 0x41})
		stepCPU(t, c, 1)
		exp := uint16(0x4000) + uint16(inst.Length)
		if c.Reg.PC != exp {
			t.Errorf("%s ($%02X): PC exp $%04X, got $%04X",
				inst.Name, op, exp, c.Reg.PC)
		}
	}
}

func TestRunUntilPC(t *testing.T) {
	code := []byte{
		0xa9, 0x05, // LDA #$05  (2 cycles)
		0xe8,       // INX       (2 cycles)
		0xe8,       // INX       (2 cycles)
		0x4c, 0x08, 0x80, // JMP $8008 (3 cycles)
		0xea, // never reached
		0xea, // NOP at $8008
	}
	c := loadCPU(t, 0x8000, code)

	cycles, err := c.Run(func(c *cpu.CPU) bool { return c.Reg.PC != 0x8008 })
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 9 {
		t.Errorf("cycles exp 9, got %d", cycles)
	}
	expectPC(t, c, 0x8008)
	if c.Reg.X != 2 {
		t.Errorf("X exp 2, got %d", c.Reg.X)
	}
}

func TestRunCycleBudget(t *testing.T) {
	// An infinite loop stopped by a cycle budget. The predicate is
	// consulted between steps only, so the total may exceed the budget by
	// at most one instruction.
	c := loadCPU(t, 0x8000, []byte{0x4c, 0x00, 0x80}) // JMP $8000

	start := c.Cycles
	cycles, err := c.Run(func(c *cpu.CPU) bool { return c.Cycles-start < 30 })
	if err != nil {
		t.Fatal(err)
	}
	if cycles < 30 || cycles > 33 {
		t.Errorf("cycles exp 30..33, got %d", cycles)
	}
}

func TestRunUntilBRK(t *testing.T) {
	code := []byte{
		0xe8, 0xe8, 0xe8, // INX x3
		0x00, // BRK
	}
	c := loadCPU(t, 0x8000, code)

	_, err := c.Run(func(c *cpu.CPU) bool {
		return c.GetInstruction(c.Reg.PC).Name != "BRK"
	})
	if err != nil {
		t.Fatal(err)
	}
	expectPC(t, c, 0x8003)
	if c.Reg.X != 3 {
		t.Errorf("X exp 3, got %d", c.Reg.X)
	}
}

func TestADCOverflowScenario(t *testing.T) {
	// $50 + $50 overflows into the sign bit.
	code := []byte{
		0xa9, 0x50, // LDA #$50
		0x69, 0x50, // ADC #$50
		0x00, // BRK
	}
	c := loadCPU(t, 0x8000, code)
	stepCPU(t, c, 2)

	expectACC(t, c, 0xa0)
	expectFlag(t, "Overflow", c.Reg.Overflow, true)
	expectFlag(t, "Negative", c.Reg.Negative, true)
	expectFlag(t, "Carry", c.Reg.Carry, false)
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, m             byte
		carry, zero, neg bool
	}{
		{0x50, 0x30, true, false, false},
		{0x30, 0x30, true, true, false},
		{0x30, 0x50, false, false, true},
		{0x00, 0x01, false, false, true},
		{0xff, 0x01, true, false, true},
	}

	c := loadCPU(t, 0x8000, []byte{0xc9, 0x00})
	for _, tc := range cases {
		c.Mem.StoreByte(0x8001, tc.m)
		c.SetPC(0x8000)
		c.Reg.A = tc.a
		stepCPU(t, c, 1)

		expectACC(t, c, tc.a) // register unchanged
		expectFlag(t, "Carry", c.Reg.Carry, tc.carry)
		expectFlag(t, "Zero", c.Reg.Zero, tc.zero)
		expectFlag(t, "Negative", c.Reg.Negative, tc.neg)
	}
}

func TestShiftsAndRotates(t *testing.T) {
	// ASL, LSR, ROL, ROR on the accumulator.
	c := loadCPU(t, 0x8000, []byte{0x0a}) // ASL A
	c.Reg.A = 0x81
	stepCPU(t, c, 1)
	expectACC(t, c, 0x02)
	expectFlag(t, "Carry", c.Reg.Carry, true)

	c = loadCPU(t, 0x8000, []byte{0x4a}) // LSR A
	c.Reg.A = 0x01
	stepCPU(t, c, 1)
	expectACC(t, c, 0x00)
	expectFlag(t, "Carry", c.Reg.Carry, true)
	expectFlag(t, "Zero", c.Reg.Zero, true)

	c = loadCPU(t, 0x8000, []byte{0x2a}) // ROL A
	c.Reg.A = 0x80
	c.Reg.Carry = true
	stepCPU(t, c, 1)
	expectACC(t, c, 0x01)
	expectFlag(t, "Carry", c.Reg.Carry, true)

	c = loadCPU(t, 0x8000, []byte{0x6a}) // ROR A
	c.Reg.A = 0x01
	c.Reg.Carry = true
	stepCPU(t, c, 1)
	expectACC(t, c, 0x80)
	expectFlag(t, "Carry", c.Reg.Carry, true)
	expectFlag(t, "Negative", c.Reg.Negative, true)
}

func TestBit(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0x24, 0x40}) // BIT $40
	c.Mem.StoreByte(0x0040, 0xc0)
	c.Reg.A = 0x01
	stepCPU(t, c, 1)

	expectFlag(t, "Zero", c.Reg.Zero, true)
	expectFlag(t, "Negative", c.Reg.Negative, true)
	expectFlag(t, "Overflow", c.Reg.Overflow, true)
}

func TestZeroPageIndexedWrap(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0xb5, 0xf0}) // LDA $F0,X
	c.Mem.StoreByte(0x0010, 0xab)               // ($F0 + $20) & $FF = $10
	c.Reg.X = 0x20
	stepCPU(t, c, 1)
	expectACC(t, c, 0xab)
}

func TestIncDecMemory(t *testing.T) {
	c := loadCPU(t, 0x8000, []byte{0xe6, 0x10, 0xc6, 0x10, 0xc6, 0x10}) // INC/DEC/DEC $10
	c.Mem.StoreByte(0x0010, 0x00)

	stepCPU(t, c, 1)
	expectMem(t, c, 0x0010, 0x01)
	stepCPU(t, c, 2)
	expectMem(t, c, 0x0010, 0xff)
	expectFlag(t, "Negative", c.Reg.Negative, true)
}
