// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus implements a 16-bit address-space memory bus composing
// byte-addressable RAM with memory-mapped peripheral devices. The bus
// satisfies the cpu.Memory interface, so a CPU bound to it reaches RAM and
// devices through a single dispatch point.
package bus

import "errors"

// ErrOutOfRange is returned when a bus is constructed with an invalid RAM
// size or when a raw copy extends past the end of RAM.
var ErrOutOfRange = errors.New("Bus address range out of bounds")

// A Bus routes 16-bit addresses to attached devices or, failing that, to
// RAM. Reads above the configured RAM size with no claiming device return
// $FF (open bus); writes there are dropped.
type Bus struct {
	ram     []byte
	devices []Device
}

// New creates a bus with the requested amount of RAM, between 1 byte and
// the full 64K address space.
func New(ramSize int) (*Bus, error) {
	if ramSize < 1 || ramSize > 0x10000 {
		return nil, ErrOutOfRange
	}
	return &Bus{ram: make([]byte, ramSize)}, nil
}

// Attach appends a device to the bus. Devices are consulted in attachment
// order; when two devices claim the same address, the earlier-attached one
// wins. Devices remain attached for the life of the bus.
func (b *Bus) Attach(d Device) {
	b.devices = append(b.devices, d)
}

// LoadByte loads a single byte from the address and returns it.
func (b *Bus) LoadByte(addr uint16) byte {
	for _, d := range b.devices {
		if d.Handles(addr) {
			return d.LoadByte(addr)
		}
	}
	if int(addr) < len(b.ram) {
		return b.ram[addr]
	}
	return 0xff
}

// StoreByte stores a byte to the requested address.
func (b *Bus) StoreByte(addr uint16, v byte) {
	for _, d := range b.devices {
		if d.Handles(addr) {
			d.StoreByte(addr, v)
			return
		}
	}
	if int(addr) < len(b.ram) {
		b.ram[addr] = v
	}
}

// LoadBytes loads multiple bytes starting at the address and stores them
// into the buffer 'buf'. Each byte is routed individually, so device side
// effects occur in address order. Addresses wrap at the top of the 64K
// space.
func (b *Bus) LoadBytes(addr uint16, buf []byte) {
	for i := range buf {
		buf[i] = b.LoadByte(addr + uint16(i))
	}
}

// StoreBytes stores multiple bytes starting at the requested address, one
// routed write per byte.
func (b *Bus) StoreBytes(addr uint16, data []byte) {
	for i, v := range data {
		b.StoreByte(addr+uint16(i), v)
	}
}

// LoadAddress loads a 16-bit little-endian address value from the
// requested address and returns it.
//
// When the address spans 2 pages (i.e., address ends in 0xff), the high
// byte of the loaded address comes from a page-wrapped address. For
// example, LoadAddress on $12FF reads the low byte from $12FF and the high
// byte from $1200. This mimics the behavior of the NMOS 6502.
func (b *Bus) LoadAddress(addr uint16) uint16 {
	lo := b.LoadByte(addr)
	var hi byte
	if (addr & 0xff) == 0xff {
		hi = b.LoadByte(addr - 0xff)
	} else {
		hi = b.LoadByte(addr + 1)
	}
	return uint16(lo) | uint16(hi)<<8
}

// StoreAddress stores a 16-bit address value to the requested address,
// with the same page-wrap behavior as LoadAddress.
func (b *Bus) StoreAddress(addr uint16, v uint16) {
	b.StoreByte(addr, byte(v&0xff))
	if (addr & 0xff) == 0xff {
		b.StoreByte(addr-0xff, byte(v>>8))
	} else {
		b.StoreByte(addr+1, byte(v>>8))
	}
}

// CopyBytes copies raw data directly into RAM starting at 'start',
// bypassing all devices. It is the program/ROM loading primitive. The
// copy fails, leaving RAM untouched, when it would extend past the end of
// configured RAM.
func (b *Bus) CopyBytes(start uint16, data []byte) error {
	if int(start)+len(data) > len(b.ram) {
		return ErrOutOfRange
	}
	copy(b.ram[start:], data)
	return nil
}

// Clear zeroes all RAM bytes. Devices are untouched.
func (b *Bus) Clear() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}
