// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

// A Device is a memory-mapped peripheral attached to the bus. The bus asks
// the device whether it claims an address before routing a load or store
// to it; LoadByte and StoreByte are never called with an address the
// device disclaims. A well-behaved device nevertheless returns a stable
// value (0 will do) for any disclaimed load.
//
// Devices may hold arbitrary mutable state. Unless documented otherwise, a
// device is not safe for concurrent use; the host serializes access.
type Device interface {
	// Handles reports whether the device claims the address.
	Handles(addr uint16) bool

	// LoadByte loads a single byte from one of the device's registers.
	LoadByte(addr uint16) byte

	// StoreByte stores a byte to one of the device's registers.
	StoreByte(addr uint16, v byte)
}
