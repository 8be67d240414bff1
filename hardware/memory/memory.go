// This file is part of Invader80.
//
// Invader80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Invader80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Invader80.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the flat 64KB address space of the 8080 machine.
// There is no memory mapping or bank switching; ROM images are copied
// straight into the array by the Load() function.
package memory

// Size of the 8080 address space in bytes. Fixed by the width of the address
// bus.
const Size = 0x10000

// Addresses of the video RAM region on Midway 8080 hardware. Only of
// interest to display collaborators; the CPU sees no distinction.
const (
	VideoRAMOrigin = 0x2400
	VideoRAMMemtop = 0x3fff
)

// RAM is the fully populated 64KB address space. Every address is readable
// and writable - there are no protected regions.
type RAM struct {
	internal []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is allocated once and zero-filled.
func NewRAM() *RAM {
	return &RAM{
		internal: make([]uint8, Size),
	}
}

// Snapshot creates a copy of the RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.internal = make([]uint8, Size)
	copy(n.internal, ram.internal)
	return &n
}

// Clear sets every byte in the address space to zero.
func (ram *RAM) Clear() {
	for i := range ram.internal {
		ram.internal[i] = 0
	}
}

// Read implements the cpubus.Memory interface. It never returns an error.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.internal[address], nil
}

// Write implements the cpubus.Memory interface. It never returns an error.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.internal[address] = data
	return nil
}

// Load copies data into memory starting at the base address. Addresses wrap
// at the top of the address space rather than erroring; callers that require
// strict bounds must check the length before calling.
func (ram *RAM) Load(base uint16, data []uint8) {
	addr := base
	for _, b := range data {
		ram.internal[addr] = b
		addr++
	}
}

// Peek returns the byte at the address without the ceremony of the
// cpubus.Memory interface. For inspection tools.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.internal[address]
}

// VideoSlice returns a copy of the Midway video RAM region. For display
// collaborators.
func (ram *RAM) VideoSlice() []uint8 {
	s := make([]uint8, VideoRAMMemtop-VideoRAMOrigin+1)
	copy(s, ram.internal[VideoRAMOrigin:VideoRAMMemtop+1])
	return s
}
