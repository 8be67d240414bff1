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

package midway

// ShiftRegister is the 16 bit shift register on the Midway board. The video
// hardware stores pixels in one orientation in RAM and the shift register
// lets the program slide an 8 bit window over a 16 bit value, which is how
// sprites are drawn at arbitrary horizontal positions.
type ShiftRegister struct {
	register uint16
	offset   uint8
}

// WriteLow replaces the low byte of the register.
func (sr *ShiftRegister) WriteLow(data uint8) {
	sr.register = sr.register&0xff00 | uint16(data)
}

// WriteHigh replaces the high byte of the register.
func (sr *ShiftRegister) WriteHigh(data uint8) {
	sr.register = sr.register&0x00ff | uint16(data)<<8
}

// SetOffset sets the read window position. Only the low three bits are
// significant.
func (sr *ShiftRegister) SetOffset(offset uint8) {
	sr.offset = offset & 0x07
}

// Read returns the 8 bit window at the current offset. An offset of zero
// reads the high byte.
func (sr *ShiftRegister) Read() uint8 {
	return uint8(sr.register >> (8 - sr.offset))
}
