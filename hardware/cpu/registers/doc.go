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

// Package registers implements the register types found in the 8080. The
// three types are the: 16 bit registers (program counter and stack pointer),
// the status register, and the 8 bit type used for A, B, C, D, E, H and L.
//
// The 8 bit registers, implemented as the Register type, define all the basic
// operations available to the 8080: load, add, subtract, logical operations
// and rotates. The arithmetic operations return the carry and auxiliary carry
// out of the operation. In addition the type implements the tests required
// for status updates: is the value zero, is the sign bit set, is the parity
// of the value even.
//
// The six general purpose registers can be viewed in pairs, BC, DE and HL,
// through the Pair type. A Pair does not store a value of its own. It simply
// coordinates the two 8 bit registers it is composed of.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	carry, aux := a.Add(10, false)
//	sr.Zero = a.IsZero()
//	sr.Carry = carry
//
// The Value() and FromValue() functions convert the flags to and from the
// processor status word format used by the PUSH PSW and POP PSW instructions.
package registers
