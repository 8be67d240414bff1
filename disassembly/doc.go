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

// Package disassembly turns bytes in the emulated memory back into readable
// instructions. Entries can be decoded statically from memory with
// FromMemory(), or lifted from the record of an actual execution with
// FromResult(). The second form is the one the debugger uses for its trace
// output because it can also show the branch outcome of conditional
// instructions.
//
// Decoding is linear. A disassembly of a range decodes every byte position
// as though it were the start of an instruction stream, stepping over the
// operands of each decoded instruction. Bytes that are data rather than
// instructions will produce nonsense entries and the reader is expected to
// know the difference.
package disassembly
