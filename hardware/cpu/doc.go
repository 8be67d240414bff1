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

// Package cpu emulates the Intel 8080. It is accurate to the instruction
// level, with cycle counts accumulated per instruction rather than per
// machine cycle.
//
// The CPU is driven with the ExecuteInstruction() function. Each call
// executes exactly one instruction, or dispatches a pending interrupt, or
// idles for one cycle if the CPU has executed a HLT. The result of the call
// is recorded in the LastResult field, which sub-systems like the debugger
// and the disassembler can inspect.
//
// Interrupting devices present a whole opcode with RaiseInterrupt(). On real
// hardware the device places the opcode on the data bus during the interrupt
// acknowledge machine cycle. In almost all cases the opcode is one of the RST
// instructions and the instructions.Reset() function helps with building
// those.
package cpu
