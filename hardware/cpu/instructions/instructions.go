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

package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes. The 8080 encodes register operands in
// the opcode itself so register addressing does not appear here. The modes
// only describe what, if anything, follows the opcode byte.
const (
	Implied       AddressingMode = iota
	Immediate                    // one byte of immediate data
	ImmediateWord                // two bytes of immediate data, low byte first
	Direct                       // two byte memory address, low byte first
	Port                         // one byte IO port number
)

// Operation is the instruction group an opcode belongs to. Opcodes in the
// same group differ only in which register, register pair or condition the
// opcode bits select.
type Operation int

// List of 8080 operations.
const (
	Nop Operation = iota
	Lxi
	Stax
	Inx
	Inr
	Dcr
	Mvi
	Rlc
	Rrc
	Ral
	Rar
	Dad
	Ldax
	Dcx
	Shld
	Lhld
	Daa
	Cma
	Sta
	Lda
	Stc
	Cmc
	Mov
	Hlt
	Add
	Adc
	Sub
	Sbb
	Ana
	Xra
	Ora
	Cmp
	Ret
	RetCond
	Pop
	Jmp
	JmpCond
	Call
	CallCond
	Push
	Rst
	Adi
	Aci
	Sui
	Sbi
	Ani
	Xri
	Ori
	Cpi
	Out
	In
	Xthl
	Pchl
	Sphl
	Xchg
	Di
	Ei
)

// Category of an instruction describes its effect.
type Category int

const (
	Read Category = iota
	Write
	Modify
	Flow
	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each opcode in the instruction set; one per opcode.
type Definition struct {
	OpCode    uint8
	Mnemonic  string
	Operation Operation
	Mode      AddressingMode
	Bytes     int
	Cycles    int

	// additional cycles taken when a conditional call or return is taken.
	// zero for every other instruction, including the conditional jumps
	CyclesBranch int

	Effect Category

	// opcodes with no documented meaning execute as single byte NOPs
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Mode, defn.Effect)
}

// IsConditional returns true if the instruction consults a status flag before
// changing the program counter.
func (defn Definition) IsConditional() bool {
	switch defn.Operation {
	case JmpCond, CallCond, RetCond:
		return true
	}
	return false
}

// Reset returns the opcode of the RST instruction for the given vector. The
// vector must be in the range 0 to 7.
func Reset(vector uint8) uint8 {
	return 0xc7 | (vector&0x07)<<3
}
