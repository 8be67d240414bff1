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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/softlanding/invader80/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the address the opcode was found at
	Address uint16

	Defn *instructions.Definition

	// the data that followed the opcode, if the addressing mode calls for
	// any
	Data uint16

	// string representations of the constituent parts of the entry
	Bytecode string
	Operand  string

	// the branch outcome, when the entry was produced from an execution of a
	// conditional instruction. one of "taken", "not taken" or the empty
	// string
	BranchNote string
}

// formatOperand produces the operand string for a definition and its data.
func formatOperand(defn *instructions.Definition, data uint16) string {
	switch defn.Mode {
	case instructions.Immediate, instructions.Port:
		return fmt.Sprintf("0x%02x", uint8(data))
	case instructions.ImmediateWord, instructions.Direct:
		return fmt.Sprintf("0x%04x", data)
	}
	return ""
}

// formatBytecode produces the raw byte string for a definition and its data.
func formatBytecode(defn *instructions.Definition, data uint16) string {
	switch defn.Bytes {
	case 2:
		return fmt.Sprintf("%02x %02x", defn.OpCode, uint8(data))
	case 3:
		return fmt.Sprintf("%02x %02x %02x", defn.OpCode, uint8(data), uint8(data>>8))
	}
	return fmt.Sprintf("%02x", defn.OpCode)
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x\t%s", e.Address, e.Defn.Mnemonic))

	if e.Operand != "" {
		// mnemonics that already carry a register operand take the data as a
		// second operand
		if strings.Contains(e.Defn.Mnemonic, " ") {
			s.WriteString(",")
		} else {
			s.WriteString(" ")
		}
		s.WriteString(e.Operand)
	}

	if e.BranchNote != "" {
		s.WriteString(fmt.Sprintf(" [%s]", e.BranchNote))
	}

	return s.String()
}
