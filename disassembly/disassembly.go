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
	"io"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/hardware/cpu"
	"github.com/softlanding/invader80/hardware/cpu/execution"
	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/hardware/memory/cpubus"
)

// table of definitions shared by all decodes
var defns = instructions.GetDefinitions()

// FromMemory decodes the instruction at the given address.
func FromMemory(mem cpubus.Memory, address uint16) (Entry, error) {
	opcode, err := mem.Read(address)
	if err != nil {
		return Entry{}, curated.Errorf("disassembly: %v", err)
	}

	defn := defns[opcode]

	var data uint16
	switch defn.Bytes {
	case 2:
		b, err := mem.Read(address + 1)
		if err != nil {
			return Entry{}, curated.Errorf("disassembly: %v", err)
		}
		data = uint16(b)
	case 3:
		lo, err := mem.Read(address + 1)
		if err != nil {
			return Entry{}, curated.Errorf("disassembly: %v", err)
		}
		hi, err := mem.Read(address + 2)
		if err != nil {
			return Entry{}, curated.Errorf("disassembly: %v", err)
		}
		data = uint16(hi)<<8 | uint16(lo)
	}

	return Entry{
		Address:  address,
		Defn:     defn,
		Data:     data,
		Bytecode: formatBytecode(defn, data),
		Operand:  formatOperand(defn, data),
	}, nil
}

// FromResult produces an Entry from the record of an execution. The entry
// carries a note of the branch outcome for conditional instructions.
func FromResult(result execution.Result) (Entry, error) {
	if result.Defn == nil {
		return Entry{}, curated.Errorf("disassembly: %v", "execution result has no instruction definition")
	}

	e := Entry{
		Address:  result.Address,
		Defn:     result.Defn,
		Data:     result.InstructionData,
		Bytecode: formatBytecode(result.Defn, result.InstructionData),
		Operand:  formatOperand(result.Defn, result.InstructionData),
	}

	if result.Defn.IsConditional() {
		if result.BranchSuccess {
			e.BranchNote = "taken"
		} else {
			e.BranchNote = "not taken"
		}
	}

	return e, nil
}

// FromCPU decodes the instruction at the current program counter and the
// instruction that follows it in memory. The next entry is speculative: a
// taken branch or an interrupt will supersede it.
func FromCPU(mc *cpu.CPU, mem cpubus.Memory) (Entry, Entry, error) {
	curr, err := FromMemory(mem, mc.PC.Address())
	if err != nil {
		return Entry{}, Entry{}, err
	}

	next, err := FromMemory(mem, curr.Address+uint16(curr.Defn.Bytes))
	if err != nil {
		return curr, Entry{}, err
	}

	return curr, next, nil
}

// Disassemble decodes every instruction between the two addresses,
// inclusive of the from address.
func Disassemble(mem cpubus.Memory, from uint16, to uint16) ([]Entry, error) {
	entries := make([]Entry, 0, int(to-from)+1)

	address := from
	for address <= to {
		e, err := FromMemory(mem, address)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)

		next := address + uint16(e.Defn.Bytes)
		if next <= address {
			// reached the top of the address space
			break
		}
		address = next
	}

	return entries, nil
}

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// Write the disassembly of a memory range to io.Writer.
func Write(output io.Writer, mem cpubus.Memory, attr WriteAttr, from uint16, to uint16) error {
	entries, err := Disassemble(mem, from, to)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if attr.ByteCode {
			_, err = io.WriteString(output, fmt.Sprintf("%-9s %s\n", e.Bytecode, e.String()))
		} else {
			_, err = io.WriteString(output, fmt.Sprintf("%s\n", e.String()))
		}
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	return nil
}
