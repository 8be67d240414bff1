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

package instructions_test

import (
	"testing"

	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/test"
)

func TestTableComplete(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.Equate(t, len(defs), 256)

	undocumented := 0
	for i, d := range defs {
		if d == nil {
			t.Fatalf("no definition for opcode %#02x", i)
		}
		test.Equate(t, d.OpCode, uint8(i))
		if d.Bytes < 1 || d.Bytes > 3 {
			t.Errorf("opcode %#02x has impossible byte count %d", i, d.Bytes)
		}
		if d.Cycles < 4 {
			t.Errorf("opcode %#02x has impossible cycle count %d", i, d.Cycles)
		}
		if d.CyclesBranch != 0 && !d.IsConditional() {
			t.Errorf("opcode %#02x has branch cycles but is not conditional", i)
		}
		if d.Undocumented {
			undocumented++
			test.Equate(t, d.Mnemonic, "NOP")
			test.Equate(t, d.Bytes, 1)
			test.Equate(t, d.Cycles, 4)
		}
	}

	// 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd
	test.Equate(t, undocumented, 12)
}

func TestTableSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.Equate(t, defs[0x00].Mnemonic, "NOP")
	test.Equate(t, defs[0x40].Mnemonic, "MOV B,B")
	test.Equate(t, defs[0x40].Cycles, 5)
	test.Equate(t, defs[0x46].Mnemonic, "MOV B,M")
	test.Equate(t, defs[0x46].Cycles, 7)
	test.Equate(t, defs[0x76].Mnemonic, "HLT")
	test.Equate(t, defs[0x86].Mnemonic, "ADD M")
	test.Equate(t, defs[0x86].Cycles, 7)
	test.Equate(t, defs[0x9f].Mnemonic, "SBB A")
	test.Equate(t, defs[0xc3].Mnemonic, "JMP")
	test.Equate(t, defs[0xc3].Bytes, 3)
	test.Equate(t, defs[0xcd].Cycles, 17)
	test.Equate(t, defs[0xe3].Cycles, 18)
	test.Equate(t, defs[0xf5].Mnemonic, "PUSH PSW")
	test.Equate(t, defs[0xf5].Cycles, 11)
	test.Equate(t, defs[0xf1].Mnemonic, "POP PSW")
	test.Equate(t, defs[0xff].Mnemonic, "RST 7")
	test.Equate(t, defs[0xff].Cycles, 11)

	// conditional calls and returns carry the branch penalty
	test.Equate(t, defs[0xc0].Mnemonic, "RNZ")
	test.Equate(t, defs[0xc0].Cycles, 5)
	test.Equate(t, defs[0xc0].CyclesBranch, 6)
	test.Equate(t, defs[0xdc].Mnemonic, "CC")
	test.Equate(t, defs[0xdc].Cycles, 11)
	test.Equate(t, defs[0xdc].CyclesBranch, 6)
	test.Equate(t, defs[0xca].Mnemonic, "JZ")
	test.Equate(t, defs[0xca].CyclesBranch, 0)
}

func TestReset(t *testing.T) {
	test.Equate(t, instructions.Reset(0), 0xc7)
	test.Equate(t, instructions.Reset(2), 0xd7)
	test.Equate(t, instructions.Reset(7), 0xff)
}
