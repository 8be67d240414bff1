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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/softlanding/invader80/disassembly"
	"github.com/softlanding/invader80/hardware/cpu"
	"github.com/softlanding/invader80/hardware/memory"
	"github.com/softlanding/invader80/test"
)

func TestFromMemory(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0000, []uint8{
		0x00,             // NOP
		0x3e, 0x42,       // MVI A,0x42
		0xc3, 0x32, 0x1a, // JMP 0x1a32
		0xd3, 0x02,       // OUT 2
	})

	e, err := disassembly.FromMemory(mem, 0x0000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0000\tNOP")
	test.Equate(t, e.Bytecode, "00")

	e, err = disassembly.FromMemory(mem, 0x0001)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0001\tMVI A,0x42")
	test.Equate(t, e.Bytecode, "3e 42")

	e, err = disassembly.FromMemory(mem, 0x0003)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0003\tJMP 0x1a32")
	test.Equate(t, e.Bytecode, "c3 32 1a")

	e, err = disassembly.FromMemory(mem, 0x0006)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0006\tOUT 0x02")
}

func TestFromResult(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0000, []uint8{0x3e, 0x01, 0xc2, 0x00, 0x10}) // MVI A,1; JNZ 0x1000

	mc := cpu.NewCPU(mem)
	mc.Reset()

	err := mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
	e, err := disassembly.FromResult(mc.LastResult)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0000\tMVI A,0x01")

	// MVI doesn't touch the flags so the zero flag is still clear and the
	// jump is taken
	err = mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)
	e, err = disassembly.FromResult(mc.LastResult)
	test.ExpectedSuccess(t, err)
	test.Equate(t, e.String(), "0x0002\tJNZ 0x1000 [taken]")
}

func TestFromCPU(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0000, []uint8{
		0x3e, 0x42, // MVI A,0x42
		0x3c,             // INR A
		0xc3, 0x00, 0x00, // JMP 0x0000
	})

	mc := cpu.NewCPU(mem)
	mc.Reset()

	curr, next, err := disassembly.FromCPU(mc, mem)
	test.ExpectedSuccess(t, err)
	test.Equate(t, curr.String(), "0x0000\tMVI A,0x42")
	test.Equate(t, next.String(), "0x0002\tINR A")

	// the next entry tracks the program counter, not the last execution
	err = mc.ExecuteInstruction()
	test.ExpectedSuccess(t, err)

	curr, next, err = disassembly.FromCPU(mc, mem)
	test.ExpectedSuccess(t, err)
	test.Equate(t, curr.String(), "0x0002\tINR A")
	test.Equate(t, next.String(), "0x0003\tJMP 0x0000")
}

func TestDisassembleRange(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0000, []uint8{
		0x31, 0x00, 0x24, // LXI SP,0x2400
		0xaf,             // XRA A
		0xcd, 0x00, 0x08, // CALL 0x0800
		0x76, // HLT
	})

	entries, err := disassembly.Disassemble(mem, 0x0000, 0x0007)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(entries), 4)
	test.Equate(t, entries[0].String(), "0x0000\tLXI SP,0x2400")
	test.Equate(t, entries[1].String(), "0x0003\tXRA A")
	test.Equate(t, entries[2].String(), "0x0004\tCALL 0x0800")
	test.Equate(t, entries[3].String(), "0x0007\tHLT")
}

func TestWrite(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0000, []uint8{0xaf, 0x32, 0x00, 0x24}) // XRA A; STA 0x2400

	s := strings.Builder{}
	err := disassembly.Write(&s, mem, disassembly.WriteAttr{ByteCode: true}, 0x0000, 0x0004)
	test.ExpectedSuccess(t, err)

	lines := strings.Split(strings.TrimRight(s.String(), "\n"), "\n")
	test.Equate(t, len(lines), 3)
	if !strings.HasPrefix(lines[0], "af") {
		t.Errorf("expected bytecode prefix in %q", lines[0])
	}
	if !strings.Contains(lines[1], "STA 0x2400") {
		t.Errorf("unexpected disassembly %q", lines[1])
	}
}
