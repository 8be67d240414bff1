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

package cpu_test

import (
	"testing"

	"github.com/softlanding/invader80/hardware/cpu"
	"github.com/softlanding/invader80/hardware/cpu/execution"
	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %#04x)", d, value, address)
	}
}

func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// mockDev records the traffic on the IO ports.
type mockDev struct {
	lastPort uint8
	lastData uint8
	input    uint8
}

func (dev *mockDev) Input(port uint8) (uint8, error) {
	dev.lastPort = port
	return dev.input, nil
}

func (dev *mockDev) Output(port uint8, data uint8) error {
	dev.lastPort = port
	dev.lastData = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

func TestDataTransfer(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// MVI B; MOV C,B; MVI M; LXI H; MOV A,M
	var origin uint16
	origin = mem.putInstructions(origin, 0x06, 0x99, 0x48)
	origin = mem.putInstructions(origin, 0x21, 0x00, 0x30, 0x36, 0x42, 0x7e)

	r := step(t, mc)
	test.Equate(t, r.Defn.Mnemonic, "MVI B")
	test.Equate(t, mc.B.Value(), 0x99)

	r = step(t, mc)
	test.Equate(t, r.Defn.Mnemonic, "MOV C,B")
	test.Equate(t, r.Defn.Cycles, 5)
	test.Equate(t, mc.C.Value(), 0x99)

	// flags are never touched by the MOV group
	test.Equate(t, mc.Status.Sign, false)
	test.Equate(t, mc.Status.Zero, false)

	step(t, mc)
	test.Equate(t, mc.HL.Address(), 0x3000)
	r = step(t, mc)
	test.Equate(t, r.Defn.Cycles, 10)
	mem.assert(t, 0x3000, 0x42)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)

	// LDA; STA; LHLD; SHLD; XCHG; LDAX B; STAX D
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000,
		0x3a, 0x00, 0x30, // LDA 0x3000
		0x32, 0x01, 0x30, // STA 0x3001
		0x2a, 0x10, 0x30, // LHLD 0x3010
		0x22, 0x12, 0x30, // SHLD 0x3012
		0x11, 0xcd, 0xab, // LXI D
		0xeb, // XCHG
	)
	mem.putInstructions(0x3000, 0x77)
	mem.putInstructions(0x3010, 0x34, 0x12)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x77)
	step(t, mc)
	mem.assert(t, 0x3001, 0x77)
	r = step(t, mc)
	test.Equate(t, r.Defn.Cycles, 16)
	test.Equate(t, mc.HL.Address(), 0x1234)
	step(t, mc)
	mem.assert(t, 0x3012, 0x34)
	mem.assert(t, 0x3013, 0x12)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL.Address(), 0xabcd)
	test.Equate(t, mc.DE.Address(), 0x1234)
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// ADD B with carry and auxiliary carry out
	mem.putInstructions(0x0000, 0x3e, 0xff, 0x06, 0x01, 0x80)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.AuxCarry, true)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Parity, true)
	test.Equate(t, mc.Status.Sign, false)

	// ADC folds the carry in
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x37, 0x3e, 0x01, 0xce, 0x01) // STC; MVI A; ACI 1
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x03)
	test.Equate(t, mc.Status.Carry, false)

	// SUI with borrow out
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x01, 0xd6, 0x06) // MVI A,1; SUI 6
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xfb)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Sign, true)
}

func TestIncrementDecrement(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// INR and DCR never touch the carry flag
	mem.putInstructions(0x0000, 0x37, 0x3e, 0xff, 0x3c, 0x3d) // STC; MVI A,0xff; INR A; DCR A
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Defn.Mnemonic, "INR A")
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.AuxCarry, true)
	test.Equate(t, mc.Status.Carry, true)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Sign, true)

	// INR M operates on memory through HL
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x21, 0x00, 0x30, 0x34) // LXI H; INR M
	mem.putInstructions(0x3000, 0x0f)
	step(t, mc)
	r = step(t, mc)
	test.Equate(t, r.Defn.Cycles, 10)
	mem.assert(t, 0x3000, 0x10)
	test.Equate(t, mc.Status.AuxCarry, true)

	// INX and DCX touch no flags at all
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x01, 0xff, 0xff, 0x03, 0x0b) // LXI B,0xffff; INX B; DCX B
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.BC.Address(), 0x0000)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Carry, false)
	step(t, mc)
	test.Equate(t, mc.BC.Address(), 0xffff)
}

func TestDoubleAdd(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// DAD affects carry and only carry
	mem.putInstructions(0x0000,
		0x21, 0x00, 0x80, // LXI H,0x8000
		0x29, // DAD H
	)
	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Defn.Mnemonic, "DAD H")
	test.Equate(t, mc.HL.Address(), 0x0000)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, false)

	// DAD SP
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x31, 0x34, 0x12, 0x21, 0x01, 0x00, 0x39) // LXI SP; LXI H; DAD SP
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL.Address(), 0x1235)
	test.Equate(t, mc.Status.Carry, false)
}

func TestDecimalAdjust(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// both nibbles of 0x9b are out of decimal range
	mem.putInstructions(0x0000, 0x3e, 0x9b, 0x27) // MVI A,0x9b; DAA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.AuxCarry, true)

	// decimal addition carried out of the low nibble. 0x19 + 0x28 = 0x41
	// before adjustment but 47 decimal requires 0x47
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x19, 0xc6, 0x28, 0x27) // MVI A; ADI 0x28; DAA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x41)
	test.Equate(t, mc.Status.AuxCarry, true)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x47)
	test.Equate(t, mc.Status.Carry, false)
}

func TestLogical(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// ANA clears carry and derives auxiliary carry from bit 3 of the operands
	mem.putInstructions(0x0000, 0x37, 0x3e, 0x0f, 0x06, 0xf8, 0xa0) // STC; MVI A; MVI B; ANA B
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x08)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.AuxCarry, true)

	// XRA A is the conventional way of zeroing the accumulator
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x5a, 0xaf, 0xf6, 0x80) // MVI A; XRA A; ORI 0x80
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.AuxCarry, false)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x80)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Parity, false)

	// CMP leaves the accumulator alone
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x02, 0xfe, 0x05) // MVI A,2; CPI 5
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, false)

	// CMA touches no flags
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x0f, 0x2f) // MVI A; CMA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xf0)
	test.Equate(t, mc.Status.Zero, false)
}

func TestRotates(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0x3e, 0x81, 0x07, 0x0f, 0x17, 0x1f)
	step(t, mc)
	step(t, mc) // RLC
	test.Equate(t, mc.A.Value(), 0x03)
	test.Equate(t, mc.Status.Carry, true)
	step(t, mc) // RRC
	test.Equate(t, mc.A.Value(), 0x81)
	test.Equate(t, mc.Status.Carry, true)
	step(t, mc) // RAL
	test.Equate(t, mc.A.Value(), 0x03)
	test.Equate(t, mc.Status.Carry, true)
	step(t, mc) // RAR
	test.Equate(t, mc.A.Value(), 0x81)
	test.Equate(t, mc.Status.Carry, true)

	// rotates never touch the other flags
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, false)
}

func TestFlow(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// JMP
	mem.putInstructions(0x0000, 0xc3, 0x00, 0x10)
	r := step(t, mc)
	test.Equate(t, r.Defn.Cycles, 10)
	test.Equate(t, mc.PC.Address(), 0x1000)

	// JNZ not taken falls through. same cycle count either way
	mem.putInstructions(0x1000, 0x3e, 0x00, 0xc2, 0x00, 0x20) // MVI A,0; JNZ 0x2000
	step(t, mc)
	test.Equate(t, mc.Status.Zero, false)
	r = step(t, mc)
	test.Equate(t, r.BranchSuccess, false)
	test.Equate(t, r.Cycles, 10)
	test.Equate(t, mc.PC.Address(), 0x1005)

	// MVI A,0 does not touch flags so the zero flag is still clear. JNZ
	// taken
	mem.putInstructions(0x1005, 0xc2, 0x00, 0x20)
	r = step(t, mc)
	test.Equate(t, r.BranchSuccess, true)
	test.Equate(t, r.Cycles, 10)
	test.Equate(t, mc.PC.Address(), 0x2000)

	// PCHL
	mem.putInstructions(0x2000, 0x21, 0x00, 0x30, 0xe9) // LXI H; PCHL
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x3000)
}

func TestSubroutines(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0x31, 0x00, 0x40, 0xcd, 0x00, 0x10) // LXI SP,0x4000; CALL 0x1000
	mem.putInstructions(0x1000, 0xc9)                               // RET
	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 17)
	test.Equate(t, mc.PC.Address(), 0x1000)
	test.Equate(t, mc.SP.Address(), 0x3ffe)
	// return address pushed high byte first
	mem.assert(t, 0x3fff, 0x00)
	mem.assert(t, 0x3ffe, 0x06)

	r = step(t, mc)
	test.Equate(t, r.Cycles, 10)
	test.Equate(t, mc.PC.Address(), 0x0006)
	test.Equate(t, mc.SP.Address(), 0x4000)

	// conditional call and return pay the branch penalty only when taken
	mem.putInstructions(0x0006, 0xc4, 0x00, 0x20, 0xcc, 0x00, 0x20) // CNZ 0x2000; CZ 0x2000
	mem.putInstructions(0x2000, 0xc8, 0xc0)                         // RZ; RNZ

	// zero flag is clear after reset
	r = step(t, mc)
	test.Equate(t, r.BranchSuccess, true)
	test.Equate(t, r.Cycles, 17)
	test.Equate(t, mc.PC.Address(), 0x2000)

	r = step(t, mc) // RZ, not taken
	test.Equate(t, r.BranchSuccess, false)
	test.Equate(t, r.Cycles, 5)
	r = step(t, mc) // RNZ, taken
	test.Equate(t, r.BranchSuccess, true)
	test.Equate(t, r.Cycles, 11)
	test.Equate(t, mc.PC.Address(), 0x0009)

	r = step(t, mc) // CZ, not taken
	test.Equate(t, r.BranchSuccess, false)
	test.Equate(t, r.Cycles, 11)
	test.Equate(t, mc.PC.Address(), 0x000c)

	// RST pushes the return address and jumps to the vector
	mem.putInstructions(0x000c, 0xd7) // RST 2
	r = step(t, mc)
	test.Equate(t, r.Cycles, 11)
	test.Equate(t, mc.PC.Address(), 0x0010)
	test.Equate(t, mc.SP.Address(), 0x3ffe)
	mem.assert(t, 0x3ffe, 0x0d)
}

func TestStack(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000,
		0x31, 0x00, 0x40, // LXI SP,0x4000
		0x01, 0x34, 0x12, // LXI B,0x1234
		0xc5, // PUSH B
		0xd1, // POP D
	)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 11)
	test.Equate(t, mc.SP.Address(), 0x3ffe)
	r = step(t, mc)
	test.Equate(t, r.Cycles, 10)
	test.Equate(t, mc.DE.Address(), 0x1234)
	test.Equate(t, mc.SP.Address(), 0x4000)

	// PUSH PSW / POP PSW round trips the flags
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000,
		0x31, 0x00, 0x40, // LXI SP
		0x3e, 0xff, 0xc6, 0x01, // MVI A,0xff; ADI 1
		0xf5,       // PUSH PSW
		0x3e, 0x12, // MVI A,0x12
		0x37,       // STC is undone by the POP below
		0xaf,       // XRA A clears the flags
		0x3e, 0x34, // overwrite the accumulator again
		0xf1, // POP PSW
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	psw := mc.Status.Value()
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)
	step(t, mc)
	mem.assert(t, 0x3fff, 0x00) // accumulator
	mem.assert(t, 0x3ffe, psw)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.AuxCarry, true)

	// the D and H pairs round trip through the stack like the others
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000,
		0x31, 0x00, 0x40, // LXI SP,0x4000
		0x11, 0xcd, 0xab, // LXI D,0xabcd
		0x21, 0x55, 0xaa, // LXI H,0xaa55
		0xd5, // PUSH D
		0xe5, // PUSH H
		0xc1, // POP B
		0xd1, // POP D
	)
	for i := 0; i < 7; i++ {
		step(t, mc)
	}
	test.Equate(t, mc.BC.Address(), 0xaa55)
	test.Equate(t, mc.DE.Address(), 0xabcd)
	test.Equate(t, mc.SP.Address(), 0x4000)

	// stack operations wrap around the bottom of the address space
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0000, 0x01, 0xcd, 0xab, 0xc5) // LXI B; PUSH B with SP at 0
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.SP.Address(), 0xfffe)
	mem.assert(t, 0xffff, 0xab)
	mem.assert(t, 0xfffe, 0xcd)

	// XTHL swaps HL with the top of the stack
	mem.putInstructions(0x0004, 0x21, 0x34, 0x12, 0xe3) // LXI H; XTHL
	step(t, mc)
	r = step(t, mc)
	test.Equate(t, r.Defn.Cycles, 18)
	test.Equate(t, mc.HL.Address(), 0xabcd)
	mem.assert(t, 0xfffe, 0x34)
	mem.assert(t, 0xffff, 0x12)

	// SPHL
	mem.putInstructions(0x0008, 0xf9)
	step(t, mc)
	test.Equate(t, mc.SP.Address(), 0xabcd)
}

func TestHalt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0x3e, 0x05, 0x3c, 0x76) // MVI A,5; INR A; HLT
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x06)
	r := step(t, mc)
	test.Equate(t, r.Defn.Mnemonic, "HLT")
	test.Equate(t, mc.Halted, true)
	test.Equate(t, mc.PC.Address(), 0x0004)

	// a halted CPU idles. each idle step consumes a single cycle and leaves
	// the program counter alone
	r = step(t, mc)
	test.Equate(t, r.Cycles, 1)
	test.Equate(t, mc.PC.Address(), 0x0004)
	r = step(t, mc)
	test.Equate(t, r.Cycles, 1)
	test.Equate(t, mc.Halted, true)
}

func TestInterrupt(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000, 0x31, 0x00, 0x40, 0xfb, 0x76) // LXI SP; EI; HLT
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.InterruptsEnabled, true)
	step(t, mc)
	test.Equate(t, mc.Halted, true)

	// an interrupt wakes the halted CPU. acknowledgement disables further
	// interrupts
	mc.RaiseInterrupt(instructions.Reset(2))
	r := step(t, mc)
	test.Equate(t, r.Interrupted, true)
	test.Equate(t, r.Defn.Mnemonic, "RST 2")
	test.Equate(t, r.Cycles, 11)
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.InterruptsEnabled, false)
	test.Equate(t, mc.PC.Address(), 0x0010)

	// the interrupted program resumes after the HLT instruction
	mem.assert(t, 0x3ffe, 0x05)

	// an interrupt raised while interrupts are disabled is held pending.
	// raising another interrupt in the meantime replaces the pending opcode
	mc.RaiseInterrupt(instructions.Reset(1))
	mc.RaiseInterrupt(instructions.Reset(3))
	mem.putInstructions(0x0010, 0x00, 0xfb, 0x00) // NOP; EI; NOP
	r = step(t, mc)
	test.Equate(t, r.Interrupted, false)
	step(t, mc) // EI
	r = step(t, mc)
	test.Equate(t, r.Interrupted, true)
	test.Equate(t, r.Defn.Mnemonic, "RST 3")
	test.Equate(t, mc.PC.Address(), 0x0018)
}

func TestIO(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	dev := &mockDev{input: 0x8f}
	mc.AttachDevice(dev)
	mc.Reset()

	mem.putInstructions(0x0000, 0xdb, 0x01, 0xd3, 0x02) // IN 1; OUT 2
	r := step(t, mc)
	test.Equate(t, r.Defn.Cycles, 10)
	test.Equate(t, mc.A.Value(), 0x8f)
	test.Equate(t, dev.lastPort, 1)
	step(t, mc)
	test.Equate(t, dev.lastPort, 2)
	test.Equate(t, dev.lastData, 0x8f)
}

func TestUndocumented(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	// 0x08 and 0xfd have no documented meaning and execute as NOPs
	mem.putInstructions(0x0000, 0x08, 0xfd)
	r := step(t, mc)
	test.Equate(t, r.Defn.Undocumented, true)
	test.Equate(t, r.Cycles, 4)
	test.Equate(t, mc.PC.Address(), 0x0001)
	r = step(t, mc)
	test.Equate(t, r.Defn.Undocumented, true)
	test.Equate(t, mc.PC.Address(), 0x0002)
}
