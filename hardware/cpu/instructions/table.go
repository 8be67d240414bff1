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

// names of the registers, register pairs and conditions as selected by the
// relevant opcode bits
var (
	regNames   = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
	pairNames  = [4]string{"B", "D", "H", "SP"}
	stackNames = [4]string{"B", "D", "H", "PSW"}
	condNames  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
)

// GetDefinitions returns the table of instruction definitions for the 8080,
// indexed by opcode. Every opcode has an entry. Opcodes with no documented
// meaning are filled in as undocumented NOPs.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	put := func(opcode uint8, mnemonic string, operation Operation, mode AddressingMode, cycles int, effect Category) {
		bytes := 1
		switch mode {
		case Immediate, Port:
			bytes = 2
		case ImmediateWord, Direct:
			bytes = 3
		}
		defs[opcode] = &Definition{
			OpCode:    opcode,
			Mnemonic:  mnemonic,
			Operation: operation,
			Mode:      mode,
			Bytes:     bytes,
			Cycles:    cycles,
			Effect:    effect,
		}
	}

	// operations on a register pair. the pair is selected by bits 4 and 5
	for p := uint8(0); p < 4; p++ {
		put(p<<4|0x01, fmt.Sprintf("LXI %s", pairNames[p]), Lxi, ImmediateWord, 10, Read)
		put(p<<4|0x03, fmt.Sprintf("INX %s", pairNames[p]), Inx, Implied, 5, Modify)
		put(p<<4|0x09, fmt.Sprintf("DAD %s", pairNames[p]), Dad, Implied, 10, Modify)
		put(p<<4|0x0b, fmt.Sprintf("DCX %s", pairNames[p]), Dcx, Implied, 5, Modify)
	}

	// operations on a single register or on memory through HL. the register
	// is selected by bits 3 to 5, with code 6 meaning memory
	for r := uint8(0); r < 8; r++ {
		cycles := 5
		immCycles := 7
		if r == 6 {
			cycles = 10
			immCycles = 10
		}
		put(r<<3|0x04, fmt.Sprintf("INR %s", regNames[r]), Inr, Implied, cycles, Modify)
		put(r<<3|0x05, fmt.Sprintf("DCR %s", regNames[r]), Dcr, Implied, cycles, Modify)
		put(r<<3|0x06, fmt.Sprintf("MVI %s", regNames[r]), Mvi, Immediate, immCycles, Write)
	}

	put(0x00, "NOP", Nop, Implied, 4, Read)
	put(0x02, "STAX B", Stax, Implied, 7, Write)
	put(0x12, "STAX D", Stax, Implied, 7, Write)
	put(0x0a, "LDAX B", Ldax, Implied, 7, Read)
	put(0x1a, "LDAX D", Ldax, Implied, 7, Read)
	put(0x07, "RLC", Rlc, Implied, 4, Modify)
	put(0x0f, "RRC", Rrc, Implied, 4, Modify)
	put(0x17, "RAL", Ral, Implied, 4, Modify)
	put(0x1f, "RAR", Rar, Implied, 4, Modify)
	put(0x22, "SHLD", Shld, Direct, 16, Write)
	put(0x2a, "LHLD", Lhld, Direct, 16, Read)
	put(0x32, "STA", Sta, Direct, 13, Write)
	put(0x3a, "LDA", Lda, Direct, 13, Read)
	put(0x27, "DAA", Daa, Implied, 4, Modify)
	put(0x2f, "CMA", Cma, Implied, 4, Modify)
	put(0x37, "STC", Stc, Implied, 4, Modify)
	put(0x3f, "CMC", Cmc, Implied, 4, Modify)

	// the MOV block. destination in bits 3 to 5, source in bits 0 to 2. the
	// opcode that would mean MOV M,M is HLT
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			op := 0x40 | d<<3 | s
			if op == 0x76 {
				continue
			}
			cycles := 5
			effect := Read
			if d == 6 || s == 6 {
				cycles = 7
			}
			if d == 6 {
				effect = Write
			}
			put(op, fmt.Sprintf("MOV %s,%s", regNames[d], regNames[s]), Mov, Implied, cycles, effect)
		}
	}
	put(0x76, "HLT", Hlt, Implied, 7, Interrupt)

	// the ALU block. operation in bits 3 to 5, source in bits 0 to 2
	alu := [8]struct {
		mnemonic  string
		operation Operation
	}{
		{"ADD", Add}, {"ADC", Adc}, {"SUB", Sub}, {"SBB", Sbb},
		{"ANA", Ana}, {"XRA", Xra}, {"ORA", Ora}, {"CMP", Cmp},
	}
	for i := uint8(0); i < 8; i++ {
		for s := uint8(0); s < 8; s++ {
			cycles := 4
			if s == 6 {
				cycles = 7
			}
			put(0x80|i<<3|s, fmt.Sprintf("%s %s", alu[i].mnemonic, regNames[s]), alu[i].operation, Implied, cycles, Read)
		}
	}

	// the immediate forms of the ALU operations
	aluImm := [8]struct {
		mnemonic  string
		operation Operation
	}{
		{"ADI", Adi}, {"ACI", Aci}, {"SUI", Sui}, {"SBI", Sbi},
		{"ANI", Ani}, {"XRI", Xri}, {"ORI", Ori}, {"CPI", Cpi},
	}
	for i := uint8(0); i < 8; i++ {
		put(0xc6|i<<3, aluImm[i].mnemonic, aluImm[i].operation, Immediate, 7, Read)
	}

	// the conditional flow instructions. the condition is selected by bits 3
	// to 5. conditional calls and returns take longer when the condition is
	// met and the branch is taken. the conditional jumps always take the same
	// time
	for c := uint8(0); c < 8; c++ {
		put(0xc0|c<<3, "R"+condNames[c], RetCond, Implied, 5, Subroutine)
		defs[0xc0|c<<3].CyclesBranch = 6
		put(0xc2|c<<3, "J"+condNames[c], JmpCond, Direct, 10, Flow)
		put(0xc4|c<<3, "C"+condNames[c], CallCond, Direct, 11, Subroutine)
		defs[0xc4|c<<3].CyclesBranch = 6
		put(0xc7|c<<3, fmt.Sprintf("RST %d", c), Rst, Implied, 11, Subroutine)
	}

	for p := uint8(0); p < 4; p++ {
		put(0xc1|p<<4, "POP "+stackNames[p], Pop, Implied, 10, Read)
		put(0xc5|p<<4, "PUSH "+stackNames[p], Push, Implied, 11, Write)
	}

	put(0xc3, "JMP", Jmp, Direct, 10, Flow)
	put(0xc9, "RET", Ret, Implied, 10, Subroutine)
	put(0xcd, "CALL", Call, Direct, 17, Subroutine)
	put(0xd3, "OUT", Out, Port, 10, Write)
	put(0xdb, "IN", In, Port, 10, Read)
	put(0xe3, "XTHL", Xthl, Implied, 18, Modify)
	put(0xe9, "PCHL", Pchl, Implied, 5, Flow)
	put(0xeb, "XCHG", Xchg, Implied, 4, Modify)
	put(0xf9, "SPHL", Sphl, Implied, 5, Modify)
	put(0xf3, "DI", Di, Implied, 4, Interrupt)
	put(0xfb, "EI", Ei, Implied, 4, Interrupt)

	// fill the gaps. the 8080 treats these opcodes as NOPs
	for i := 0; i < 256; i++ {
		if defs[i] == nil {
			put(uint8(i), "NOP", Nop, Implied, 4, Read)
			defs[i].Undocumented = true
		}
	}

	return defs
}
