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

package cpu

import (
	"fmt"

	"github.com/softlanding/invader80/curated"
	"github.com/softlanding/invader80/hardware/cpu/execution"
	"github.com/softlanding/invader80/hardware/cpu/instructions"
	"github.com/softlanding/invader80/hardware/cpu/registers"
	"github.com/softlanding/invader80/hardware/memory/cpubus"
	"github.com/softlanding/invader80/hardware/ports"
)

// CPU implements the Intel 8080. Register logic is implemented by the
// Register type in the registers sub-package.
type CPU struct {
	PC *registers.Register16
	SP *registers.Register16

	A *registers.Register
	B *registers.Register
	C *registers.Register
	D *registers.Register
	E *registers.Register
	H *registers.Register
	L *registers.Register

	// the six general purpose registers viewed as pairs
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	Status registers.StatusRegister

	// some operations need an accumulator that isn't the A register
	acc8 *registers.Register

	mem   cpubus.Memory
	dev   ports.Device
	defns []*instructions.Definition

	// whether the CPU has executed a HLT and is waiting for an interrupt
	Halted bool

	// whether the CPU will acknowledge a raised interrupt. controlled by the
	// EI and DI instructions
	InterruptsEnabled bool

	// the opcode most recently presented by an interrupting device, or -1.
	// devices that interrupt before an earlier interrupt has been
	// acknowledged simply replace the pending opcode
	pendingInterrupt int

	// last result. the fields are guaranteed to be valid only when Final is
	// true
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:              mem,
		dev:              ports.NullDevice{},
		PC:               registers.NewRegister16(0, "PC"),
		SP:               registers.NewRegister16(0, "SP"),
		A:                registers.NewRegister(0, "A"),
		B:                registers.NewRegister(0, "B"),
		C:                registers.NewRegister(0, "C"),
		D:                registers.NewRegister(0, "D"),
		E:                registers.NewRegister(0, "E"),
		H:                registers.NewRegister(0, "H"),
		L:                registers.NewRegister(0, "L"),
		Status:           registers.NewStatusRegister(),
		acc8:             registers.NewAnonRegister(0),
		defns:            instructions.GetDefinitions(),
		pendingInterrupt: -1,
	}
	mc.BC = registers.NewPair(mc.B, mc.C, "BC")
	mc.DE = registers.NewPair(mc.D, mc.E, "DE")
	mc.HL = registers.NewPair(mc.H, mc.L, "HL")
	return mc
}

// AttachDevice connects an IO device to the CPU. The device will service all
// subsequent IN and OUT instructions.
func (mc *CPU) AttachDevice(dev ports.Device) {
	if dev == nil {
		dev = ports.NullDevice{}
	}
	mc.dev = dev
}

// Plumb a new Memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s=%s",
		mc.PC, mc.SP, mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The 8080 starts execution at address
// zero with interrupts disabled.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Status.Reset()
	mc.Halted = false
	mc.InterruptsEnabled = false
	mc.pendingInterrupt = -1
}

// RaiseInterrupt presents an opcode to the CPU for execution as an
// interrupt. The opcode is kept pending until the CPU is ready to
// acknowledge. A later interrupt raised before acknowledgement replaces a
// pending one.
func (mc *CPU) RaiseInterrupt(opcode uint8) {
	mc.pendingInterrupt = int(opcode)
}

// read8 reads a byte from memory.
func (mc *CPU) read8(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return v, nil
}

// write8 writes a byte to memory.
func (mc *CPU) write8(address uint16, data uint8) error {
	err := mc.mem.Write(address, data)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	return nil
}

// read16 reads a word from memory. low byte first.
func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.read8(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// write16 writes a word to memory. low byte first.
func (mc *CPU) write16(address uint16, data uint16) error {
	err := mc.write8(address, uint8(data))
	if err != nil {
		return err
	}
	return mc.write8(address+1, uint8(data>>8))
}

// fetch8 reads a byte from the address pointed to by PC and advances PC.
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.read8(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// fetch16 reads a word from the address pointed to by PC and advances PC.
// low byte first.
func (mc *CPU) fetch16() (uint16, error) {
	lo, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch8()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// push a word onto the stack. the stack grows downwards.
func (mc *CPU) push(data uint16) error {
	mc.SP.Add(0xffff)
	err := mc.write8(mc.SP.Address(), uint8(data>>8))
	if err != nil {
		return err
	}
	mc.SP.Add(0xffff)
	return mc.write8(mc.SP.Address(), uint8(data))
}

// pop a word from the stack.
func (mc *CPU) pop() (uint16, error) {
	lo, err := mc.read8(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	hi, err := mc.read8(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo), nil
}

// reg returns the 8 bit register selected by a three bit register code.
// code 6 selects memory through HL and must be handled by the caller.
func (mc *CPU) reg(code uint8) *registers.Register {
	switch code & 0x07 {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 7:
		return mc.A
	}
	panic("register code 6 selects memory, not a register")
}

// loadOperand returns the value selected by a three bit register code,
// reading memory through HL for code 6.
func (mc *CPU) loadOperand(code uint8) (uint8, error) {
	if code&0x07 == 6 {
		return mc.read8(mc.HL.Address())
	}
	return mc.reg(code).Value(), nil
}

// storeOperand stores a value in the place selected by a three bit register
// code, writing memory through HL for code 6.
func (mc *CPU) storeOperand(code uint8, data uint8) error {
	if code&0x07 == 6 {
		return mc.write8(mc.HL.Address(), data)
	}
	mc.reg(code).Load(data)
	return nil
}

// pairAddress returns the value of the register pair selected by a two bit
// pair code. code 3 selects the stack pointer.
func (mc *CPU) pairAddress(code uint8) uint16 {
	switch code & 0x03 {
	case 0:
		return mc.BC.Address()
	case 1:
		return mc.DE.Address()
	case 2:
		return mc.HL.Address()
	}
	return mc.SP.Address()
}

// pairLoad loads a value into the register pair selected by a two bit pair
// code. code 3 selects the stack pointer.
func (mc *CPU) pairLoad(code uint8, data uint16) {
	switch code & 0x03 {
	case 0:
		mc.BC.Load(data)
	case 1:
		mc.DE.Load(data)
	case 2:
		mc.HL.Load(data)
	case 3:
		mc.SP.Load(data)
	}
}

// condition evaluates the condition selected by a three bit condition code
// against the status register.
func (mc *CPU) condition(code uint8) bool {
	switch code & 0x07 {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	case 3:
		return mc.Status.Carry
	case 4:
		return !mc.Status.Parity
	case 5:
		return mc.Status.Parity
	case 6:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}

// setResultFlags sets the zero, sign and parity flags from the value of the
// supplied register.
func (mc *CPU) setResultFlags(r *registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
	mc.Status.Parity = r.IsParityEven()
}

// ExecuteInstruction executes the instruction at the current program
// counter, or dispatches a pending interrupt, or idles for one cycle if the
// CPU is halted. The result is stored in the LastResult field.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	var opcode uint8
	var err error

	if mc.InterruptsEnabled && mc.pendingInterrupt >= 0 {
		// interrupt dispatch. the device's opcode is executed in place of
		// the next instruction. acknowledgement disables further interrupts
		// until the next EI
		opcode = uint8(mc.pendingInterrupt)
		mc.pendingInterrupt = -1
		mc.InterruptsEnabled = false
		mc.Halted = false
		mc.LastResult.Interrupted = true
	} else if mc.Halted {
		// a halted CPU does no work but time still passes
		mc.LastResult.Defn = mc.defns[0x76]
		mc.LastResult.Cycles = 1
		mc.LastResult.Final = true
		return nil
	} else {
		opcode, err = mc.fetch8()
		if err != nil {
			return err
		}
	}

	defn := mc.defns[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// gather the data, if any, that follows the opcode
	var data uint16
	switch defn.Mode {
	case instructions.Immediate, instructions.Port:
		var b uint8
		b, err = mc.fetch8()
		if err != nil {
			return err
		}
		data = uint16(b)
	case instructions.ImmediateWord, instructions.Direct:
		data, err = mc.fetch16()
		if err != nil {
			return err
		}
	}
	mc.LastResult.InstructionData = data

	// actually perform instruction based on operation group
	switch defn.Operation {
	case instructions.Nop:
		// does nothing

	case instructions.Mov:
		var v uint8
		v, err = mc.loadOperand(opcode)
		if err != nil {
			return err
		}
		err = mc.storeOperand(opcode>>3, v)
		if err != nil {
			return err
		}

	case instructions.Mvi:
		err = mc.storeOperand(opcode>>3, uint8(data))
		if err != nil {
			return err
		}

	case instructions.Lxi:
		mc.pairLoad(opcode>>4, data)

	case instructions.Ldax:
		var v uint8
		v, err = mc.read8(mc.pairAddress(opcode >> 4))
		if err != nil {
			return err
		}
		mc.A.Load(v)

	case instructions.Stax:
		err = mc.write8(mc.pairAddress(opcode>>4), mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Lda:
		var v uint8
		v, err = mc.read8(data)
		if err != nil {
			return err
		}
		mc.A.Load(v)

	case instructions.Sta:
		err = mc.write8(data, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Lhld:
		var v uint16
		v, err = mc.read16(data)
		if err != nil {
			return err
		}
		mc.HL.Load(v)

	case instructions.Shld:
		err = mc.write16(data, mc.HL.Address())
		if err != nil {
			return err
		}

	case instructions.Xchg:
		de := mc.DE.Address()
		mc.DE.Load(mc.HL.Address())
		mc.HL.Load(de)

	case instructions.Inr:
		// INR and DCR leave the carry flag alone
		var v uint8
		v, err = mc.loadOperand(opcode >> 3)
		if err != nil {
			return err
		}
		mc.acc8.Load(v)
		_, aux := mc.acc8.Add(1, false)
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.acc8)
		err = mc.storeOperand(opcode>>3, mc.acc8.Value())
		if err != nil {
			return err
		}

	case instructions.Dcr:
		var v uint8
		v, err = mc.loadOperand(opcode >> 3)
		if err != nil {
			return err
		}
		mc.acc8.Load(v)
		_, aux := mc.acc8.Subtract(1, false)
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.acc8)
		err = mc.storeOperand(opcode>>3, mc.acc8.Value())
		if err != nil {
			return err
		}

	case instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbb,
		instructions.Ana, instructions.Xra, instructions.Ora, instructions.Cmp:
		var v uint8
		v, err = mc.loadOperand(opcode)
		if err != nil {
			return err
		}
		mc.alu(defn.Operation, v)

	case instructions.Adi:
		mc.alu(instructions.Add, uint8(data))
	case instructions.Aci:
		mc.alu(instructions.Adc, uint8(data))
	case instructions.Sui:
		mc.alu(instructions.Sub, uint8(data))
	case instructions.Sbi:
		mc.alu(instructions.Sbb, uint8(data))
	case instructions.Ani:
		mc.alu(instructions.Ana, uint8(data))
	case instructions.Xri:
		mc.alu(instructions.Xra, uint8(data))
	case instructions.Ori:
		mc.alu(instructions.Ora, uint8(data))
	case instructions.Cpi:
		mc.alu(instructions.Cmp, uint8(data))

	case instructions.Rlc:
		mc.Status.Carry = mc.A.RLC()

	case instructions.Rrc:
		mc.Status.Carry = mc.A.RRC()

	case instructions.Ral:
		mc.Status.Carry = mc.A.RAL(mc.Status.Carry)

	case instructions.Rar:
		mc.Status.Carry = mc.A.RAR(mc.Status.Carry)

	case instructions.Daa:
		mc.daa()

	case instructions.Cma:
		mc.A.Complement()

	case instructions.Stc:
		mc.Status.Carry = true

	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.Dad:
		// DAD is the only instruction that affects the carry flag and no
		// other flag
		sum := uint32(mc.HL.Address()) + uint32(mc.pairAddress(opcode>>4))
		mc.HL.Load(uint16(sum))
		mc.Status.Carry = sum > 0xffff

	case instructions.Inx:
		if opcode>>4&0x03 == 3 {
			mc.SP.Add(1)
		} else {
			mc.pairLoad(opcode>>4, mc.pairAddress(opcode>>4)+1)
		}

	case instructions.Dcx:
		if opcode>>4&0x03 == 3 {
			mc.SP.Add(0xffff)
		} else {
			mc.pairLoad(opcode>>4, mc.pairAddress(opcode>>4)-1)
		}

	case instructions.Jmp:
		mc.PC.Load(data)

	case instructions.JmpCond:
		if mc.condition(opcode >> 3) {
			mc.PC.Load(data)
			mc.LastResult.BranchSuccess = true
		}

	case instructions.Call:
		err = mc.push(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(data)

	case instructions.CallCond:
		if mc.condition(opcode >> 3) {
			err = mc.push(mc.PC.Address())
			if err != nil {
				return err
			}
			mc.PC.Load(data)
			mc.LastResult.BranchSuccess = true
			mc.LastResult.Cycles += defn.CyclesBranch
		}

	case instructions.Ret:
		var v uint16
		v, err = mc.pop()
		if err != nil {
			return err
		}
		mc.PC.Load(v)

	case instructions.RetCond:
		if mc.condition(opcode >> 3) {
			var v uint16
			v, err = mc.pop()
			if err != nil {
				return err
			}
			mc.PC.Load(v)
			mc.LastResult.BranchSuccess = true
			mc.LastResult.Cycles += defn.CyclesBranch
		}

	case instructions.Rst:
		err = mc.push(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(uint16(opcode & 0x38))

	case instructions.Pchl:
		mc.PC.Load(mc.HL.Address())

	case instructions.Sphl:
		mc.SP.Load(mc.HL.Address())

	case instructions.Push:
		var v uint16
		if opcode>>4&0x03 == 3 {
			v = uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
		} else {
			v = mc.pairAddress(opcode >> 4)
		}
		err = mc.push(v)
		if err != nil {
			return err
		}

	case instructions.Pop:
		var v uint16
		v, err = mc.pop()
		if err != nil {
			return err
		}
		if opcode>>4&0x03 == 3 {
			mc.A.Load(uint8(v >> 8))
			mc.Status.FromValue(uint8(v))
		} else {
			mc.pairLoad(opcode>>4, v)
		}

	case instructions.Xthl:
		var v uint16
		v, err = mc.read16(mc.SP.Address())
		if err != nil {
			return err
		}
		err = mc.write16(mc.SP.Address(), mc.HL.Address())
		if err != nil {
			return err
		}
		mc.HL.Load(v)

	case instructions.In:
		var v uint8
		v, err = mc.dev.Input(uint8(data))
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		mc.A.Load(v)

	case instructions.Out:
		err = mc.dev.Output(uint8(data), mc.A.Value())
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}

	case instructions.Di:
		mc.InterruptsEnabled = false

	case instructions.Ei:
		mc.InterruptsEnabled = true

	case instructions.Hlt:
		mc.Halted = true

	default:
		return curated.Errorf("cpu: unimplemented operation for opcode %#02x", opcode)
	}

	mc.LastResult.Final = true

	return nil
}

// alu performs one of the eight accumulator operations. the register and
// immediate forms of each operation share flag behaviour.
func (mc *CPU) alu(operation instructions.Operation, v uint8) {
	switch operation {
	case instructions.Add:
		carry, aux := mc.A.Add(v, false)
		mc.Status.Carry = carry
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.A)

	case instructions.Adc:
		carry, aux := mc.A.Add(v, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.A)

	case instructions.Sub:
		borrow, aux := mc.A.Subtract(v, false)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.A)

	case instructions.Sbb:
		borrow, aux := mc.A.Subtract(v, mc.Status.Carry)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.A)

	case instructions.Ana:
		mc.Status.AuxCarry = mc.A.AND(v)
		mc.Status.Carry = false
		mc.setResultFlags(mc.A)

	case instructions.Xra:
		mc.A.XOR(v)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.setResultFlags(mc.A)

	case instructions.Ora:
		mc.A.OR(v)
		mc.Status.Carry = false
		mc.Status.AuxCarry = false
		mc.setResultFlags(mc.A)

	case instructions.Cmp:
		// compare is a subtraction that discards the result
		mc.acc8.Load(mc.A.Value())
		borrow, aux := mc.acc8.Subtract(v, false)
		mc.Status.Carry = borrow
		mc.Status.AuxCarry = aux
		mc.setResultFlags(mc.acc8)
	}
}

// daa adjusts the accumulator after an addition so that it reads as a pair
// of binary coded decimal digits. each nibble found to be out of decimal
// range, or flagged as having carried, is corrected by adding six.
func (mc *CPU) daa() {
	a := mc.A.Value()
	var adjust uint8
	carry := mc.Status.Carry

	if a&0x0f > 9 || mc.Status.AuxCarry {
		adjust |= 0x06
	}
	if a>>4 > 9 || mc.Status.Carry || (a>>4 == 9 && a&0x0f > 9) {
		adjust |= 0x60
		carry = true
	}

	_, aux := mc.A.Add(adjust, false)
	mc.Status.Carry = carry
	mc.Status.AuxCarry = aux
	mc.setResultFlags(mc.A)
}
