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

package registers

import (
	"fmt"
	"math/bits"
)

// Register is an 8 bit register in the 8080 register file.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with an initial value and a name.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

// NewAnonRegister initialises a new register without a name.
func NewAnonRegister(val uint8) *Register {
	return NewRegister(val, "")
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Label returns the name the register was created with.
func (r Register) Label() string {
	return r.label
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsParityEven returns true if the number of set bits in the register is
// even. This is the sense of the 8080 parity flag.
func (r Register) IsParityEven() bool {
	return bits.OnesCount8(r.value)%2 == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, plus one if carry is set. Returns the carry and
// auxiliary carry out of the addition.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, aux bool) {
	// note value of register before we change it
	v := r.value

	res := uint16(v) + uint16(val)
	if carry {
		res++
	}
	r.value = uint8(res)

	// auxiliary carry is the carry out of bit 3, recovered by comparing the
	// result with the exclusive-or of the operands
	aux = (v^val^r.value)&0x10 == 0x10

	return res > 0xff, aux
}

// Subtract value from register, minus one more if borrow is set. Returns the
// borrow and auxiliary carry out of the subtraction.
//
// On the 8080 subtraction is performed by adding the one's complement of the
// operand, which is also how the auxiliary carry is derived.
func (r *Register) Subtract(val uint8, borrow bool) (bool, bool) {
	carry, aux := r.Add(^val, !borrow)
	return !carry, aux
}

// AND value with register. Returns the auxiliary carry, which for the 8080
// ANA/ANI instructions is the logical or of bit 3 of the two operands.
func (r *Register) AND(val uint8) bool {
	aux := (r.value|val)&0x08 == 0x08
	r.value &= val
	return aux
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// Complement inverts every bit of the register.
func (r *Register) Complement() {
	r.value = ^r.value
}

// RLC rotates register 1 bit to the left. The bit rotated out of the high end
// is copied both to the low end and to the returned carry.
func (r *Register) RLC() bool {
	carry := r.IsNegative()
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates register 1 bit to the right. The bit rotated out of the low end
// is copied both to the high end and to the returned carry.
func (r *Register) RRC() bool {
	carry := r.value&1 == 1
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RAL rotates register 1 bit to the left through the carry flag. Returns new
// carry status.
func (r *Register) RAL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 1
	}
	return rcarry
}

// RAR rotates register 1 bit to the right through the carry flag. Returns new
// carry status.
func (r *Register) RAR(carry bool) bool {
	rcarry := r.value&1 == 1
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
