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

import "fmt"

// Pair is a 16 bit view over two 8 bit registers. The Pair stores no value of
// its own so a change through the pair is immediately visible through its
// component registers and vice versa.
type Pair struct {
	label string
	hi    *Register
	lo    *Register
}

// NewPair creates a new register pair from the two registers that compose it.
// The first register supplies the most significant byte.
func NewPair(hi *Register, lo *Register, label string) Pair {
	return Pair{
		label: label,
		hi:    hi,
		lo:    lo,
	}
}

// Label returns the name the pair was created with.
func (p Pair) Label() string {
	return p.label
}

func (p Pair) String() string {
	return fmt.Sprintf("%s=%#04x", p.label, p.Address())
}

// Address returns the combined value of the two registers as a value of type
// uint16.
func (p Pair) Address() uint16 {
	return uint16(p.hi.Value())<<8 | uint16(p.lo.Value())
}

// Load a 16 bit value into the pair, distributing it over the two component
// registers.
func (p Pair) Load(val uint16) {
	p.hi.Load(uint8(val >> 8))
	p.lo.Load(uint8(val))
}

// Increment the pair by one. Overflow wraps around without affecting any
// status flags.
func (p Pair) Increment() {
	p.Load(p.Address() + 1)
}

// Decrement the pair by one. Underflow wraps around without affecting any
// status flags.
func (p Pair) Decrement() {
	p.Load(p.Address() - 1)
}
