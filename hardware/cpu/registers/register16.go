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

// Register16 represents the 16 bit registers in the 8080. The program counter
// and the stack pointer are of this type.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) *Register16 {
	return &Register16{
		value: val,
		label: label,
	}
}

// Label returns the name the register was created with.
func (r Register16) Label() string {
	return r.label
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Address returns the current value of the register as a value of type
// uint16. All 16 bit registers in the 8080 can be used to address memory.
func (r Register16) Address() uint16 {
	return r.value
}

// Load a value into the register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add a value to the register. Overflow wraps around to the bottom of the
// address space.
func (r *Register16) Add(val uint16) {
	r.value += val
}
