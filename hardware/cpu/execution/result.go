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

package execution

import (
	"github.com/softlanding/invader80/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address the opcode was fetched from. for interrupt dispatch this is
	// the value of the program counter at the moment of acknowledgement
	Address uint16

	Defn *instructions.Definition

	// the data that followed the opcode. a byte for the immediate modes, a
	// little endian word for the direct modes. undefined for implied mode
	InstructionData uint16

	// the number of bytes fetched during decode, including the opcode
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but for conditional calls and returns the value is
	// higher when the branch was taken
	Cycles int

	// whether a conditional instruction's condition was met
	BranchSuccess bool

	// whether the opcode arrived through interrupt dispatch rather than from
	// memory
	Interrupted bool

	// whether this data has been finalised. the values of the other fields in
	// this struct may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.BranchSuccess = false
	r.Interrupted = false
	r.Final = false
}
